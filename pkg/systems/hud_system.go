package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// HUDSystem 战斗界面的状态显示
// 得分、波次、生命条、激活中的限时效果与特殊能力冷却
type HUDSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewHUDSystem 创建HUD系统
func NewHUDSystem(em *ecs.EntityManager, gs *game.GameState) *HUDSystem {
	return &HUDSystem{em: em, gs: gs}
}

// Draw 绘制HUD
func (s *HUDSystem) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", s.gs.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WAVE %d", s.gs.Wave), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("DIFFICULTY %s", s.gs.Difficulty.Name), 10, 42)

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](s.em)
	if len(players) == 0 {
		return
	}
	id := players[0]

	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id); ok {
		s.drawHealthBar(screen, health)
	}

	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id); ok {
		if player.SpecialCooldown > 0 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SPECIAL %.1fs", player.SpecialCooldown), 10, 90)
		} else {
			ebitenutil.DebugPrintAt(screen, "SPECIAL READY", 10, 90)
		}
	}

	if effects, ok := ecs.GetComponent[*components.ActiveEffectsComponent](s.em, id); ok {
		s.drawActiveEffects(screen, effects)
	}

	if s.gs.FreezeTimer > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TIME FREEZE %.1fs", s.gs.FreezeTimer), 10, 106)
	}

	if s.gs.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - PRESS ENTER", 560, 390)
	}
}

// drawHealthBar 左上角生命条
func (s *HUDSystem) drawHealthBar(screen *ebiten.Image, health *components.HealthComponent) {
	const barWidth, barHeight = 200.0, 12.0
	ratio := 0.0
	if health.MaxHealth > 0 {
		ratio = health.CurrentHealth / health.MaxHealth
	}
	if ratio < 0 {
		ratio = 0
	}

	ebitenutil.DrawRect(screen, 10, 62, barWidth, barHeight, color.RGBA{60, 60, 60, 255})
	ebitenutil.DrawRect(screen, 10, 62, barWidth*ratio, barHeight, color.RGBA{80, 220, 80, 255})
}

// drawActiveEffects 列出激活中的限时效果及剩余时间
func (s *HUDSystem) drawActiveEffects(screen *ebiten.Image, effects *components.ActiveEffectsComponent) {
	y := 130
	show := func(name string, timer float64) {
		if timer > 0 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.1fs", name, timer), 10, y)
			y += 16
		}
	}
	show("SHIELD", effects.ShieldTimer)
	show("RAPID FIRE", effects.RapidFireTimer)
	show("MULTI SHOT", effects.MultiShotTimer)
	show("TIME SLOW", effects.TimeSlowTimer)
	show("HOMING", effects.HomingTimer)
}
