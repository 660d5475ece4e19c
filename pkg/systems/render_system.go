package systems

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// star 背景星空中的一颗星
type star struct {
	x, y  float64
	size  float64
	speed float64
	shade uint8
}

// 各类实体的基准颜色
var (
	playerColor        = color.RGBA{0, 200, 255, 255}
	playerBulletCol    = color.RGBA{255, 255, 160, 255}
	enemyBulletCol     = color.RGBA{255, 80, 80, 255}
	homingBulletCol    = color.RGBA{255, 160, 255, 255}
	explosiveBulletCol = color.RGBA{255, 200, 40, 255}
	bossHealthBarBG    = color.RGBA{60, 60, 60, 255}
	bossHealthBarFG    = color.RGBA{255, 60, 60, 255}
	enemyColors        = map[components.EnemyType]color.RGBA{
		components.EnemyBasic:  {220, 60, 60, 255},
		components.EnemyFast:   {255, 160, 40, 255},
		components.EnemyHeavy:  {140, 70, 160, 255},
		components.EnemyZigzag: {60, 220, 120, 255},
		components.EnemyBoss:   {255, 40, 120, 255},
	}
	powerupColors = map[components.PowerUpKind]color.RGBA{
		components.PowerUpHealth:      {80, 255, 80, 255},
		components.PowerUpShield:      {80, 160, 255, 255},
		components.PowerUpRapidFire:   {255, 255, 80, 255},
		components.PowerUpMultiShot:   {255, 160, 80, 255},
		components.PowerUpScreenClear: {255, 255, 255, 255},
		components.PowerUpTimeSlow:    {160, 80, 255, 255},
		components.PowerUpHoming:      {255, 80, 255, 255},
	}
)

// RenderSystem 战斗画面绘制
//
// 原型风格：所有实体用色块表示，首领额外绘制血条。
type RenderSystem struct {
	em    *ecs.EntityManager
	stars []star
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	stars := make([]star, config.StarCount)
	for i := range stars {
		stars[i] = star{
			x:     rand.Float64() * config.ScreenWidth,
			y:     rand.Float64() * config.ScreenHeight,
			size:  1 + rand.Float64()*2,
			speed: 0.3 + rand.Float64()*1.2,
			shade: uint8(120 + rand.Intn(136)),
		}
	}
	return &RenderSystem{em: em, stars: stars}
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawStars(screen)
	s.drawParticles(screen)
	s.drawPowerUps(screen)
	s.drawBullets(screen)
	s.drawEnemies(screen)
	s.drawPlayer(screen)
}

// drawStars 绘制缓慢下移的背景星空，飘出底边后回到顶部
func (s *RenderSystem) drawStars(screen *ebiten.Image) {
	for i := range s.stars {
		st := &s.stars[i]
		st.y += st.speed
		if st.y > config.ScreenHeight {
			st.y = 0
			st.x = rand.Float64() * config.ScreenWidth
		}
		c := color.RGBA{st.shade, st.shade, st.shade, 255}
		ebitenutil.DrawRect(screen, st.x, st.y, st.size, st.size, c)
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em)
	for _, id := range players {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if pos == nil || !ok {
			continue
		}

		c := playerColor
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id); ok && player.InvulnerableTimer > 0 {
			// 无敌期间半透明闪烁
			c.A = 128
		}
		ebitenutil.DrawRect(screen, pos.X-col.Width/2, pos.Y-col.Height/2, col.Width, col.Height, c)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em)
	for _, id := range enemies {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if enemy == nil || pos == nil || !ok {
			continue
		}

		c, found := enemyColors[enemy.Type]
		if !found {
			c = enemyColors[components.EnemyBasic]
		}
		ebitenutil.DrawRect(screen, pos.X-col.Width/2, pos.Y-col.Height/2, col.Width, col.Height, c)

		if enemy.Type == components.EnemyBoss {
			s.drawBossHealthBar(screen, id, pos, col)
		}
	}
}

// drawBossHealthBar 首领头顶血条
func (s *RenderSystem) drawBossHealthBar(screen *ebiten.Image, id ecs.EntityID, pos *components.PositionComponent, col *components.CollisionComponent) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok || health.MaxHealth <= 0 {
		return
	}

	barWidth := col.Width
	barY := pos.Y - col.Height/2 - 10
	ratio := health.CurrentHealth / health.MaxHealth
	if ratio < 0 {
		ratio = 0
	}

	ebitenutil.DrawRect(screen, pos.X-barWidth/2, barY, barWidth, 5, bossHealthBarBG)
	ebitenutil.DrawRect(screen, pos.X-barWidth/2, barY, barWidth*ratio, 5, bossHealthBarFG)
}

func (s *RenderSystem) drawBullets(screen *ebiten.Image) {
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.em)
	for _, id := range bullets {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if bullet == nil || pos == nil || !ok {
			continue
		}

		c := playerBulletCol
		switch {
		case bullet.Kind == components.BulletHoming:
			c = homingBulletCol
		case bullet.Kind == components.BulletExplosive:
			c = explosiveBulletCol
		case bullet.Faction == components.BulletFactionEnemy:
			c = enemyBulletCol
		}
		ebitenutil.DrawRect(screen, pos.X-col.Width/2, pos.Y-col.Height/2, col.Width, col.Height, c)
	}
}

func (s *RenderSystem) drawPowerUps(screen *ebiten.Image) {
	powerups := ecs.GetEntitiesWith2[*components.PowerUpComponent, *components.PositionComponent](s.em)
	for _, id := range powerups {
		powerup, _ := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if powerup == nil || pos == nil {
			continue
		}

		c, found := powerupColors[powerup.Kind]
		if !found {
			c = color.RGBA{200, 200, 200, 255}
		}
		half := config.PowerUpSize / 2
		ebitenutil.DrawRect(screen, pos.X-half, pos.Y-half, config.PowerUpSize, config.PowerUpSize, c)
	}
}

func (s *RenderSystem) drawParticles(screen *ebiten.Image) {
	particles := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.em)
	for _, id := range particles {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if particle == nil || pos == nil || particle.Size <= 0 {
			continue
		}

		c := color.RGBA{particle.R, particle.G, particle.B, 255}
		ebitenutil.DrawRect(screen, pos.X-particle.Size/2, pos.Y-particle.Size/2, particle.Size, particle.Size, c)
	}
}
