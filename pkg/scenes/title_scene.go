package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// TitleScene 标题场景：难度选择与排行榜展示
type TitleScene struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	leaderboard  *game.LeaderboardManager

	difficulties *config.DifficultyConfig
	ids          []string
	selected     int
}

// NewTitleScene 创建标题场景
// 默认选中上次使用的难度
func NewTitleScene(sceneManager *game.SceneManager, settings *game.SettingsManager, leaderboard *game.LeaderboardManager) *TitleScene {
	difficulties := loadDifficulties()
	ids := difficulties.IDs()

	selected := 0
	if settings != nil {
		last := settings.GetSettings().Difficulty
		for i, id := range ids {
			if id == last {
				selected = i
				break
			}
		}
	}

	return &TitleScene{
		sceneManager: sceneManager,
		settings:     settings,
		leaderboard:  leaderboard,
		difficulties: difficulties,
		ids:          ids,
		selected:     selected,
	}
}

// Update 处理菜单输入
func (s *TitleScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.selected--
		if s.selected < 0 {
			s.selected = len(s.ids) - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.selected++
		if s.selected >= len(s.ids) {
			s.selected = 0
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		id := s.ids[s.selected]
		if s.settings != nil {
			s.settings.SetDifficulty(id)
			if err := s.settings.Save(); err != nil {
				log.Printf("[TitleScene] 设置保存失败: %v", err)
			}
		}
		s.sceneManager.StartBattle(id)
	}
}

// Draw 绘制标题菜单与排行榜
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{8, 8, 24, 255})

	ebitenutil.DebugPrintAt(screen, "COSMIC DEFENDERS", 540, 120)
	ebitenutil.DebugPrintAt(screen, "SELECT DIFFICULTY (UP/DOWN, ENTER TO START)", 460, 160)

	y := 220
	for i, id := range s.ids {
		difficulty := s.difficulties.Difficulties[id]
		cursor := "  "
		if i == s.selected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-10s x%.1f  %s", cursor, difficulty.Name, difficulty.ScoreMult, difficulty.Description)
		ebitenutil.DebugPrintAt(screen, line, 440, y)
		y += 20
	}

	if s.leaderboard != nil {
		s.drawLeaderboard(screen)
	}
}

// drawLeaderboard 排行榜前十
func (s *TitleScene) drawLeaderboard(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "HIGH SCORES", 540, 400)

	y := 430
	for i, entry := range s.leaderboard.Entries() {
		line := fmt.Sprintf("%2d. %-10s %8d  wave %-3d %s", i+1, entry.Name, entry.Score, entry.Wave, entry.Difficulty)
		ebitenutil.DebugPrintAt(screen, line, 460, y)
		y += 18
	}
}
