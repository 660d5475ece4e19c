// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：创建持久化管理器、
// 场景管理器并注册战斗场景工厂，最终返回实现 ebiten.Game 接口的 App。
package app

import (
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/game"
	"github.com/gonewx/cosmicdef/pkg/scenes"
)

// gdataAppName 是 gdata 跨平台存储使用的应用标识
const gdataAppName = "cosmicdef"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Difficulty 指定直接进入战斗的难度 ID（如 "PILOT"），为空则进入标题界面
	Difficulty string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 打开跨平台存储（失败时降级为内存模式）
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: gdataAppName,
	})
	if err != nil {
		log.Printf("[App] gdata 存储不可用，设置与排行榜仅保存在内存中: %v", err)
		gdataManager = nil
	}

	// 创建设置管理器（构造时自动加载存档设置）
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] 设置管理器初始化失败，使用默认设置: %v", err)
		settingsManager, _ = game.NewSettingsManager(nil)
	}

	// 创建排行榜管理器（构造时自动加载历史成绩）
	leaderboardManager, err := game.NewLeaderboardManager(gdataManager)
	if err != nil {
		log.Printf("[App] 排行榜管理器初始化失败，使用空排行榜: %v", err)
		leaderboardManager, _ = game.NewLeaderboardManager(nil)
	}

	// 应用已保存的全屏设置
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器并注册战斗场景工厂
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(difficultyID string) game.Scene {
		return scenes.NewBattleScene(sceneManager, settingsManager, leaderboardManager, difficultyID)
	})

	// 根据启动参数决定初始场景
	if cfg.Difficulty != "" {
		log.Printf("[App] 跳过标题界面，以难度 %s 直接开始战斗", cfg.Difficulty)
		sceneManager.StartBattle(cfg.Difficulty)
	} else {
		titleScene := scenes.NewTitleScene(sceneManager, settingsManager, leaderboardManager)
		sceneManager.SwitchTo(titleScene)
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.ScreenWidth), int(config.ScreenHeight)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
