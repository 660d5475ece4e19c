package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/cosmicdef/pkg/app"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	difficulty := flag.String("difficulty", "", "跳过标题界面，直接以指定难度开始战斗（如 PILOT）")
	flag.Parse()

	// 初始化嵌入资源，必须在任何配置加载之前完成
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Difficulty: *difficulty,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(int(config.ScreenWidth), int(config.ScreenHeight))
	ebiten.SetWindowTitle("星际防线 Cosmic Defenders")

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
