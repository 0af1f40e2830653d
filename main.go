package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/archery/pkg/app"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "游戏配置文件路径（默认使用内置 data/archery.yaml）")
	hitboxes := flag.Bool("hitboxes", false, "显示箭头碰撞盒与靶区域轮廓")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ConfigPath:   *configPath,
		ShowHitboxes: *hitboxes,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(gameApp.TicksPerSecond())
	ebiten.SetFullscreen(gameApp.StartFullscreen())

	// RunGame 在窗口关闭或场景返回 ebiten.Termination 时返回
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	gameApp.GetSceneManager().SaveOnExit()
}
