package main

import (
	"flag"
	"log"

	"github.com/decker502/rpgproto/pkg/app"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	scenePath := flag.String("scene", app.DefaultScenePath, "要加载的场景配置文件")
	flag.Parse()

	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		ScenePath: *scenePath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("RPG Proto")
	ebiten.SetTPS(config.TicksPerSecond)
	if gameApp.Settings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
