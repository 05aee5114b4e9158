package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/showcase/pkg/app"
	"github.com/decker502/showcase/pkg/embedded"
)

var (
	// 命令行参数
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	storeKind = flag.String("store", app.StoreGdata, "单次状态存储后端：gdata、sqlite 或 memory")
	reset     = flag.Bool("reset", false, "启动前清空所有单次状态")
	script    = flag.String("script", "", "教学脚本路径（默认使用内嵌的 data/tutorial.yaml）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Store:   *storeKind,
		Reset:   *reset,
		Script:  *script,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Showcase Demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
