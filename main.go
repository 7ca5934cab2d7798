// Command arkick 运行 AR 射门演示
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose            Enable verbose logging
//	--config <path>      Load the scene config from disk instead of the embedded data/scene.yaml
//	--seed <n>           Fixed seed for the ball target sampling (0 = random)
//	--skip-permission    Skip the camera permission prompt
//
// Controls:
//
//	Click/Tap   - Place the content and launch the ball
//	WASD/QE     - Move and turn the camera (desktop stand-in for device motion)
//	←/→         - Simulated device tilt (when no orientation sensor is available)
//	[ / ]       - Tilt sensitivity
//	I           - Invert tilt
//	F3          - Debug overlay
//	F11         - Fullscreen
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/arkick/pkg/app"
	"github.com/decker502/arkick/pkg/embedded"
)

var (
	verboseFlag        = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag         = flag.String("config", "", "Scene config file (default: embedded data/scene.yaml)")
	seedFlag           = flag.Uint64("seed", 0, "Fixed random seed for ball targets (0 = random)")
	skipPermissionFlag = flag.Bool("skip-permission", false, "Skip the camera permission prompt")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verboseFlag,
		ConfigPath:     *configFlag,
		Seed:           *seedFlag,
		SkipPermission: *skipPermissionFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	window := gameApp.SceneConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
