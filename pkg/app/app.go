// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器和移动端共用。
// 桌面端和浏览器通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/arkick/pkg/config"
	"github.com/decker502/arkick/pkg/game"
	"github.com/decker502/arkick/pkg/scenes"
	"github.com/decker502/arkick/pkg/sensor"
	"github.com/decker502/arkick/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的场景配置文件，为空则使用嵌入的 data/scene.yaml
	ConfigPath string
	// Seed 非零时使用固定种子采样补间目标，便于复现
	Seed uint64
	// SkipPermission 跳过相机权限请求界面
	SkipPermission bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	sceneConfig  *config.SceneConfig
	settings     *game.SettingsManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := loadSceneConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] 场景配置已加载: 补间 %dms, 重复触发 %s, 手套 %s",
		sceneConfig.Animation.DurationMs, sceneConfig.Animation.Retrigger, sceneConfig.Glove.Model)

	settings := game.NewSettingsManager(openSettingsStorage(), &game.DemoSettings{
		TiltSensitivity: sceneConfig.Tilt.Sensitivity,
	})

	var random utils.RandomSource
	if cfg.Seed != 0 {
		random = utils.NewSeededSource(cfg.Seed)
		log.Printf("[App] 使用固定随机种子: %d", cfg.Seed)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case game.ScenePermission:
			w, h := sceneManager.Size()
			return scenes.NewPermissionScene(sceneManager, w, h)
		case game.SceneAR:
			w, h := sceneManager.Size()
			arScene, err := scenes.NewARScene(scenes.ARSceneOptions{
				Config:   sceneConfig,
				Settings: settings,
				Width:    w,
				Height:   h,
				Source:   newOrientationSource(sceneConfig.Tilt),
				Random:   random,
			})
			if err != nil {
				log.Printf("[App] 错误: 无法创建 AR 场景: %v", err)
				return nil
			}
			return arScene
		default:
			return nil
		}
	})
	sceneManager.Resize(sceneConfig.Window.Width, sceneConfig.Window.Height)

	if sceneConfig.Permission.Required && !cfg.SkipPermission {
		sceneManager.LoadScene(game.ScenePermission)
	} else {
		log.Printf("[App] 跳过相机权限请求")
		sceneManager.LoadScene(game.SceneAR)
	}
	if sceneManager.GetCurrentScene() == nil {
		return nil, fmt.Errorf("failed to create initial scene")
	}

	return &App{
		sceneManager: sceneManager,
		sceneConfig:  sceneConfig,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// loadSceneConfig 优先读取磁盘配置，否则使用嵌入配置
func loadSceneConfig(path string) (*config.SceneConfig, error) {
	if path != "" {
		cfg, err := config.LoadSceneConfig(path)
		if err != nil {
			return nil, fmt.Errorf("场景配置加载失败: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadEmbeddedSceneConfig(config.DefaultSceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("嵌入场景配置加载失败: %w", err)
	}
	return cfg, nil
}

// openSettingsStorage 打开 gdata 存储，失败时返回 nil（降级为仅内存设置）
func openSettingsStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(config.SettingsAppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: config.SettingsAppName})
	if err != nil {
		log.Printf("[App] Warning: 无法打开设置存储: %v (设置不会被保存)", err)
		return nil
	}
	return manager
}

// newOrientationSource 优先使用设备方向传感器，不支持时回退到键盘模拟
func newOrientationSource(tilt config.TiltConfig) sensor.OrientationSource {
	source, err := sensor.NewDeviceOrientationSource()
	if err == nil {
		log.Printf("[App] 使用设备方向传感器")
		return source
	}
	if !errors.Is(err, sensor.ErrUnsupported) {
		log.Printf("[App] Warning: 设备方向传感器不可用: %v", err)
	}
	log.Printf("[App] 使用键盘模拟倾斜 (←/→)")
	return sensor.NewKeyboardSource(tilt.KeyboardStep, tilt.MaxGamma)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.sceneConfig.Window.Width, a.sceneConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.sceneConfig.Window.Width, a.sceneConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 渲染表面跟随窗口（或浏览器视口）尺寸，尺寸变化时通知当前场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.sceneManager.Size()
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 释放场景资源（注销传感器监听等）
func (a *App) Close() {
	a.sceneManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// SceneConfig 返回生效的场景配置
func (a *App) SceneConfig() *config.SceneConfig {
	return a.sceneConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
