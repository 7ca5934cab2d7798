package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the demo (permission prompt, AR view).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，渲染表面尺寸变化时被调用
//
// 浏览器窗口或设备旋转导致尺寸变化时，场景据此更新投影宽高比。
type Resizable interface {
	Resize(width, height int)
}

// Closable 是一个可选接口，场景被替换或程序退出时释放资源
//
// 例如 AR 场景在这里注销设备方向监听。
type Closable interface {
	Close() error
}
