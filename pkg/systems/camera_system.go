package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/arkick/pkg/config"
	"github.com/decker502/arkick/pkg/game"
	"github.com/decker502/arkick/pkg/utils"
)

// CameraInput 一帧的相机控制输入
type CameraInput struct {
	Forward float64 // +1 前进，-1 后退
	Right   float64 // +1 右移，-1 左移
	Turn    float64 // +1 左转，-1 右转
	DragDX  int     // 本帧拖动的水平像素
}

// CameraSystem 在桌面端模拟设备相机的移动
//
// 真机上相机位姿来自 AR 追踪；这里用键盘和拖动代替，
// 以便在放置前后观察锚点的跟随和锁定。
type CameraSystem struct {
	rig *game.CameraRig
	cfg config.CameraConfig
}

// NewCameraSystem 创建相机控制系统
func NewCameraSystem(rig *game.CameraRig, cfg config.CameraConfig) *CameraSystem {
	return &CameraSystem{rig: rig, cfg: cfg}
}

// Update 按输入移动相机，dt 为秒
func (s *CameraSystem) Update(dt float64, in CameraInput) {
	if in.Forward != 0 || in.Right != 0 {
		step := s.cfg.MoveSpeed * dt
		s.rig.Move(in.Forward*step, in.Right*step)
	}
	turn := in.Turn * s.cfg.TurnSpeed * dt
	// 向右拖动画面等价于相机向左转
	turn += float64(in.DragDX) * s.cfg.DragTurn
	if turn != 0 {
		s.rig.Turn(turn)
	}
}

// ReadCameraInput 读取键盘 WASD/QE 和指针拖动
func ReadCameraInput(drag *utils.DragTracker) CameraInput {
	var in CameraInput
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Right++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Right--
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.Turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		in.Turn--
	}

	pressed, x, _ := utils.GetPointerState()
	in.DragDX = drag.Update(pressed, x)
	return in
}
