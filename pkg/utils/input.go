// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 同时支持鼠标点击和触摸输入，优先检测触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// DragTracker 把逐帧的指针状态转换为水平拖动增量
// 用于在桌面端用鼠标拖动模拟设备转动
type DragTracker struct {
	active bool
	lastX  int
}

// Update 输入本帧指针状态，返回相对上一帧的水平位移（像素）
// 按下的第一帧只记录起点，返回 0
func (d *DragTracker) Update(pressed bool, x int) int {
	if !pressed {
		d.active = false
		return 0
	}
	if !d.active {
		d.active = true
		d.lastX = x
		return 0
	}
	dx := x - d.lastX
	d.lastX = x
	return dx
}

// IsDragging 报告指针当前是否处于按下状态
func (d *DragTracker) IsDragging() bool {
	return d.active
}
