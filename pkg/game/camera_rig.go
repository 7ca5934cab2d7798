package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/utils"
)

// CameraRig 设备相机在世界中的位姿
//
// 真机上位姿来自 AR 追踪；桌面端由键盘和拖动驱动，
// 用来展示放置后锚点保持在世界中的效果。
type CameraRig struct {
	Position mgl64.Vec3
	Yaw      float64 // 绕 Y 轴（弧度），正值向左转
}

// Forward 返回相机朝向（水平面内单位向量）
func (c *CameraRig) Forward() mgl64.Vec3 {
	return utils.RotateY(mgl64.Vec3{0, 0, -1}, c.Yaw)
}

// Right 返回相机右方向
func (c *CameraRig) Right() mgl64.Vec3 {
	return utils.RotateY(mgl64.Vec3{1, 0, 0}, c.Yaw)
}

// Move 沿相机自身的前/右方向平移
func (c *CameraRig) Move(forward, right float64) {
	c.Position = c.Position.Add(c.Forward().Mul(forward)).Add(c.Right().Mul(right))
}

// Turn 转动相机
func (c *CameraRig) Turn(delta float64) {
	c.Yaw += delta
}

// View 返回视图矩阵
func (c *CameraRig) View() mgl64.Mat4 {
	return utils.ViewMatrix(c.Position, c.Yaw)
}

// PoseFromOffset 返回相机坐标系中 offset 对应的世界坐标
func (c *CameraRig) PoseFromOffset(offset mgl64.Vec3) mgl64.Vec3 {
	return c.Position.Add(utils.RotateY(offset, c.Yaw))
}
