// Package utils 提供场景中通用的工具函数
//
// projection.go 负责把世界坐标投影到屏幕坐标。
//
// # 坐标系统
//
//   - **世界坐标**：右手系，+Y 向上，相机默认朝 -Z 看
//   - **相机坐标**：经视图矩阵变换后的坐标，可见点满足 z < -Near
//   - **屏幕坐标**：相对于窗口左上角，+Y 向下（Ebiten 默认）
//
// 投影公式（f 为焦距，由垂直视场角和屏幕高度计算）：
//
//	screenX = W/2 + f * x / depth
//	screenY = H/2 - f * y / depth
//	depth   = -z
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projector 描述一个针孔相机的投影参数
type Projector struct {
	Width  int     // 渲染表面宽度（像素）
	Height int     // 渲染表面高度（像素）
	FovY   float64 // 垂直视场角（度）
	Near   float64 // 近裁剪面距离
	Far    float64 // 远裁剪面距离
}

// FocalLength 返回以像素为单位的焦距
func (p Projector) FocalLength() float64 {
	halfFov := mgl64.DegToRad(p.FovY) / 2
	return float64(p.Height) / 2 / math.Tan(halfFov)
}

// Project 把世界坐标点经视图矩阵投影到屏幕
//
// 返回：
//   - x, y: 屏幕坐标
//   - depth: 相机前方的距离（越大越远）
//   - ok: 点位于近、远裁剪面之间时为 true
func (p Projector) Project(view mgl64.Mat4, world mgl64.Vec3) (x, y, depth float64, ok bool) {
	cam := view.Mul4x1(world.Vec4(1)).Vec3()
	depth = -cam.Z()
	if depth < p.Near || depth > p.Far {
		return 0, 0, depth, false
	}

	f := p.FocalLength()
	x = float64(p.Width)/2 + f*cam.X()/depth
	y = float64(p.Height)/2 - f*cam.Y()/depth
	return x, y, depth, true
}

// ScreenSize 返回世界尺寸 size 在距离 depth 处的屏幕像素大小
func (p Projector) ScreenSize(size, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return p.FocalLength() * size / depth
}

// ViewMatrix 根据相机位置和绕 Y 轴的偏航角构造视图矩阵
// yaw 为弧度，正值向左转
func ViewMatrix(position mgl64.Vec3, yaw float64) mgl64.Mat4 {
	rotation := mgl64.HomogRotate3DY(-yaw)
	translation := mgl64.Translate3D(-position.X(), -position.Y(), -position.Z())
	return rotation.Mul4(translation)
}

// RotateY 把向量绕 Y 轴旋转 angle 弧度
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}
