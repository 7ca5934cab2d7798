package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshPart 模型中的一个长方体部件
type MeshPart struct {
	Name   string
	Offset mgl64.Vec3 // 相对模型原点的偏移（未缩放）
	Size   mgl64.Vec3 // 长宽高（未缩放）
	Color  color.RGBA
}

// MeshComponent 由加载器生成的模型网格
// 渲染时部件偏移和尺寸都乘以 TransformComponent.Scale
type MeshComponent struct {
	Name  string
	Parts []MeshPart
}
