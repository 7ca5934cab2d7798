package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/ecs"
)

// TransformComponent 存储实体在父节点坐标系中的位置、缩放和朝向
//
// Parent 为 ecs.InvalidEntity 时坐标即世界坐标；
// 否则先按父节点的 RotationY 旋转，再加上父节点的世界位置。
type TransformComponent struct {
	Position  mgl64.Vec3
	Scale     mgl64.Vec3
	RotationY float64 // 绕 Y 轴的旋转（弧度）
	Parent    ecs.EntityID
}

// NewTransform 创建一个单位缩放的变换
func NewTransform(position mgl64.Vec3, parent ecs.EntityID) *TransformComponent {
	return &TransformComponent{
		Position: position,
		Scale:    mgl64.Vec3{1, 1, 1},
		Parent:   parent,
	}
}
