package entities

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/ecs"
)

// NewAnchorEntity 创建即时追踪锚点实体
//
// 参数:
//   - em: 实体管理器
//   - cameraOffset: 放置前锚点相对相机的位置
//   - position: 锚点的初始世界坐标（通常为相机位姿加上 cameraOffset）
//   - yaw: 锚点的初始朝向（弧度）
func NewAnchorEntity(em *ecs.EntityManager, cameraOffset, position mgl64.Vec3, yaw float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	transform := components.NewTransform(position, ecs.InvalidEntity)
	transform.RotationY = yaw
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, &components.AnchorComponent{CameraOffset: cameraOffset})
	return id, nil
}

// NewBallEntity 创建足球实体，挂在锚点下
//
// 参数:
//   - em: 实体管理器
//   - anchor: 父节点锚点
//   - start: 相对锚点的初始位置
//   - ball: 足球外观
func NewBallEntity(em *ecs.EntityManager, anchor ecs.EntityID, start mgl64.Vec3, ball components.BallComponent) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if !em.Exists(anchor) {
		return ecs.InvalidEntity, fmt.Errorf("anchor entity %d does not exist", anchor)
	}
	if ball.Radius <= 0 {
		return ecs.InvalidEntity, fmt.Errorf("ball radius must be positive, got %v", ball.Radius)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, components.NewTransform(start, anchor))
	ecs.AddComponent(em, id, &ball)
	return id, nil
}

// ModelPlacement 模型挂到锚点下时的局部变换
type ModelPlacement struct {
	Position  mgl64.Vec3
	Scale     mgl64.Vec3
	RotationY float64
}

// NewModelEntity 创建已加载模型的实体，挂在锚点下
//
// 返回实体 ID 和它的 TransformComponent，调用方用 Position 字段的地址结算模型句柄。
func NewModelEntity(em *ecs.EntityManager, anchor ecs.EntityID, mesh *components.MeshComponent, placement ModelPlacement) (ecs.EntityID, *components.TransformComponent, error) {
	if em == nil {
		return ecs.InvalidEntity, nil, fmt.Errorf("entity manager cannot be nil")
	}
	if mesh == nil || len(mesh.Parts) == 0 {
		return ecs.InvalidEntity, nil, fmt.Errorf("model mesh is empty")
	}
	if !em.Exists(anchor) {
		return ecs.InvalidEntity, nil, fmt.Errorf("anchor entity %d does not exist", anchor)
	}

	id := em.CreateEntity()
	transform := components.NewTransform(placement.Position, anchor)
	transform.Scale = placement.Scale
	transform.RotationY = placement.RotationY
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, mesh)
	return id, transform, nil
}
