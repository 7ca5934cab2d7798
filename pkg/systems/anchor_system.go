package systems

import (
	"log"

	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/ecs"
	"github.com/decker502/arkick/pkg/game"
)

// AnchorSystem 维护即时追踪锚点
//
// 放置前锚点每帧跟随相机，保持在相机前方的固定偏移处；
// 会话进入已放置状态后锚点锁定在当前世界位姿，之后相机移动不再影响它。
type AnchorSystem struct {
	entityManager *ecs.EntityManager
	rig           *game.CameraRig
	session       *game.Session
}

// NewAnchorSystem 创建锚点系统
func NewAnchorSystem(em *ecs.EntityManager, rig *game.CameraRig, session *game.Session) *AnchorSystem {
	return &AnchorSystem{
		entityManager: em,
		rig:           rig,
		session:       session,
	}
}

// Update 更新所有锚点
func (s *AnchorSystem) Update() {
	entities := ecs.GetEntitiesWith2[components.AnchorComponent, components.TransformComponent](s.entityManager)
	for _, id := range entities {
		anchor, _ := ecs.GetComponent[components.AnchorComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[components.TransformComponent](s.entityManager, id)

		if anchor.Locked {
			continue
		}
		if s.session.Placed {
			anchor.Locked = true
			log.Printf("[AnchorSystem] 锚点 %d 已锁定在 (%.2f, %.2f, %.2f)",
				id, transform.Position.X(), transform.Position.Y(), transform.Position.Z())
			continue
		}

		transform.Position = s.rig.PoseFromOffset(anchor.CameraOffset)
		transform.RotationY = s.rig.Yaw
	}
}
