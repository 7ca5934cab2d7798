package systems

import (
	"log"
	"time"

	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/ecs"
	"github.com/decker502/arkick/pkg/motion"
)

// TweenSystem 每帧推进位置补间
//
// 补间只挂在运行中的实体上：动画结束时系统写入精确的目标点并移除
// TweenComponent，之后该实体不会再收到任何补间回调。
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Launch 以实体当前的局部位置为起点启动补间
//
// 返回 false 表示实体没有 TransformComponent，或动画按重复触发策略忽略了这次请求。
func (s *TweenSystem) Launch(id ecs.EntityID, animator *motion.PositionAnimator, now time.Time) bool {
	transform, ok := ecs.GetComponent[components.TransformComponent](s.entityManager, id)
	if !ok {
		log.Printf("[TweenSystem] Warning: 实体 %d 没有 TransformComponent", id)
		return false
	}
	if !animator.Start(transform.Position, now) {
		return false
	}

	ecs.AddComponent(s.entityManager, id, &components.TweenComponent{Animator: animator})
	target := animator.Target()
	log.Printf("[TweenSystem] 实体 %d 开始补间: 目标 (%.2f, %.2f, %.2f), 时长 %v",
		id, target.X(), target.Y(), target.Z(), animator.Duration())
	return true
}

// Update 把所有补间推进到 now，返回仍在运行的补间数量
func (s *TweenSystem) Update(now time.Time) int {
	active := 0
	entities := ecs.GetEntitiesWith2[components.TweenComponent, components.TransformComponent](s.entityManager)
	for _, id := range entities {
		tween, _ := ecs.GetComponent[components.TweenComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[components.TransformComponent](s.entityManager, id)

		pos, running := tween.Animator.Advance(now)
		transform.Position = pos
		if running {
			active++
			continue
		}

		ecs.RemoveComponent[components.TweenComponent](s.entityManager, id)
		log.Printf("[TweenSystem] 实体 %d 补间完成", id)
	}
	return active
}
