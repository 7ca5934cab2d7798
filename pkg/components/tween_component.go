package components

import "github.com/decker502/arkick/pkg/motion"

// TweenComponent 挂在正在做位置补间的实体上
//
// TweenSystem 每帧推进 Animator 并写回 TransformComponent.Position，
// 动画结束后移除此组件，之后不再有任何帧回调触及该实体。
type TweenComponent struct {
	Animator *motion.PositionAnimator
}
