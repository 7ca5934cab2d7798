package game

import (
	"github.com/decker502/arkick/pkg/ecs"
	"github.com/decker502/arkick/pkg/motion"
)

// Session 一次 AR 会话的状态
//
// 由 ARScene 持有并显式传给需要它的系统，不使用全局变量。
type Session struct {
	// Placed 用户是否已经放置内容；放置后锚点不再跟随相机
	Placed bool

	// Glove 手套模型句柄，加载完成前为 Pending
	Glove *motion.ModelHandle

	// 场景中的实体
	Anchor    ecs.EntityID
	Ball      ecs.EntityID
	GloveBody ecs.EntityID

	// Launches 射门次数（含被忽略之外的所有成功触发）
	Launches int
}

// NewSession 创建新会话，手套句柄处于 Pending
func NewSession(gloveName string) *Session {
	return &Session{
		Glove: motion.NewPendingModel(gloveName),
	}
}

// Place 标记已放置，首次调用返回 true
func (s *Session) Place() bool {
	if s.Placed {
		return false
	}
	s.Placed = true
	return true
}
