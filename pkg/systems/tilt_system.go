package systems

import (
	"github.com/decker502/arkick/pkg/game"
	"github.com/decker502/arkick/pkg/motion"
	"github.com/decker502/arkick/pkg/sensor"
)

// TiltSystem 把设备方向读数映射到手套模型
//
// 每帧取出自上一帧以来的所有读数并按顺序应用，最后一个读数生效。
// 手套尚未加载时读数被丢弃，不做缓存。
type TiltSystem struct {
	source  sensor.OrientationSource
	mapper  motion.TiltMapper
	session *game.Session

	applied int
	dropped int
	last    sensor.OrientationReading
}

// NewTiltSystem 创建倾斜系统
func NewTiltSystem(source sensor.OrientationSource, mapper motion.TiltMapper, session *game.Session) *TiltSystem {
	return &TiltSystem{
		source:  source,
		mapper:  mapper,
		session: session,
	}
}

// SetMapper 替换映射参数（用户调整灵敏度或方向后）
func (s *TiltSystem) SetMapper(m motion.TiltMapper) {
	s.mapper = m
}

// Mapper 返回当前映射参数
func (s *TiltSystem) Mapper() motion.TiltMapper {
	return s.mapper
}

// Update 处理本帧的读数
func (s *TiltSystem) Update() {
	if s.source == nil {
		return
	}
	for _, r := range s.source.Poll() {
		s.last = r
		if s.mapper.Apply(r, s.session.Glove) {
			s.applied++
		} else {
			s.dropped++
		}
	}
}

// LastReading 返回最近一次收到的读数（调试显示）
func (s *TiltSystem) LastReading() sensor.OrientationReading {
	return s.last
}

// Stats 返回已应用和已丢弃的读数数量
func (s *TiltSystem) Stats() (applied, dropped int) {
	return s.applied, s.dropped
}

// Overflow 返回来源队列溢出丢弃的读数数量，来源不报告时为 0
func (s *TiltSystem) Overflow() int {
	if r, ok := s.source.(sensor.OverflowReporter); ok {
		return r.Dropped()
	}
	return 0
}
