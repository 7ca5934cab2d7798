// Package sensor 提供设备朝向读数的来源
//
// 宿主平台（浏览器的 deviceorientation 事件、桌面端键盘模拟）产生的读数
// 统一表示为 OrientationReading，由场景在每帧 Update 中拉取并处理。
// 读数不做平滑或滤波，也不在处理后保留。
package sensor

import "errors"

// ErrUnsupported 表示当前平台没有可用的朝向传感器
var ErrUnsupported = errors.New("orientation sensor not supported on this platform")

// OrientationReading 单次朝向事件
type OrientationReading struct {
	// Gamma 设备绕前后轴的倾斜角（度，带符号）
	Gamma float64
	// HasGamma 传感器是否报告了 Gamma；为 false 时 Gamma 视为 0
	HasGamma bool
}

// NewGammaReading 创建一个带 Gamma 值的读数
func NewGammaReading(gamma float64) OrientationReading {
	return OrientationReading{Gamma: gamma, HasGamma: true}
}

// GammaOrZero 返回 Gamma，未报告时返回 0
func (r OrientationReading) GammaOrZero() float64 {
	if !r.HasGamma {
		return 0
	}
	return r.Gamma
}

// OrientationSource 朝向读数来源
type OrientationSource interface {
	// Poll 返回自上次调用以来到达的全部读数，按到达顺序排列
	// 从不阻塞；没有新读数时返回空切片
	Poll() []OrientationReading
	// Close 释放来源持有的监听器
	Close() error
}

// OverflowReporter 由带缓冲队列的来源实现
type OverflowReporter interface {
	// Dropped 返回因两帧之间读数过多、队列已满而丢弃的读数数量
	Dropped() int
}
