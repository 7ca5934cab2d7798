package sensor

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardSource 在没有朝向传感器的桌面端用方向键模拟设备倾斜
//
// 按住左/右方向键时 Gamma 以 Step 度每帧向 ∓MaxGamma 变化，
// 松开后以同样速度回正。只有 Gamma 改变的帧才产生读数，
// 与浏览器只在朝向变化时派发事件的行为一致。
type KeyboardSource struct {
	Step     float64 // 每帧变化量（度）
	MaxGamma float64 // 最大倾斜角（度）

	// isKeyPressed 默认使用 ebiten.IsKeyPressed，测试中可替换
	isKeyPressed func(ebiten.Key) bool
	gamma        float64
}

// NewKeyboardSource 创建键盘模拟来源
func NewKeyboardSource(step, maxGamma float64) *KeyboardSource {
	return &KeyboardSource{
		Step:         step,
		MaxGamma:     maxGamma,
		isKeyPressed: ebiten.IsKeyPressed,
	}
}

// Gamma 返回当前模拟的倾斜角
func (s *KeyboardSource) Gamma() float64 {
	return s.gamma
}

// Poll 实现 OrientationSource，每帧调用一次
func (s *KeyboardSource) Poll() []OrientationReading {
	left := s.isKeyPressed(ebiten.KeyArrowLeft)
	right := s.isKeyPressed(ebiten.KeyArrowRight)

	next := s.gamma
	switch {
	case left && !right:
		next = math.Max(s.gamma-s.Step, -s.MaxGamma)
	case right && !left:
		next = math.Min(s.gamma+s.Step, s.MaxGamma)
	default:
		// 回正
		if s.gamma > 0 {
			next = math.Max(s.gamma-s.Step, 0)
		} else if s.gamma < 0 {
			next = math.Min(s.gamma+s.Step, 0)
		}
	}

	if next == s.gamma {
		return nil
	}
	s.gamma = next
	return []OrientationReading{NewGammaReading(next)}
}

// Close 实现 OrientationSource
func (s *KeyboardSource) Close() error {
	return nil
}
