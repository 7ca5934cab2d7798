package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 每个可配置的缓动函数都必须精确经过 0 和 1
// 补间动画依赖这一点保证在起点和终点落位精确
func TestEasingEndpoints(t *testing.T) {
	for name, fn := range easingsByName {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); got != 0 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); got != 1 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
		})
	}
}

// TestEasingMidpoints 测试各缓动函数在中点的取值
func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		fn       EasingFunc
		expected float64
	}{
		{EasingNameLinear, EaseLinear, 0.5},
		{EasingNameOutCubic, EaseOutCubic, 0.875}, // 1 - 0.5^3
		{EasingNameInCubic, EaseInCubic, 0.125},
		{EasingNameInOutCubic, EaseInOutCubic, 0.5},
		{EasingNameOutQuad, EaseOutQuad, 0.75},
		{EasingNameInQuad, EaseInQuad, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(0.5)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("%s(0.5) = %v, 期望 %v", tt.name, result, tt.expected)
			}
		})
	}
}

// TestEasingMonotonic 缓动后的进度不能回退
func TestEasingMonotonic(t *testing.T) {
	for name, fn := range easingsByName {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			cur := fn(float64(i) / 100)
			if cur < prev {
				t.Errorf("%s 在 t=%v 处回退: %v < %v", name, float64(i)/100, cur, prev)
				break
			}
			prev = cur
		}
	}
}

func TestEasingByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"", true},
		{"linear", true},
		{"outCubic", true},
		{"inOutCubic", true},
		{"bounce", false},
		{"Linear", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := EasingByName(tt.name)
			if ok != tt.found {
				t.Fatalf("EasingByName(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if ok && fn == nil {
				t.Errorf("EasingByName(%q) returned nil func", tt.name)
			}
		})
	}

	// 空名称等价于 linear
	fn, _ := EasingByName("")
	if fn(0.3) != 0.3 {
		t.Errorf("empty easing name should be linear, got f(0.3) = %v", fn(0.3))
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		input, expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{1.5, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"负数范围", -20.0, -2.0, 0.5, -11.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}
