package utils

import "math"

// EasingFunc 把线性进度 t ∈ [0, 1] 映射为缓动后的进度
// 所有实现满足 f(0) = 0、f(1) = 1，补间动画的起点与终点因此保持精确
type EasingFunc func(t float64) float64

// 配置文件中可用的缓动名称
const (
	EasingNameLinear     = "linear"
	EasingNameOutCubic   = "outCubic"
	EasingNameInCubic    = "inCubic"
	EasingNameInOutCubic = "inOutCubic"
	EasingNameOutQuad    = "outQuad"
	EasingNameInQuad     = "inQuad"
	EasingNameOutExpo    = "outExpo"
)

var easingsByName = map[string]EasingFunc{
	EasingNameLinear:     EaseLinear,
	EasingNameOutCubic:   EaseOutCubic,
	EasingNameInCubic:    EaseInCubic,
	EasingNameInOutCubic: EaseInOutCubic,
	EasingNameOutQuad:    EaseOutQuad,
	EasingNameInQuad:     EaseInQuad,
	EasingNameOutExpo:    EaseOutExpo,
}

// EasingByName 按名称查找缓动函数，空字符串视为 linear
func EasingByName(name string) (EasingFunc, bool) {
	if name == "" {
		return EaseLinear, true
	}
	fn, ok := easingsByName[name]
	return fn, ok
}

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo 指数缓出
// 公式 1 - 2^(-10t) 在 t=1 处不等于 1，因此终点单独处理
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
