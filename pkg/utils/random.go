package utils

import (
	"math"
	"math/rand/v2"
)

// RandomSource 是均匀分布在 [0, 1) 上的随机数来源
// *rand.Rand 满足该接口；测试中可以注入固定序列
type RandomSource interface {
	Float64() float64
}

// NewSeededSource 创建一个可复现的随机数来源
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomRange 返回 [min, max) 内均匀分布的随机数
//
// 参数：
//   - src: 随机数来源，nil 时使用包级全局随机数
//   - min, max: 区间边界，调用方保证 min <= max 且均为有限值
//
// min == max 时区间退化，直接返回 min。
func RandomRange(src RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}

	var f float64
	if src != nil {
		f = src.Float64()
	} else {
		f = rand.Float64()
	}

	v := min + f*(max-min)
	// f 接近 1 时浮点舍入可能恰好得到 max，收回到开区间内
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}
