package components

import "image/color"

// BallComponent 足球的外观参数
type BallComponent struct {
	Radius     float64    // 世界单位半径
	BaseColor  color.RGBA // 球体底色
	PatchColor color.RGBA // 五边形色块颜色
}
