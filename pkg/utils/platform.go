//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，可以通过 ARKICK_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv("ARKICK_MOBILE_EMULATE") == "1"
}

// PointerVerb 返回提示文字中使用的操作动词
func PointerVerb() string {
	if IsMobile() {
		return "Tap"
	}
	return "Click"
}
