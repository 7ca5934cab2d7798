//go:build mobile

package utils

// IsMobile 移动端编译时恒为 true
func IsMobile() bool {
	return true
}

// PointerVerb 返回提示文字中使用的操作动词
func PointerVerb() string {
	return "Tap"
}
