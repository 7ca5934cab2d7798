//go:build !mobile

// 普通构建（桌面端、浏览器）下 mobile 包只剩这个文件。
// gomobile 绑定入口在 mobile.go，需要 -tags mobile 才会编译。
package mobile

// Dummy 让 `go build ./...` 在非移动端也能找到可编译的文件
func Dummy() {}
