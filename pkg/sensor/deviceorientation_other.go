//go:build !(js && wasm)

package sensor

// NewDeviceOrientationSource 非浏览器平台没有 deviceorientation 事件
func NewDeviceOrientationSource() (OrientationSource, error) {
	return nil, ErrUnsupported
}
