package components

import "github.com/go-gl/mathgl/mgl64"

// AnchorComponent 标记实体为即时世界追踪的锚点组
//
// 放置前锚点每帧跟随相机，保持在相机坐标系的 CameraOffset 处；
// 用户放置后 Locked 置为 true，锚点固定在世界中，子节点随之固定。
type AnchorComponent struct {
	CameraOffset mgl64.Vec3
	Locked       bool
}
