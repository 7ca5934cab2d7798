package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/ecs"
	"github.com/decker502/arkick/pkg/utils"
)

// maxParentDepth 父链解析的最大深度，超过视为配置错误（例如成环）
const maxParentDepth = 16

// WorldPose 实体在世界坐标系中的位置和朝向
type WorldPose struct {
	Position mgl64.Vec3
	Yaw      float64
}

// ResolveWorldPose 沿父链解析实体的世界位姿
//
// 子节点的局部位置先按父节点的世界朝向旋转，再加上父节点的世界位置；
// 缩放不向下继承，只作用于实体自身的网格。
// 实体没有 TransformComponent、父节点缺失或父链过深时返回 false。
func ResolveWorldPose(em *ecs.EntityManager, id ecs.EntityID) (WorldPose, bool) {
	var chain []*components.TransformComponent
	for cur := id; cur != ecs.InvalidEntity; {
		if len(chain) >= maxParentDepth {
			return WorldPose{}, false
		}
		t, ok := ecs.GetComponent[components.TransformComponent](em, cur)
		if !ok {
			return WorldPose{}, false
		}
		chain = append(chain, t)
		cur = t.Parent
	}

	// 从根节点向下累积
	var pose WorldPose
	for i := len(chain) - 1; i >= 0; i-- {
		t := chain[i]
		pose.Position = pose.Position.Add(utils.RotateY(t.Position, pose.Yaw))
		pose.Yaw += t.RotationY
	}
	return pose, true
}
