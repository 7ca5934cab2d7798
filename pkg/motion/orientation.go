package motion

import (
	"github.com/decker502/arkick/pkg/sensor"
)

// DefaultTiltSensitivity 每度倾斜对应的水平位移（世界单位）
const DefaultTiltSensitivity = 0.05

// TiltMapper 把设备倾斜读数映射为模型的水平位置
type TiltMapper struct {
	Sensitivity float64
	Invert      bool
}

// NewTiltMapper 使用默认灵敏度创建映射器
func NewTiltMapper() TiltMapper {
	return TiltMapper{Sensitivity: DefaultTiltSensitivity}
}

// Offset 计算读数对应的水平位移，未报告 gamma 时按 0 处理
func (m TiltMapper) Offset(r sensor.OrientationReading) float64 {
	x := r.GammaOrZero() * m.Sensitivity
	if m.Invert {
		x = -x
	}
	return x
}

// Apply 把读数写入模型位置的 X 分量
//
// 模型尚未加载（nil、Pending 或 Failed）时什么也不做并返回 false，
// 这类读数直接丢弃，不做缓存，也不报告错误。
func (m TiltMapper) Apply(r sensor.OrientationReading, model *ModelHandle) bool {
	pos, ok := model.Position()
	if !ok {
		return false
	}
	pos[0] = m.Offset(r)
	return true
}
