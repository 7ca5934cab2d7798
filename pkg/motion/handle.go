package motion

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrModelAlreadySettled 表示对已经加载完成或失败的句柄再次结算
var ErrModelAlreadySettled = errors.New("model handle already settled")

// ModelState 异步加载模型的状态
type ModelState int

const (
	// ModelPending 加载尚未完成，此时对模型的修改一律忽略
	ModelPending ModelState = iota
	// ModelLoaded 已加载并挂到场景中
	ModelLoaded
	// ModelFailed 加载失败，保持不可用
	ModelFailed
)

// String 返回状态名称（用于日志）
func (s ModelState) String() string {
	switch s {
	case ModelPending:
		return "Pending"
	case ModelLoaded:
		return "Loaded"
	case ModelFailed:
		return "Failed"
	default:
		return fmt.Sprintf("ModelState(%d)", int(s))
	}
}

// ModelHandle 指向一个异步加载的模型
//
// 句柄在加载器完成前处于 Pending，完成后只结算一次（Loaded 或 Failed）。
// nil 句柄等价于 Pending。
type ModelHandle struct {
	name     string
	state    ModelState
	position *mgl64.Vec3
	err      error
}

// NewPendingModel 创建一个等待加载的句柄
func NewPendingModel(name string) *ModelHandle {
	return &ModelHandle{name: name}
}

// Resolve 标记模型已加载，position 指向场景中模型的位置
func (h *ModelHandle) Resolve(position *mgl64.Vec3) error {
	if h.state != ModelPending {
		return fmt.Errorf("resolve %q: %w", h.name, ErrModelAlreadySettled)
	}
	if position == nil {
		return fmt.Errorf("resolve %q: nil position", h.name)
	}
	h.position = position
	h.state = ModelLoaded
	return nil
}

// Fail 标记模型加载失败
func (h *ModelHandle) Fail(err error) error {
	if h.state != ModelPending {
		return fmt.Errorf("fail %q: %w", h.name, ErrModelAlreadySettled)
	}
	h.err = err
	h.state = ModelFailed
	return nil
}

// Name 返回模型名称
func (h *ModelHandle) Name() string {
	if h == nil {
		return ""
	}
	return h.name
}

// State 返回当前状态
func (h *ModelHandle) State() ModelState {
	if h == nil {
		return ModelPending
	}
	return h.state
}

// Position 返回模型位置；仅在 Loaded 状态下可用
func (h *ModelHandle) Position() (*mgl64.Vec3, bool) {
	if h == nil || h.state != ModelLoaded {
		return nil, false
	}
	return h.position, true
}

// Err 返回加载失败的原因
func (h *ModelHandle) Err() error {
	if h == nil {
		return nil
	}
	return h.err
}
