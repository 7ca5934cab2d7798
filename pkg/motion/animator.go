// Package motion 实现场景中的两种运动：球的位置补间与手套随设备倾斜的水平偏移
//
// 两者都不持有场景对象，只修改调用方传入的位置；
// 时间由调用方显式传入，因此可以在没有真实帧循环的情况下测试。
package motion

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/utils"
)

// DefaultDuration 补间动画默认时长
const DefaultDuration = 1000 * time.Millisecond

// AnimationState 补间动画的状态
//
// 状态转换：
//
//	Idle --Start--> Running --progress 到达 1--> Done
//	Done --Start--> Running
//	Running --Start(RetriggerRestart)--> Running（新的一次运行）
type AnimationState int

const (
	// AnimationIdle 尚未开始
	AnimationIdle AnimationState = iota
	// AnimationRunning 运行中，每帧需要调用 Advance
	AnimationRunning
	// AnimationDone 已结束，位置停在目标点，不再需要后续帧
	AnimationDone
)

// String 返回状态名称（用于日志）
func (s AnimationState) String() string {
	switch s {
	case AnimationIdle:
		return "Idle"
	case AnimationRunning:
		return "Running"
	case AnimationDone:
		return "Done"
	default:
		return fmt.Sprintf("AnimationState(%d)", int(s))
	}
}

// RetriggerPolicy 决定运行中再次调用 Start 时的行为
type RetriggerPolicy int

const (
	// RetriggerIgnore 运行中忽略新的触发，当前运行不受影响
	RetriggerIgnore RetriggerPolicy = iota
	// RetriggerRestart 取消当前运行，从传入位置重新开始
	RetriggerRestart
)

// 配置文件中使用的重复触发策略名称
const (
	RetriggerNameIgnore  = "ignore"
	RetriggerNameRestart = "restart"
)

// ParseRetriggerPolicy 解析配置中的策略名称，空字符串视为 ignore
func ParseRetriggerPolicy(name string) (RetriggerPolicy, error) {
	switch name {
	case "", RetriggerNameIgnore:
		return RetriggerIgnore, nil
	case RetriggerNameRestart:
		return RetriggerRestart, nil
	default:
		return RetriggerIgnore, fmt.Errorf("unknown retrigger policy %q (want %q or %q)", name, RetriggerNameIgnore, RetriggerNameRestart)
	}
}

// TargetRange 目标点的采样范围
// X 在 [MinX, MaxX) 内、Y 在 [MinY, MaxY) 内独立均匀采样，Z 固定
type TargetRange struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Z          float64
}

// DefaultTargetRange 返回默认采样范围：X ∈ [-5, 5)，Y ∈ [-2, 2)，Z = -2
func DefaultTargetRange() TargetRange {
	return TargetRange{MinX: -5, MaxX: 5, MinY: -2, MaxY: 2, Z: -2}
}

// Sample 采样一个目标点，先 X 后 Y
func (r TargetRange) Sample(src utils.RandomSource) mgl64.Vec3 {
	x := utils.RandomRange(src, r.MinX, r.MaxX)
	y := utils.RandomRange(src, r.MinY, r.MaxY)
	return mgl64.Vec3{x, y, r.Z}
}

// AnimatorConfig 补间动画配置
type AnimatorConfig struct {
	Duration  time.Duration      // 时长，<= 0 时使用 DefaultDuration
	Targets   TargetRange        // 目标采样范围
	Easing    utils.EasingFunc   // 缓动函数，nil 时为线性
	Retrigger RetriggerPolicy    // 重复触发策略
	Random    utils.RandomSource // 随机数来源，nil 时使用全局随机数
}

// PositionAnimator 在固定时长内把位置从起点线性插值到随机目标点
//
// 进度由墙钟时间决定而不是帧数，帧率波动不影响动画时长；
// 进度一旦到达 1，Advance 精确返回目标点并报告不再需要后续帧。
type PositionAnimator struct {
	cfg AnimatorConfig

	state        AnimationState
	start        mgl64.Vec3
	target       mgl64.Vec3
	startTime    time.Time
	lastProgress float64
	runs         int
}

// NewPositionAnimator 创建一个处于 Idle 状态的补间动画
func NewPositionAnimator(cfg AnimatorConfig) *PositionAnimator {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Easing == nil {
		cfg.Easing = utils.EaseLinear
	}
	return &PositionAnimator{cfg: cfg}
}

// Start 以 from 为起点开始一次运行
//
// 起点在调用时捕获，目标点在此时采样一次。
// 运行中且策略为 RetriggerIgnore 时返回 false，当前运行保持不变。
func (a *PositionAnimator) Start(from mgl64.Vec3, now time.Time) bool {
	if a.state == AnimationRunning && a.cfg.Retrigger == RetriggerIgnore {
		return false
	}

	a.start = from
	a.target = a.cfg.Targets.Sample(a.cfg.Random)
	a.startTime = now
	a.lastProgress = 0
	a.state = AnimationRunning
	a.runs++
	return true
}

// Progress 返回 now 时刻的进度 ∈ [0, 1]，不修改状态
//
// 进度不会低于上一次 Advance 时的值，即使时钟回拨也保持单调。
func (a *PositionAnimator) Progress(now time.Time) float64 {
	switch a.state {
	case AnimationIdle:
		return 0
	case AnimationDone:
		return 1
	}

	elapsed := now.Sub(a.startTime)
	p := utils.Clamp01(float64(elapsed) / float64(a.cfg.Duration))
	if p < a.lastProgress {
		p = a.lastProgress
	}
	return p
}

// Sample 返回 now 时刻的位置，不修改状态
func (a *PositionAnimator) Sample(now time.Time) mgl64.Vec3 {
	switch a.state {
	case AnimationIdle:
		return a.start
	case AnimationDone:
		return a.target
	}

	p := a.Progress(now)
	if p >= 1 {
		return a.target
	}
	e := a.cfg.Easing(p)
	return a.start.Add(a.target.Sub(a.start).Mul(e))
}

// Advance 推进动画到 now，返回当前位置以及是否还需要下一帧
//
// 每帧由渲染循环调用一次。进度到达 1 时状态变为 Done，
// 返回值精确等于目标点，之后的调用不再改变任何状态。
func (a *PositionAnimator) Advance(now time.Time) (mgl64.Vec3, bool) {
	if a.state != AnimationRunning {
		return a.Sample(now), false
	}

	p := a.Progress(now)
	a.lastProgress = p
	if p >= 1 {
		a.state = AnimationDone
		return a.target, false
	}
	return a.Sample(now), true
}

// Reset 回到 Idle 状态
func (a *PositionAnimator) Reset() {
	a.state = AnimationIdle
	a.lastProgress = 0
}

// State 返回当前状态
func (a *PositionAnimator) State() AnimationState {
	return a.state
}

// StartPosition 返回本次运行的起点
func (a *PositionAnimator) StartPosition() mgl64.Vec3 {
	return a.start
}

// Target 返回本次运行的目标点
func (a *PositionAnimator) Target() mgl64.Vec3 {
	return a.target
}

// Duration 返回动画时长
func (a *PositionAnimator) Duration() time.Duration {
	return a.cfg.Duration
}

// Runs 返回已开始的运行次数
func (a *PositionAnimator) Runs() int {
	return a.runs
}
