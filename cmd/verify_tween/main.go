// Package main 在无窗口的情况下模拟一次射门补间并逐帧打印位置
//
// Usage:
//
//	go run ./cmd/verify_tween [flags]
//
// Flags:
//
//	--config <path>    Scene config file (default: data/scene.yaml)
//	--seed <n>         Random seed for the target (default: 1)
//	--fps <n>          Simulated frame rate (default: 60)
//	--jitter <ms>      Random frame time jitter in milliseconds (default: 0)
//	--easing <name>    Override animation.easing
//
// Purpose:
//   - 确认补间在配置的时长内到达目标点且最后一帧精确落在目标上
//   - 确认帧率抖动不影响总时长
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/config"
	"github.com/decker502/arkick/pkg/motion"
	"github.com/decker502/arkick/pkg/utils"
)

var (
	configFlag = flag.String("config", config.DefaultSceneConfigPath, "Scene config file")
	seedFlag   = flag.Uint64("seed", 1, "Random seed for the target")
	fpsFlag    = flag.Int("fps", 60, "Simulated frame rate")
	jitterFlag = flag.Int("jitter", 0, "Random frame time jitter in milliseconds")
	easingFlag = flag.String("easing", "", "Override animation.easing")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadSceneConfig(*configFlag)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	if *easingFlag != "" {
		cfg.Animation.Easing = *easingFlag
		if err := cfg.Validate(); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
	}
	if *fpsFlag <= 0 {
		fmt.Printf("❌ fps 必须为正数: %d\n", *fpsFlag)
		os.Exit(1)
	}

	src := utils.NewSeededSource(*seedFlag)
	animator := motion.NewPositionAnimator(cfg.AnimatorConfig(src))

	start := cfg.Ball.Start.Vec()
	clock := time.Unix(0, 0)
	animator.Start(start, clock)
	target := animator.Target()

	fmt.Printf("起点: %s\n", formatVec(start))
	fmt.Printf("目标: %s\n", formatVec(target))
	fmt.Printf("时长: %v, 缓动: %s, 帧率: %d\n\n", animator.Duration(), cfg.Animation.Easing, *fpsFlag)
	fmt.Printf("%6s %8s %9s  %s\n", "frame", "t(ms)", "progress", "position")

	frame := time.Second / time.Duration(*fpsFlag)
	jitter := time.Duration(*jitterFlag) * time.Millisecond
	frames := 0
	var pos mgl64.Vec3
	for running := true; running; {
		step := frame
		if jitter > 0 {
			step += time.Duration(utils.RandomRange(src, -float64(jitter), float64(jitter)))
			step = max(step, time.Millisecond)
		}
		clock = clock.Add(step)
		frames++

		progress := animator.Progress(clock)
		pos, running = animator.Advance(clock)
		fmt.Printf("%6d %8d %9.4f  %s\n", frames, clock.Sub(time.Unix(0, 0)).Milliseconds(), progress, formatVec(pos))
	}

	fmt.Println()
	if pos != target {
		fmt.Printf("❌ 最后一帧 %s 不等于目标 %s\n", formatVec(pos), formatVec(target))
		os.Exit(1)
	}
	if animator.State() != motion.AnimationDone {
		fmt.Printf("❌ 结束状态为 %s\n", animator.State())
		os.Exit(1)
	}
	fmt.Printf("✅ %d 帧后精确到达目标，状态 %s\n", frames, animator.State())
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X(), v.Y(), v.Z())
}
