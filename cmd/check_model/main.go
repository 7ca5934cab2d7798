// Package main 校验模型文件和场景配置
//
// Usage:
//
//	go run ./cmd/check_model [--scene data/scene.yaml] [--timeout 5s] [model files...]
//
// 场景配置中 glove.model 指向的模型按运行时的方式加载：
// 从数据目录读取、后台解析、转换为网格组件。
// 额外给出的模型文件直接从磁盘解析。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/decker502/arkick/internal/model"
	"github.com/decker502/arkick/pkg/config"
	"github.com/decker502/arkick/pkg/embedded"
	"github.com/decker502/arkick/pkg/game"
)

var (
	sceneFlag   = flag.String("scene", config.DefaultSceneConfigPath, "Scene config file")
	timeoutFlag = flag.Duration("timeout", 5*time.Second, "Glove load timeout")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadSceneConfig(*sceneFlag)
	if err != nil {
		fmt.Printf("❌ 场景配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 场景配置 %s 有效\n", *sceneFlag)

	failed := 0
	if err := checkGlove(cfg); err != nil {
		fmt.Printf("❌ %v\n", err)
		failed++
	}

	for _, p := range flag.Args() {
		m, err := model.ParseModelFile(p)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			failed++
			continue
		}
		printModel(p, m)
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个模型文件无效\n", failed)
		os.Exit(1)
	}
}

// checkGlove 通过场景使用的加载器加载手套模型
// 数据目录以当前工作目录为根，需在项目根目录运行
func checkGlove(cfg *config.SceneConfig) error {
	embedded.Init(os.DirFS("."))

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	loader := game.StartModelLoad(ctx, cfg.Glove.Model, 0, nil)
	result, err := loader.Wait(ctx)
	if err != nil {
		loader.Cancel()
		return fmt.Errorf("glove %s: %w", cfg.Glove.Model, err)
	}
	if result.Err != nil {
		return result.Err
	}

	mesh, err := game.BuildMeshComponent(result.Model)
	if err != nil {
		return fmt.Errorf("glove %s: %w", cfg.Glove.Model, err)
	}
	printModel(cfg.Glove.Model, result.Model)
	fmt.Printf("   网格组件: %d 个部件\n", len(mesh.Parts))
	return nil
}

func printModel(p string, m *model.Model) {
	fmt.Printf("✅ %s: 模型 %q, %d 个部件\n", p, m.Name, len(m.Parts))
	for _, part := range m.Parts {
		fmt.Printf("   - %-12s offset=%v size=%v color=%s\n", part.Name, part.Offset, part.Size, part.Color)
	}
}
