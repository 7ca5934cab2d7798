package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/internal/model"
	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/embedded"
)

// ReadFileFunc 读取资源文件的函数，默认使用 embedded.ReadFile
type ReadFileFunc func(path string) ([]byte, error)

// ModelLoadResult 一次异步加载的结果，Model 与 Err 恰好有一个非空
type ModelLoadResult struct {
	Path  string
	Model *model.Model
	Err   error
}

// ModelLoader 在后台 goroutine 中读取并解析模型文件
//
// 结果通过容量为 1 的通道交付，游戏循环每帧调用 Poll() 非阻塞地检查，
// 所有场景修改都留在游戏循环所在的 goroutine 中完成。
type ModelLoader struct {
	path    string
	results chan ModelLoadResult
	cancel  context.CancelFunc
	done    bool
}

// StartModelLoad 启动异步加载
//
// 参数：
//   - ctx: 取消加载（场景关闭时）
//   - path: 模型文件路径（data/ 下）
//   - delay: 模拟网络加载延迟，0 表示不等待
//   - read: 读取函数，nil 时使用 embedded.ReadFile
func StartModelLoad(ctx context.Context, path string, delay time.Duration, read ReadFileFunc) *ModelLoader {
	if read == nil {
		read = embedded.ReadFile
	}
	ctx, cancel := context.WithCancel(ctx)
	l := &ModelLoader{
		path:    path,
		results: make(chan ModelLoadResult, 1),
		cancel:  cancel,
	}

	log.Printf("[ModelLoader] 开始加载模型: %s (延迟 %v)", path, delay)
	go l.run(ctx, delay, read)
	return l
}

func (l *ModelLoader) run(ctx context.Context, delay time.Duration, read ReadFileFunc) {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			l.results <- ModelLoadResult{Path: l.path, Err: fmt.Errorf("load model %s: %w", l.path, ctx.Err())}
			return
		case <-timer.C:
		}
	}

	result := ModelLoadResult{Path: l.path}
	data, err := read(l.path)
	if err != nil {
		result.Err = fmt.Errorf("load model %s: %w", l.path, err)
		l.results <- result
		return
	}
	m, err := model.ParseModel(data)
	if err != nil {
		result.Err = fmt.Errorf("load model %s: %w", l.path, err)
		l.results <- result
		return
	}
	result.Model = m
	l.results <- result
}

// Poll 非阻塞地检查结果，结果只交付一次
func (l *ModelLoader) Poll() (ModelLoadResult, bool) {
	if l.done {
		return ModelLoadResult{}, false
	}
	select {
	case r := <-l.results:
		l.done = true
		return r, true
	default:
		return ModelLoadResult{}, false
	}
}

// Wait 阻塞等待结果（命令行工具和测试使用）
func (l *ModelLoader) Wait(ctx context.Context) (ModelLoadResult, error) {
	if l.done {
		return ModelLoadResult{}, fmt.Errorf("load model %s: result already delivered", l.path)
	}
	select {
	case r := <-l.results:
		l.done = true
		return r, nil
	case <-ctx.Done():
		return ModelLoadResult{}, ctx.Err()
	}
}

// Cancel 取消尚未完成的加载
func (l *ModelLoader) Cancel() {
	l.cancel()
}

// BuildMeshComponent 把解析后的模型转换为网格组件
func BuildMeshComponent(m *model.Model) (*components.MeshComponent, error) {
	mesh := &components.MeshComponent{
		Name:  m.Name,
		Parts: make([]components.MeshPart, 0, len(m.Parts)),
	}
	for _, p := range m.Parts {
		c, err := model.ParseColor(p.Color)
		if err != nil {
			return nil, fmt.Errorf("model %s part %s: %w", m.Name, p.Name, err)
		}
		mesh.Parts = append(mesh.Parts, components.MeshPart{
			Name:   p.Name,
			Offset: mgl64.Vec3(p.Offset),
			Size:   mgl64.Vec3(p.Size),
			Color:  c,
		})
	}
	return mesh, nil
}
