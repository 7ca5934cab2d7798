package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/ecs"
	"github.com/decker502/arkick/pkg/utils"
)

// DrawKind 绘制项类型
type DrawKind int

const (
	// DrawBall 球体，按投影半径画圆
	DrawBall DrawKind = iota
	// DrawBox 网格部件，按投影宽高画矩形
	DrawBox
)

// DrawItem 一个投影到屏幕上的绘制项
type DrawItem struct {
	Entity ecs.EntityID
	Kind   DrawKind
	Part   string

	X, Y  float64 // 屏幕中心
	Depth float64 // 到相机的距离

	Radius        float64 // DrawBall
	Width, Height float64 // DrawBox

	Color      color.RGBA
	PatchColor color.RGBA // 仅 DrawBall
}

// 合成相机画面的颜色
var (
	skyColor   = color.RGBA{R: 0x9c, G: 0xc3, B: 0xe0, A: 0xff}
	floorColor = color.RGBA{R: 0x6b, G: 0x74, B: 0x6e, A: 0xff}
	gridColor  = color.RGBA{R: 0xd8, G: 0xde, B: 0xd9, A: 0x90}
)

// 地面网格参数（世界坐标）
const (
	floorY        = -1.5
	gridHalfWidth = 12
	gridDepth     = 40
	gridStep      = 2
)

// RenderSystem 把场景实体投影到屏幕并绘制
//
// 绘制顺序：
//  1. 合成的相机画面（天空、地面、地面网格）
//  2. 球体和网格部件，按深度从远到近排序
//
// 投影计算与绘制分离，Collect 不依赖 ebiten 图像，可以直接测试。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	projector     utils.Projector
	items         []DrawItem // 复用，避免每帧分配
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, projector utils.Projector) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		projector:     projector,
		items:         make([]DrawItem, 0, 16),
	}
}

// SetViewport 更新渲染表面尺寸
func (s *RenderSystem) SetViewport(width, height int) {
	s.projector.Width = width
	s.projector.Height = height
}

// Projector 返回当前投影参数
func (s *RenderSystem) Projector() utils.Projector {
	return s.projector
}

// Collect 计算所有可见实体的绘制项，按深度从远到近排序
// 返回的切片在下一次调用时被复用
func (s *RenderSystem) Collect(view mgl64.Mat4) []DrawItem {
	s.items = s.items[:0]

	for _, id := range ecs.GetEntitiesWith2[components.BallComponent, components.TransformComponent](s.entityManager) {
		ball, _ := ecs.GetComponent[components.BallComponent](s.entityManager, id)
		pose, ok := ResolveWorldPose(s.entityManager, id)
		if !ok {
			continue
		}
		x, y, depth, visible := s.projector.Project(view, pose.Position)
		if !visible {
			continue
		}
		s.items = append(s.items, DrawItem{
			Entity:     id,
			Kind:       DrawBall,
			X:          x,
			Y:          y,
			Depth:      depth,
			Radius:     s.projector.ScreenSize(ball.Radius, depth),
			Color:      ball.BaseColor,
			PatchColor: ball.PatchColor,
		})
	}

	for _, id := range ecs.GetEntitiesWith2[components.MeshComponent, components.TransformComponent](s.entityManager) {
		mesh, _ := ecs.GetComponent[components.MeshComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[components.TransformComponent](s.entityManager, id)
		pose, ok := ResolveWorldPose(s.entityManager, id)
		if !ok {
			continue
		}
		scale := transform.Scale
		for _, part := range mesh.Parts {
			offset := mgl64.Vec3{part.Offset.X() * scale.X(), part.Offset.Y() * scale.Y(), part.Offset.Z() * scale.Z()}
			center := pose.Position.Add(utils.RotateY(offset, pose.Yaw))
			x, y, depth, visible := s.projector.Project(view, center)
			if !visible {
				continue
			}
			s.items = append(s.items, DrawItem{
				Entity: id,
				Kind:   DrawBox,
				Part:   part.Name,
				X:      x,
				Y:      y,
				Depth:  depth,
				Width:  s.projector.ScreenSize(part.Size.X()*scale.X(), depth),
				Height: s.projector.ScreenSize(part.Size.Y()*scale.Y(), depth),
				Color:  part.Color,
			})
		}
	}

	// 远的先画；同深度保持收集顺序
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Depth > s.items[j].Depth
	})
	return s.items
}

// Draw 绘制完整画面
func (s *RenderSystem) Draw(screen *ebiten.Image, view mgl64.Mat4) {
	s.drawBackdrop(screen, view)
	for _, item := range s.Collect(view) {
		switch item.Kind {
		case DrawBall:
			drawFootball(screen, item)
		case DrawBox:
			vector.DrawFilledRect(screen,
				float32(item.X-item.Width/2), float32(item.Y-item.Height/2),
				float32(item.Width), float32(item.Height),
				item.Color, true)
		}
	}
}

// drawBackdrop 绘制合成的相机画面
// 相机始终水平，地平线位于屏幕中线
func (s *RenderSystem) drawBackdrop(screen *ebiten.Image, view mgl64.Mat4) {
	w := float32(s.projector.Width)
	h := float32(s.projector.Height)
	screen.Fill(skyColor)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, floorColor, false)

	for _, seg := range FloorGridSegments(view, s.projector) {
		vector.StrokeLine(screen, float32(seg[0]), float32(seg[1]), float32(seg[2]), float32(seg[3]), 1, gridColor, true)
	}
}

// FloorGridSegments 返回地面网格投影后的线段 [x0, y0, x1, y1]
//
// 网格以相机所在位置为中心对齐到 gridStep，跟随相机平移；
// 每条网格线按 gridStep 切分，只保留两端都可见的小段，避免跨越近裁剪面。
func FloorGridSegments(view mgl64.Mat4, p utils.Projector) [][4]float64 {
	// 视图矩阵的逆变换给出相机位置
	camPos := view.Inv().Col(3).Vec3()
	cx := math.Round(camPos.X()/gridStep) * gridStep
	cz := math.Round(camPos.Z()/gridStep) * gridStep

	var segs [][4]float64
	add := func(a, b mgl64.Vec3) {
		x0, y0, _, ok0 := p.Project(view, a)
		x1, y1, _, ok1 := p.Project(view, b)
		if ok0 && ok1 {
			segs = append(segs, [4]float64{x0, y0, x1, y1})
		}
	}

	for i := -gridDepth; i <= gridDepth; i += gridStep {
		for j := -gridDepth; j < gridDepth; j += gridStep {
			// 平行于 Z 轴的线
			if i >= -gridHalfWidth && i <= gridHalfWidth {
				x := cx + float64(i)
				add(mgl64.Vec3{x, floorY, cz + float64(j)}, mgl64.Vec3{x, floorY, cz + float64(j+gridStep)})
			}
			// 平行于 X 轴的线
			if j >= -gridHalfWidth && j < gridHalfWidth {
				z := cz + float64(i)
				add(mgl64.Vec3{cx + float64(j), floorY, z}, mgl64.Vec3{cx + float64(j+gridStep), floorY, z})
			}
		}
	}
	return segs
}

// footballPatches 足球表面色块的位置（相对球心、以半径为单位）
// 正面一个中心五边形，周围五个只露出一部分
var footballPatches = func() [][2]float64 {
	patches := [][2]float64{{0, 0}}
	for i := 0; i < 5; i++ {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/5
		patches = append(patches, [2]float64{0.72 * math.Cos(angle), 0.72 * math.Sin(angle)})
	}
	return patches
}()

// drawFootball 程序化绘制足球：白色底、黑色色块和轮廓
func drawFootball(screen *ebiten.Image, item DrawItem) {
	r := float32(item.Radius)
	if r < 0.5 {
		return
	}
	cx, cy := float32(item.X), float32(item.Y)

	vector.DrawFilledCircle(screen, cx, cy, r, item.Color, true)
	for i, p := range footballPatches {
		pr := r * 0.26
		if i > 0 {
			pr = r * 0.2
		}
		vector.DrawFilledCircle(screen, cx+float32(p[0])*r, cy+float32(p[1])*r, pr, item.PatchColor, true)
	}
	vector.StrokeCircle(screen, cx, cy, r, max(1, r*0.04), item.PatchColor, true)
}
