package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/ecs"
	"github.com/decker502/arkick/pkg/utils"
)

func testProjector() utils.Projector {
	return utils.Projector{Width: 800, Height: 600, FovY: 90, Near: 0.1, Far: 100}
}

func TestRenderCollectDepthOrder(t *testing.T) {
	em := ecs.NewEntityManager()

	near := em.CreateEntity()
	ecs.AddComponent(em, near, components.NewTransform(mgl64.Vec3{0, 0, -2}, ecs.InvalidEntity))
	ecs.AddComponent(em, near, &components.BallComponent{Radius: 1})

	far := em.CreateEntity()
	ecs.AddComponent(em, far, components.NewTransform(mgl64.Vec3{0, 0, -20}, ecs.InvalidEntity))
	ecs.AddComponent(em, far, &components.BallComponent{Radius: 1})

	behind := em.CreateEntity()
	ecs.AddComponent(em, behind, components.NewTransform(mgl64.Vec3{0, 0, 5}, ecs.InvalidEntity))
	ecs.AddComponent(em, behind, &components.BallComponent{Radius: 1})

	sys := NewRenderSystem(em, testProjector())
	items := sys.Collect(utils.ViewMatrix(mgl64.Vec3{}, 0))

	if len(items) != 2 {
		t.Fatalf("visible items = %d, want 2", len(items))
	}
	if items[0].Entity != far || items[1].Entity != near {
		t.Errorf("draw order = [%d %d], want far then near", items[0].Entity, items[1].Entity)
	}
	// 焦距 300，深度 20 处半径 1 → 15 像素
	if math.Abs(items[0].Radius-15) > 1e-9 {
		t.Errorf("far ball radius = %v, want 15", items[0].Radius)
	}
}

// TestRenderCollectMeshScale 网格部件的偏移和尺寸乘以实体缩放
func TestRenderCollectMeshScale(t *testing.T) {
	em := ecs.NewEntityManager()
	glove := em.CreateEntity()
	transform := components.NewTransform(mgl64.Vec3{0, 0, -10}, ecs.InvalidEntity)
	transform.Scale = mgl64.Vec3{2, 2, 2}
	ecs.AddComponent(em, glove, transform)
	ecs.AddComponent(em, glove, &components.MeshComponent{
		Name: "gloves",
		Parts: []components.MeshPart{
			{Name: "palm", Offset: mgl64.Vec3{1, 0, 0}, Size: mgl64.Vec3{0.5, 1, 0.5}, Color: color.RGBA{R: 0xff, A: 0xff}},
		},
	})

	sys := NewRenderSystem(em, testProjector())
	items := sys.Collect(utils.ViewMatrix(mgl64.Vec3{}, 0))
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}

	item := items[0]
	// 偏移 1*2 在深度 10 处 → 300*2/10 = 60 像素
	if math.Abs(item.X-460) > 1e-9 || math.Abs(item.Y-300) > 1e-9 {
		t.Errorf("part center = (%v, %v), want (460, 300)", item.X, item.Y)
	}
	if math.Abs(item.Width-30) > 1e-9 || math.Abs(item.Height-60) > 1e-9 {
		t.Errorf("part size = %vx%v, want 30x60", item.Width, item.Height)
	}
	if item.Part != "palm" || item.Kind != DrawBox {
		t.Errorf("item = %+v", item)
	}
}

func TestRenderSetViewport(t *testing.T) {
	sys := NewRenderSystem(ecs.NewEntityManager(), testProjector())
	sys.SetViewport(1024, 768)
	if p := sys.Projector(); p.Width != 1024 || p.Height != 768 {
		t.Errorf("viewport = %dx%d, want 1024x768", p.Width, p.Height)
	}
}

// TestFloorGridBelowHorizon 水平相机下地面网格全部位于地平线以下
func TestFloorGridBelowHorizon(t *testing.T) {
	p := testProjector()
	view := utils.ViewMatrix(mgl64.Vec3{3, 0, -4}, 0.3)

	segs := FloorGridSegments(view, p)
	if len(segs) == 0 {
		t.Fatal("floor grid should have visible segments")
	}
	for _, s := range segs {
		if s[1] < float64(p.Height)/2 || s[3] < float64(p.Height)/2 {
			t.Fatalf("segment %v crosses the horizon", s)
		}
	}
}
