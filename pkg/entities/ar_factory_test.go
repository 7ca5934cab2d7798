package entities

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/ecs"
)

func TestNewAnchorEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewAnchorEntity(em, mgl64.Vec3{0, 0, -5}, mgl64.Vec3{1, 0, -5}, 0.5)
	if err != nil {
		t.Fatalf("NewAnchorEntity() error: %v", err)
	}

	transform, ok := ecs.GetComponent[components.TransformComponent](em, id)
	if !ok {
		t.Fatal("anchor should have a transform")
	}
	if transform.Position != (mgl64.Vec3{1, 0, -5}) || transform.RotationY != 0.5 {
		t.Errorf("anchor transform = %+v", transform)
	}
	anchor, ok := ecs.GetComponent[components.AnchorComponent](em, id)
	if !ok || anchor.Locked || anchor.CameraOffset != (mgl64.Vec3{0, 0, -5}) {
		t.Errorf("anchor component = %+v", anchor)
	}

	if _, err := NewAnchorEntity(nil, mgl64.Vec3{}, mgl64.Vec3{}, 0); err == nil {
		t.Error("nil entity manager should be rejected")
	}
}

func TestNewBallEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	anchor, _ := NewAnchorEntity(em, mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, -5}, 0)

	id, err := NewBallEntity(em, anchor, mgl64.Vec3{0, 0, -20}, components.BallComponent{Radius: 1})
	if err != nil {
		t.Fatalf("NewBallEntity() error: %v", err)
	}
	transform, _ := ecs.GetComponent[components.TransformComponent](em, id)
	if transform.Parent != anchor || transform.Position != (mgl64.Vec3{0, 0, -20}) {
		t.Errorf("ball transform = %+v", transform)
	}

	tests := []struct {
		name   string
		anchor ecs.EntityID
		radius float64
	}{
		{"missing anchor", ecs.EntityID(42), 1},
		{"zero radius", anchor, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBallEntity(em, tt.anchor, mgl64.Vec3{}, components.BallComponent{Radius: tt.radius}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewModelEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	anchor, _ := NewAnchorEntity(em, mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, -5}, 0)
	mesh := &components.MeshComponent{
		Name:  "gloves",
		Parts: []components.MeshPart{{Name: "palm", Size: mgl64.Vec3{1, 1, 1}}},
	}

	id, transform, err := NewModelEntity(em, anchor, mesh, ModelPlacement{
		Position: mgl64.Vec3{0, -0.7, 1},
		Scale:    mgl64.Vec3{2, 2, 2},
	})
	if err != nil {
		t.Fatalf("NewModelEntity() error: %v", err)
	}
	stored, _ := ecs.GetComponent[components.TransformComponent](em, id)
	if stored != transform {
		t.Error("returned transform should be the stored component")
	}
	if transform.Scale != (mgl64.Vec3{2, 2, 2}) || transform.Parent != anchor {
		t.Errorf("model transform = %+v", transform)
	}

	if _, _, err := NewModelEntity(em, anchor, &components.MeshComponent{Name: "empty"}, ModelPlacement{}); err == nil {
		t.Error("empty mesh should be rejected")
	}
}
