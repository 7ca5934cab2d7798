package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/motion"
)

// vecNear 按绝对误差比较向量；旋转后本应为 0 的分量会残留 1e-16 量级的舍入误差
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

func TestSessionPlaceOnce(t *testing.T) {
	s := NewSession("gloves")

	if s.Placed {
		t.Fatal("new session should not be placed")
	}
	if s.Glove.State() != motion.ModelPending {
		t.Errorf("glove handle state = %v，期望 Pending", s.Glove.State())
	}

	if !s.Place() {
		t.Error("first Place() should return true")
	}
	if s.Place() {
		t.Error("second Place() should return false")
	}
	if !s.Placed {
		t.Error("session should stay placed")
	}
}

func TestCameraRigPoseFromOffset(t *testing.T) {
	tests := []struct {
		name     string
		rig      CameraRig
		offset   mgl64.Vec3
		expected mgl64.Vec3
	}{
		{"原点正前方", CameraRig{}, mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, -5}},
		{"平移后", CameraRig{Position: mgl64.Vec3{1, 2, 3}}, mgl64.Vec3{0, 0, -5}, mgl64.Vec3{1, 2, -2}},
		{"左转 90°", CameraRig{Yaw: math.Pi / 2}, mgl64.Vec3{0, 0, -5}, mgl64.Vec3{-5, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rig.PoseFromOffset(tt.offset)
			if !vecNear(got, tt.expected, 1e-9) {
				t.Errorf("PoseFromOffset(%v) = %v，期望 %v", tt.offset, got, tt.expected)
			}
		})
	}
}

func TestCameraRigMoveAndTurn(t *testing.T) {
	var rig CameraRig
	rig.Move(2, 0)
	if !vecNear(rig.Position, mgl64.Vec3{0, 0, -2}, 1e-9) {
		t.Errorf("Move forward = %v，期望 (0, 0, -2)", rig.Position)
	}

	rig.Move(0, 1)
	if !vecNear(rig.Position, mgl64.Vec3{1, 0, -2}, 1e-9) {
		t.Errorf("Move right = %v，期望 (1, 0, -2)", rig.Position)
	}

	rig.Turn(math.Pi / 2)
	if !vecNear(rig.Forward(), mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("Forward after turn = %v，期望 (-1, 0, 0)", rig.Forward())
	}
	if !vecNear(rig.Right(), mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Errorf("Right after turn = %v，期望 (0, 0, -1)", rig.Right())
	}
}
