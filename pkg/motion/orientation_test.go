package motion

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/sensor"
)

// TestTiltMapperNilModel 模型为 nil 时不修改任何东西，也不 panic
func TestTiltMapperNilModel(t *testing.T) {
	m := NewTiltMapper()
	if m.Apply(sensor.NewGammaReading(10), nil) {
		t.Error("Apply() with nil model should report no mutation")
	}
}

func TestTiltMapperPendingModel(t *testing.T) {
	m := NewTiltMapper()
	h := NewPendingModel("gloves")
	if m.Apply(sensor.NewGammaReading(10), h) {
		t.Error("Apply() on pending model should be a no-op")
	}
}

func TestTiltMapperLoadedModel(t *testing.T) {
	m := NewTiltMapper()
	pos := mgl64.Vec3{0, -0.7, 1}
	h := NewPendingModel("gloves")
	if err := h.Resolve(&pos); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !m.Apply(sensor.NewGammaReading(10), h) {
		t.Fatal("Apply() on loaded model should mutate")
	}
	if pos[0] != 0.5 {
		t.Errorf("position.x = %v，期望 exactly 0.5", pos[0])
	}
	// 只修改 X 分量
	if pos[1] != -0.7 || pos[2] != 1 {
		t.Errorf("Apply() touched y/z: %v", pos)
	}
}

func TestTiltMapperOffset(t *testing.T) {
	tests := []struct {
		name     string
		mapper   TiltMapper
		reading  sensor.OrientationReading
		expected float64
	}{
		{"默认灵敏度", NewTiltMapper(), sensor.NewGammaReading(10), 0.5},
		{"负倾斜", NewTiltMapper(), sensor.NewGammaReading(-20), -1},
		{"未报告 gamma", NewTiltMapper(), sensor.OrientationReading{}, 0},
		{"自定义灵敏度", TiltMapper{Sensitivity: 0.1}, sensor.NewGammaReading(10), 1},
		{"反向", TiltMapper{Sensitivity: 0.05, Invert: true}, sensor.NewGammaReading(10), -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mapper.Offset(tt.reading); got != tt.expected {
				t.Errorf("Offset() = %v，期望 %v", got, tt.expected)
			}
		})
	}
}

// TestTiltMapperMissingGammaResets 未报告 gamma 的读数把模型拉回中心
func TestTiltMapperMissingGammaResets(t *testing.T) {
	m := NewTiltMapper()
	pos := mgl64.Vec3{}
	h := NewPendingModel("gloves")
	h.Resolve(&pos)

	m.Apply(sensor.NewGammaReading(30), h)
	m.Apply(sensor.OrientationReading{}, h)
	if pos[0] != 0 {
		t.Errorf("position.x = %v after missing gamma，期望 0", pos[0])
	}
}

func TestTiltMapperFailedModel(t *testing.T) {
	m := NewTiltMapper()
	h := NewPendingModel("gloves")
	h.Fail(errors.New("boom"))
	if m.Apply(sensor.NewGammaReading(10), h) {
		t.Error("Apply() on failed model should be a no-op")
	}
}

func TestModelHandleLifecycle(t *testing.T) {
	var nilHandle *ModelHandle
	if nilHandle.State() != ModelPending {
		t.Errorf("nil handle state = %v，期望 Pending", nilHandle.State())
	}

	h := NewPendingModel("gloves")
	if h.Name() != "gloves" || h.State() != ModelPending {
		t.Fatalf("unexpected new handle: %q %v", h.Name(), h.State())
	}
	if _, ok := h.Position(); ok {
		t.Error("pending handle should not expose a position")
	}

	if err := h.Resolve(nil); err == nil {
		t.Error("Resolve(nil) should fail")
	}

	pos := mgl64.Vec3{1, 2, 3}
	if err := h.Resolve(&pos); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got, ok := h.Position(); !ok || got != &pos {
		t.Error("loaded handle should expose the resolved position")
	}

	// 只能结算一次
	if err := h.Resolve(&pos); !errors.Is(err, ErrModelAlreadySettled) {
		t.Errorf("second Resolve() error = %v，期望 ErrModelAlreadySettled", err)
	}
	if err := h.Fail(errors.New("late")); !errors.Is(err, ErrModelAlreadySettled) {
		t.Errorf("Fail() after Resolve error = %v，期望 ErrModelAlreadySettled", err)
	}
	if h.State() != ModelLoaded || h.Err() != nil {
		t.Errorf("handle changed after rejected settle: %v %v", h.State(), h.Err())
	}
}

func TestModelHandleFail(t *testing.T) {
	h := NewPendingModel("gloves")
	cause := errors.New("file not found")
	if err := h.Fail(cause); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}
	if h.State() != ModelFailed || !errors.Is(h.Err(), cause) {
		t.Errorf("State() = %v, Err() = %v", h.State(), h.Err())
	}
}
