package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/arkick/pkg/embedded"
	"github.com/decker502/arkick/pkg/motion"
)

// TestDefaultSceneConfig 默认值与设计常量一致
func TestDefaultSceneConfig(t *testing.T) {
	cfg := DefaultSceneConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.AnimationDuration() != time.Second {
		t.Errorf("AnimationDuration() = %v, want 1s", cfg.AnimationDuration())
	}
	if cfg.TargetRange() != motion.DefaultTargetRange() {
		t.Errorf("TargetRange() = %+v, want %+v", cfg.TargetRange(), motion.DefaultTargetRange())
	}
	if cfg.Tilt.Sensitivity != 0.05 {
		t.Errorf("Tilt.Sensitivity = %v, want 0.05", cfg.Tilt.Sensitivity)
	}
	if cfg.Ball.Start.Vec() != (mgl64.Vec3{0, 0, -20}) {
		t.Errorf("Ball.Start = %v, want (0, 0, -20)", cfg.Ball.Start)
	}
	if cfg.Anchor.CameraOffset.Vec() != (mgl64.Vec3{0, 0, -5}) {
		t.Errorf("Anchor.CameraOffset = %v, want (0, 0, -5)", cfg.Anchor.CameraOffset)
	}
	if cfg.Glove.Scale != (Vec3{2, 2, 2}) || cfg.Glove.Position != (Vec3{0, -0.7, 1}) {
		t.Errorf("unexpected glove transform: scale=%v position=%v", cfg.Glove.Scale, cfg.Glove.Position)
	}
}

// TestShippedSceneConfig 仓库自带的 data/scene.yaml 必须能加载
func TestShippedSceneConfig(t *testing.T) {
	cfg, err := LoadSceneConfig("../../data/scene.yaml")
	if err != nil {
		t.Fatalf("LoadSceneConfig() error = %v", err)
	}
	if cfg.Animation.DurationMs != 1000 {
		t.Errorf("Animation.DurationMs = %d, want 1000", cfg.Animation.DurationMs)
	}
	if cfg.Glove.Model != "data/models/gloves.yaml" {
		t.Errorf("Glove.Model = %q", cfg.Glove.Model)
	}
}

// TestParseSceneConfigPartial 缺失字段保留默认值
func TestParseSceneConfigPartial(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte("animation:\n  durationMs: 250\n  easing: outCubic\n"))
	if err != nil {
		t.Fatalf("ParseSceneConfig() error = %v", err)
	}

	if cfg.AnimationDuration() != 250*time.Millisecond {
		t.Errorf("AnimationDuration() = %v, want 250ms", cfg.AnimationDuration())
	}
	if cfg.Animation.TargetX != (Range{-5, 5}) {
		t.Errorf("TargetX lost its default: %v", cfg.Animation.TargetX)
	}
	if cfg.Window.Width != GameWindowWidth {
		t.Errorf("Window.Width = %d, want default %d", cfg.Window.Width, GameWindowWidth)
	}
	if !cfg.Permission.Required {
		t.Error("Permission.Required should default to true")
	}

	ac := cfg.AnimatorConfig(nil)
	if ac.Duration != 250*time.Millisecond || ac.Easing == nil || ac.Retrigger != motion.RetriggerIgnore {
		t.Errorf("unexpected animator config: %+v", ac)
	}
}

func TestParseSceneConfigOverrides(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte(`
animation:
  retrigger: restart
placement:
  relaunch: true
permission:
  required: false
glove:
  loadDelayMs: 0
`))
	if err != nil {
		t.Fatalf("ParseSceneConfig() error = %v", err)
	}
	if cfg.AnimatorConfig(nil).Retrigger != motion.RetriggerRestart {
		t.Error("retrigger should be restart")
	}
	if !cfg.Placement.Relaunch || cfg.Permission.Required {
		t.Errorf("overrides not applied: %+v %+v", cfg.Placement, cfg.Permission)
	}
	if cfg.GloveLoadDelay() != 0 {
		t.Errorf("GloveLoadDelay() = %v, want 0", cfg.GloveLoadDelay())
	}
}

func TestParseSceneConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"零宽窗口", "window: {width: 0}"},
		{"视场角越界", "camera: {fovY: 180}"},
		{"远近裁剪面颠倒", "camera: {near: 10, far: 5}"},
		{"负时长", "animation: {durationMs: -1}"},
		{"零时长", "animation: {durationMs: 0}"},
		{"X 范围颠倒", "animation: {targetX: [5, -5]}"},
		{"Y 范围颠倒", "animation: {targetY: [2, -2]}"},
		{"未知缓动", "animation: {easing: bounce}"},
		{"未知重复触发策略", "animation: {retrigger: queue}"},
		{"球半径为零", "ball: {radius: 0}"},
		{"颜色无效", "ball: {baseColor: white}"},
		{"模型路径为空", "glove: {model: ''}"},
		{"负加载延迟", "glove: {loadDelayMs: -5}"},
		{"键盘步长为零", "tilt: {keyboardStep: 0}"},
		{"倾斜灵敏度为零", "tilt: {sensitivity: 0}"},
		{"负倾斜灵敏度", "tilt: {sensitivity: -0.05}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseSceneConfig(%q) error = %v, want ErrInvalidConfig", tt.yaml, err)
			}
		})
	}
}

func TestParseSceneConfigMalformed(t *testing.T) {
	_, err := ParseSceneConfig([]byte("window: [1, 2"))
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("malformed YAML should be a parse error, got %v", err)
	}
}

func TestLoadSceneConfigMissingFile(t *testing.T) {
	_, err := LoadSceneConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSceneConfig() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadEmbeddedSceneConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/scene.yaml": {Data: []byte("ball:\n  radius: 0.5\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadEmbeddedSceneConfig(DefaultSceneConfigPath)
	if err != nil {
		t.Fatalf("LoadEmbeddedSceneConfig() error = %v", err)
	}
	if cfg.Ball.Radius != 0.5 {
		t.Errorf("Ball.Radius = %v, want 0.5", cfg.Ball.Radius)
	}

	if _, err := LoadEmbeddedSceneConfig("data/missing.yaml"); err == nil {
		t.Error("expected error for missing embedded config")
	}
}
