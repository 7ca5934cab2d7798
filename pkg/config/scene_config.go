package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/decker502/arkick/internal/model"
	"github.com/decker502/arkick/pkg/embedded"
	"github.com/decker502/arkick/pkg/motion"
	"github.com/decker502/arkick/pkg/utils"
)

// DefaultSceneConfigPath 嵌入资源中的场景配置路径
const DefaultSceneConfigPath = "data/scene.yaml"

// ErrInvalidConfig 表示配置能解析但取值不合法
var ErrInvalidConfig = errors.New("invalid scene config")

// Vec3 YAML 中以 [x, y, z] 表示的三维向量
type Vec3 [3]float64

// Vec 转换为 mgl64.Vec3
func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

// Range YAML 中以 [min, max] 表示的区间
type Range [2]float64

// SceneConfig AR 场景的全部可调参数
// 对应 data/scene.yaml，缺失的字段保留 DefaultSceneConfig 中的默认值
type SceneConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Anchor     AnchorConfig     `yaml:"anchor"`
	Ball       BallConfig       `yaml:"ball"`
	Animation  AnimationConfig  `yaml:"animation"`
	Placement  PlacementConfig  `yaml:"placement"`
	Glove      GloveConfig      `yaml:"glove"`
	Tilt       TiltConfig       `yaml:"tilt"`
	Permission PermissionConfig `yaml:"permission"`
}

// WindowConfig 窗口配置（仅桌面端使用，浏览器和移动端跟随宿主尺寸）
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig 透视相机与相机控制配置
type CameraConfig struct {
	FovY      float64 `yaml:"fovY"`      // 垂直视场角（度）
	Near      float64 `yaml:"near"`      // 近裁剪面
	Far       float64 `yaml:"far"`       // 远裁剪面
	MoveSpeed float64 `yaml:"moveSpeed"` // WASD 平移速度（单位/秒）
	TurnSpeed float64 `yaml:"turnSpeed"` // Q/E 转向速度（弧度/秒）
	DragTurn  float64 `yaml:"dragTurn"`  // 拖动每像素转向（弧度）
}

// AnchorConfig 即时追踪锚点配置
type AnchorConfig struct {
	// CameraOffset 放置前锚点相对相机的位置
	CameraOffset Vec3 `yaml:"cameraOffset"`
}

// BallConfig 足球配置
type BallConfig struct {
	Radius     float64 `yaml:"radius"`
	Start      Vec3    `yaml:"start"` // 相对锚点的初始位置
	BaseColor  string  `yaml:"baseColor"`
	PatchColor string  `yaml:"patchColor"`
}

// AnimationConfig 射门补间配置
type AnimationConfig struct {
	DurationMs int     `yaml:"durationMs"`
	TargetX    Range   `yaml:"targetX"`
	TargetY    Range   `yaml:"targetY"`
	TargetZ    float64 `yaml:"targetZ"`
	Easing     string  `yaml:"easing"`    // 见 utils.EasingByName
	Retrigger  string  `yaml:"retrigger"` // "ignore" 或 "restart"
}

// PlacementConfig 放置交互配置
type PlacementConfig struct {
	// Relaunch 放置后再次点击是否重新射门
	Relaunch bool `yaml:"relaunch"`
}

// GloveConfig 手套模型配置
type GloveConfig struct {
	Model       string  `yaml:"model"` // 模型文件路径（data/ 下）
	Scale       Vec3    `yaml:"scale"`
	Position    Vec3    `yaml:"position"` // 相对锚点的位置
	RotationY   float64 `yaml:"rotationY"`
	LoadDelayMs int     `yaml:"loadDelayMs"` // 模拟网络加载延迟
}

// TiltConfig 倾斜映射配置
type TiltConfig struct {
	Sensitivity  float64 `yaml:"sensitivity"`  // 每度倾斜的水平位移
	KeyboardStep float64 `yaml:"keyboardStep"` // 键盘模拟每帧变化（度）
	MaxGamma     float64 `yaml:"maxGamma"`     // 键盘模拟最大倾斜（度）
}

// PermissionConfig 相机权限配置
type PermissionConfig struct {
	// Required 为 true 时启动先进入权限请求界面
	Required bool `yaml:"required"`
}

// DefaultSceneConfig 返回默认配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Window: WindowConfig{Width: GameWindowWidth, Height: GameWindowHeight, Title: GameWindowTitle},
		Camera: CameraConfig{
			FovY:      60,
			Near:      0.1,
			Far:       100,
			MoveSpeed: 3,
			TurnSpeed: 1.2,
			DragTurn:  0.004,
		},
		Anchor: AnchorConfig{CameraOffset: Vec3{0, 0, -5}},
		Ball: BallConfig{
			Radius:     1,
			Start:      Vec3{0, 0, -20},
			BaseColor:  "#f5f5f5",
			PatchColor: "#222222",
		},
		Animation: AnimationConfig{
			DurationMs: 1000,
			TargetX:    Range{-5, 5},
			TargetY:    Range{-2, 2},
			TargetZ:    -2,
			Easing:     utils.EasingNameLinear,
			Retrigger:  motion.RetriggerNameIgnore,
		},
		Glove: GloveConfig{
			Model:    "data/models/gloves.yaml",
			Scale:    Vec3{2, 2, 2},
			Position: Vec3{0, -0.7, 1},
		},
		Tilt: TiltConfig{
			Sensitivity:  motion.DefaultTiltSensitivity,
			KeyboardStep: 1.5,
			MaxGamma:     45,
		},
		Permission: PermissionConfig{Required: true},
	}
}

// ParseSceneConfig 在默认配置之上解析 YAML 并校验
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadSceneConfig 从磁盘加载场景配置
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", path, err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEmbeddedSceneConfig 从嵌入资源加载场景配置
func LoadEmbeddedSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config %s: %w", path, err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded scene config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置取值
func (c *SceneConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return invalid("camera.fovY %v must be in (0, 180)", c.Camera.FovY)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return invalid("camera clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Ball.Radius <= 0 {
		return invalid("ball.radius %v must be positive", c.Ball.Radius)
	}
	for _, hex := range []string{c.Ball.BaseColor, c.Ball.PatchColor} {
		if _, err := model.ParseColor(hex); err != nil {
			return invalid("ball color: %v", err)
		}
	}
	if c.Animation.DurationMs <= 0 {
		return invalid("animation.durationMs %d must be positive", c.Animation.DurationMs)
	}
	if c.Animation.TargetX[0] > c.Animation.TargetX[1] {
		return invalid("animation.targetX %v is inverted", c.Animation.TargetX)
	}
	if c.Animation.TargetY[0] > c.Animation.TargetY[1] {
		return invalid("animation.targetY %v is inverted", c.Animation.TargetY)
	}
	if _, ok := utils.EasingByName(c.Animation.Easing); !ok {
		return invalid("unknown animation.easing %q", c.Animation.Easing)
	}
	if _, err := motion.ParseRetriggerPolicy(c.Animation.Retrigger); err != nil {
		return invalid("animation.retrigger: %v", err)
	}
	if c.Glove.Model == "" {
		return invalid("glove.model is empty")
	}
	if c.Glove.LoadDelayMs < 0 {
		return invalid("glove.loadDelayMs %d must not be negative", c.Glove.LoadDelayMs)
	}
	if c.Tilt.Sensitivity <= 0 {
		return invalid("tilt.sensitivity %v must be positive", c.Tilt.Sensitivity)
	}
	if c.Tilt.KeyboardStep <= 0 || c.Tilt.MaxGamma <= 0 {
		return invalid("tilt keyboard step %v / max gamma %v must be positive", c.Tilt.KeyboardStep, c.Tilt.MaxGamma)
	}
	return nil
}

// AnimationDuration 返回补间时长
func (c *SceneConfig) AnimationDuration() time.Duration {
	return time.Duration(c.Animation.DurationMs) * time.Millisecond
}

// GloveLoadDelay 返回模拟的模型加载延迟
func (c *SceneConfig) GloveLoadDelay() time.Duration {
	return time.Duration(c.Glove.LoadDelayMs) * time.Millisecond
}

// TargetRange 返回补间目标采样范围
func (c *SceneConfig) TargetRange() motion.TargetRange {
	return motion.TargetRange{
		MinX: c.Animation.TargetX[0],
		MaxX: c.Animation.TargetX[1],
		MinY: c.Animation.TargetY[0],
		MaxY: c.Animation.TargetY[1],
		Z:    c.Animation.TargetZ,
	}
}

// AnimatorConfig 组装补间动画配置，名称已在 Validate 中校验
func (c *SceneConfig) AnimatorConfig(random utils.RandomSource) motion.AnimatorConfig {
	easing, _ := utils.EasingByName(c.Animation.Easing)
	retrigger, _ := motion.ParseRetriggerPolicy(c.Animation.Retrigger)
	return motion.AnimatorConfig{
		Duration:  c.AnimationDuration(),
		Targets:   c.TargetRange(),
		Easing:    easing,
		Retrigger: retrigger,
		Random:    random,
	}
}
