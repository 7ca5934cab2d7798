package scenes

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"path"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/arkick/internal/model"
	"github.com/decker502/arkick/pkg/components"
	"github.com/decker502/arkick/pkg/config"
	"github.com/decker502/arkick/pkg/ecs"
	"github.com/decker502/arkick/pkg/entities"
	"github.com/decker502/arkick/pkg/game"
	"github.com/decker502/arkick/pkg/motion"
	"github.com/decker502/arkick/pkg/sensor"
	"github.com/decker502/arkick/pkg/systems"
	"github.com/decker502/arkick/pkg/utils"
)

// ARSceneOptions 创建 AR 场景所需的依赖
//
// 除 Config 和 Settings 外都可以为零值，零值使用运行时默认实现；
// 测试通过注入 Clock、Tap、CameraInput 和 Source 驱动场景。
type ARSceneOptions struct {
	Config   *config.SceneConfig
	Settings *game.SettingsManager
	Width    int
	Height   int

	Source   sensor.OrientationSource // 设备方向来源
	Random   utils.RandomSource       // 补间目标采样
	ReadFile game.ReadFileFunc        // 模型文件读取

	Clock       func() time.Time
	Tap         func() (bool, int, int)
	CameraInput func(drag *utils.DragTracker) systems.CameraInput
}

// ARScene 在合成的相机画面中放置足球和手套
//
// 组成：
//   - 锚点实体：放置前跟随相机，放置后锁定在世界中
//   - 足球实体：锚点的子节点，放置时发起一次补间
//   - 手套实体：异步加载完成后挂到锚点下，水平位置由设备倾斜驱动
type ARScene struct {
	cfg      *config.SceneConfig
	settings *game.SettingsManager

	entityManager *ecs.EntityManager
	session       *game.Session
	rig           *game.CameraRig
	animator      *motion.PositionAnimator

	anchorSystem *systems.AnchorSystem
	tweenSystem  *systems.TweenSystem
	tiltSystem   *systems.TiltSystem
	cameraSystem *systems.CameraSystem
	renderSystem *systems.RenderSystem

	source sensor.OrientationSource
	loader *game.ModelLoader

	clock       func() time.Time
	tap         func() (bool, int, int)
	cameraInput func(drag *utils.DragTracker) systems.CameraInput
	drag        utils.DragTracker

	width  int
	height int
	closed bool
}

// NewARScene 创建 AR 场景并开始加载手套模型
func NewARScene(opts ARSceneOptions) (*ARScene, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("create AR scene: %w: nil config", config.ErrInvalidConfig)
	}
	if opts.Settings == nil {
		return nil, fmt.Errorf("create AR scene: nil settings manager")
	}
	baseColor, err := model.ParseColor(cfg.Ball.BaseColor)
	if err != nil {
		return nil, fmt.Errorf("create AR scene: ball base color: %w", err)
	}
	patchColor, err := model.ParseColor(cfg.Ball.PatchColor)
	if err != nil {
		return nil, fmt.Errorf("create AR scene: ball patch color: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = cfg.Window.Width, cfg.Window.Height
	}

	s := &ARScene{
		cfg:           cfg,
		settings:      opts.Settings,
		entityManager: ecs.NewEntityManager(),
		session:       game.NewSession(modelName(cfg.Glove.Model)),
		rig:           &game.CameraRig{},
		animator:      motion.NewPositionAnimator(cfg.AnimatorConfig(opts.Random)),
		source:        opts.Source,
		clock:         opts.Clock,
		tap:           opts.Tap,
		cameraInput:   opts.CameraInput,
		width:         width,
		height:        height,
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.tap == nil {
		s.tap = utils.IsJustTouchedOrClicked
	}
	if s.cameraInput == nil {
		s.cameraInput = systems.ReadCameraInput
	}

	s.anchorSystem = systems.NewAnchorSystem(s.entityManager, s.rig, s.session)
	s.tweenSystem = systems.NewTweenSystem(s.entityManager)
	s.tiltSystem = systems.NewTiltSystem(s.source, s.tiltMapper(), s.session)
	s.cameraSystem = systems.NewCameraSystem(s.rig, cfg.Camera)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, utils.Projector{
		Width:  width,
		Height: height,
		FovY:   cfg.Camera.FovY,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	})

	if err := s.createEntities(baseColor, patchColor); err != nil {
		return nil, fmt.Errorf("create AR scene: %w", err)
	}

	s.loader = game.StartModelLoad(context.Background(), cfg.Glove.Model, cfg.GloveLoadDelay(), opts.ReadFile)

	log.Printf("[ARScene] 场景已创建: %dx%d, 补间 %v, 重复触发 %s",
		width, height, s.animator.Duration(), cfg.Animation.Retrigger)
	return s, nil
}

// modelName 从模型路径得到名称，例如 data/models/gloves.yaml → gloves
func modelName(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// createEntities 创建锚点和足球
func (s *ARScene) createEntities(baseColor, patchColor color.RGBA) error {
	offset := s.cfg.Anchor.CameraOffset.Vec()
	anchor, err := entities.NewAnchorEntity(s.entityManager, offset, s.rig.PoseFromOffset(offset), s.rig.Yaw)
	if err != nil {
		return fmt.Errorf("create anchor: %w", err)
	}
	s.session.Anchor = anchor

	ball, err := entities.NewBallEntity(s.entityManager, anchor, s.cfg.Ball.Start.Vec(), components.BallComponent{
		Radius:     s.cfg.Ball.Radius,
		BaseColor:  baseColor,
		PatchColor: patchColor,
	})
	if err != nil {
		return fmt.Errorf("create ball: %w", err)
	}
	s.session.Ball = ball
	return nil
}

// tiltMapper 根据当前用户设置构造倾斜映射
func (s *ARScene) tiltMapper() motion.TiltMapper {
	settings := s.settings.GetSettings()
	return motion.TiltMapper{
		Sensitivity: settings.TiltSensitivity,
		Invert:      settings.InvertTilt,
	}
}

// Session 返回当前会话（调试和测试使用）
func (s *ARScene) Session() *game.Session {
	return s.session
}

// EntityManager 返回场景的实体管理器
func (s *ARScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Rig 返回相机位姿
func (s *ARScene) Rig() *game.CameraRig {
	return s.rig
}

// Animator 返回足球补间
func (s *ARScene) Animator() *motion.PositionAnimator {
	return s.animator
}

// Resize implements game.Resizable
func (s *ARScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.renderSystem.SetViewport(width, height)
}

// HandleTap 处理一次点击
//
// 放置前只有点击放置按钮才生效：设置 Placed 并发射足球。
// 放置后只有开启 placement.relaunch 时点击才会从当前位置再次发射，
// 是否打断正在进行的补间由重复触发策略决定。
func (s *ARScene) HandleTap(x, y int, now time.Time) bool {
	if !s.session.Placed {
		if !s.placementButton().contains(x, y) {
			return false
		}
		s.session.Place()
		log.Printf("[ARScene] 用户已放置内容")
		return s.launchBall(now)
	}

	if !s.cfg.Placement.Relaunch {
		return false
	}
	return s.launchBall(now)
}

func (s *ARScene) launchBall(now time.Time) bool {
	if !s.tweenSystem.Launch(s.session.Ball, s.animator, now) {
		log.Printf("[ARScene] 补间进行中，忽略本次发射")
		return false
	}
	s.session.Launches++
	return true
}

// Tick 推进一帧场景逻辑（不含输入读取）
//
// 顺序：交付模型加载结果 → 锚点 → 设备倾斜 → 补间。
func (s *ARScene) Tick(now time.Time) {
	s.pollModel()
	s.anchorSystem.Update()
	s.tiltSystem.Update()
	s.tweenSystem.Update(now)
	s.entityManager.RemoveMarkedEntities()
}

// Update implements game.Scene
func (s *ARScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	now := s.clock()

	s.handleSettingsKeys()
	s.cameraSystem.Update(deltaTime, s.cameraInput(&s.drag))
	if tapped, x, y := s.tap(); tapped {
		s.HandleTap(x, y, now)
	}
	s.Tick(now)
}

// pollModel 检查异步加载结果，成功时把手套挂到锚点下
func (s *ARScene) pollModel() {
	if s.loader == nil {
		return
	}
	result, ok := s.loader.Poll()
	if !ok {
		return
	}
	s.loader.Cancel()
	s.loader = nil

	if result.Err != nil {
		log.Printf("[ARScene] 错误: 手套模型加载失败: %v", result.Err)
		if err := s.session.Glove.Fail(result.Err); err != nil {
			log.Printf("[ARScene] Warning: %v", err)
		}
		return
	}

	mesh, err := game.BuildMeshComponent(result.Model)
	if err != nil {
		log.Printf("[ARScene] 错误: 手套模型无法使用: %v", err)
		if ferr := s.session.Glove.Fail(err); ferr != nil {
			log.Printf("[ARScene] Warning: %v", ferr)
		}
		return
	}

	glove, transform, err := entities.NewModelEntity(s.entityManager, s.session.Anchor, mesh, entities.ModelPlacement{
		Position:  s.cfg.Glove.Position.Vec(),
		Scale:     s.cfg.Glove.Scale.Vec(),
		RotationY: s.cfg.Glove.RotationY,
	})
	if err != nil {
		log.Printf("[ARScene] 错误: 无法创建手套实体: %v", err)
		if ferr := s.session.Glove.Fail(err); ferr != nil {
			log.Printf("[ARScene] Warning: %v", ferr)
		}
		return
	}

	s.session.GloveBody = glove
	if err := s.session.Glove.Resolve(&transform.Position); err != nil {
		log.Printf("[ARScene] Warning: %v", err)
		return
	}
	log.Printf("[ARScene] 手套模型已加载: %s (%d 个部件)", result.Model.Name, len(mesh.Parts))
}

// Close implements game.Closable：取消加载并注销设备方向监听
func (s *ARScene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.loader != nil {
		s.loader.Cancel()
		s.loader = nil
	}
	if s.source == nil {
		return nil
	}
	if err := s.source.Close(); err != nil {
		return fmt.Errorf("close orientation source: %w", err)
	}
	return nil
}

// Draw implements game.Scene
func (s *ARScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.rig.View())
	s.drawOverlay(screen)
}
