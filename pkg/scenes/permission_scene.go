package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/arkick/pkg/game"
	"github.com/decker502/arkick/pkg/utils"
)

// PermissionState 相机权限请求的状态
type PermissionState int

const (
	// PermissionAsking 正在询问用户
	PermissionAsking PermissionState = iota
	// PermissionDenied 用户拒绝，显示拒绝说明
	PermissionDenied
	// PermissionGranted 用户允许，已切换到 AR 场景
	PermissionGranted
)

// PermissionScene 启动时请求相机权限
//
// 允许后切换到 AR 场景并启动相机画面；拒绝后显示说明和重试按钮。
type PermissionScene struct {
	sceneManager *game.SceneManager
	state        PermissionState
	width        int
	height       int

	// tap 默认使用 utils.IsJustTouchedOrClicked，测试中可替换
	tap func() (bool, int, int)
}

// NewPermissionScene 创建权限请求场景
func NewPermissionScene(sm *game.SceneManager, width, height int) *PermissionScene {
	return &PermissionScene{
		sceneManager: sm,
		state:        PermissionAsking,
		width:        width,
		height:       height,
		tap:          utils.IsJustTouchedOrClicked,
	}
}

// State 返回当前状态
func (s *PermissionScene) State() PermissionState {
	return s.state
}

// Resize implements game.Resizable
func (s *PermissionScene) Resize(width, height int) {
	s.width, s.height = width, height
}

// buttons 返回当前状态下的按钮，按钮位置随尺寸计算
func (s *PermissionScene) buttons() []button {
	cx, cy := s.width/2, s.height/2
	switch s.state {
	case PermissionAsking:
		return []button{
			{Rect: centeredRect(cx-90, cy+60, 150, 44), Label: "Allow", Fill: buttonColor},
			{Rect: centeredRect(cx+90, cy+60, 150, 44), Label: "Deny", Fill: buttonAltColor},
		}
	case PermissionDenied:
		return []button{
			{Rect: centeredRect(cx, cy+60, 180, 44), Label: "Try again", Fill: buttonColor},
		}
	default:
		return nil
	}
}

// HandleTap 处理一次点击，返回是否命中按钮
func (s *PermissionScene) HandleTap(x, y int) bool {
	for _, b := range s.buttons() {
		if !b.contains(x, y) {
			continue
		}
		switch b.Label {
		case "Allow":
			s.state = PermissionGranted
			log.Printf("[PermissionScene] 相机权限已允许")
			s.sceneManager.LoadScene(game.SceneAR)
		case "Deny":
			s.state = PermissionDenied
			log.Printf("[PermissionScene] 相机权限被拒绝")
		case "Try again":
			s.state = PermissionAsking
		}
		return true
	}
	return false
}

// Update implements game.Scene
func (s *PermissionScene) Update(deltaTime float64) {
	if tapped, x, y := s.tap(); tapped {
		s.HandleTap(x, y)
	}
}

// Draw implements game.Scene
func (s *PermissionScene) Draw(screen *ebiten.Image) {
	screen.Fill(panelColor)

	cx, cy := s.width/2, s.height/2
	vector.DrawFilledRect(screen, float32(cx-220), float32(cy-90), 440, 200, overlayColor, false)

	switch s.state {
	case PermissionAsking:
		drawCenteredText(screen, "This experience needs access to your camera", cx, cy-50)
		drawCenteredText(screen, fmt.Sprintf("%s Allow to continue", utils.PointerVerb()), cx, cy-20)
	case PermissionDenied:
		drawCenteredText(screen, "Camera permission denied", cx, cy-50)
		drawCenteredText(screen, "Enable camera access and try again", cx, cy-20)
	}

	for _, b := range s.buttons() {
		b.draw(screen)
	}
}
