package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/arkick/pkg/utils"
)

// SettingsAction 用户对设置的一次调整
type SettingsAction int

const (
	SettingsNone SettingsAction = iota
	SettingsSensitivityDown
	SettingsSensitivityUp
	SettingsToggleInvert
	SettingsToggleDebug
)

// 每次按键调整灵敏度的倍数
const sensitivityStep = 1.25

// placementButton 返回底部的放置按钮
func (s *ARScene) placementButton() button {
	w := min(s.width-40, 360)
	return button{
		Rect:  centeredRect(s.width/2, s.height-50, w, 56),
		Label: fmt.Sprintf("%s here to place", utils.PointerVerb()),
		Fill:  buttonColor,
	}
}

// readSettingsAction 读取本帧的设置按键
func readSettingsAction() SettingsAction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		return SettingsSensitivityDown
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		return SettingsSensitivityUp
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		return SettingsToggleInvert
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		return SettingsToggleDebug
	default:
		return SettingsNone
	}
}

func (s *ARScene) handleSettingsKeys() {
	s.ApplySettingsAction(readSettingsAction())
}

// ApplySettingsAction 应用设置调整，更新倾斜映射并保存
func (s *ARScene) ApplySettingsAction(action SettingsAction) {
	switch action {
	case SettingsNone:
		return
	case SettingsSensitivityDown:
		s.settings.ScaleTiltSensitivity(1 / sensitivityStep)
	case SettingsSensitivityUp:
		s.settings.ScaleTiltSensitivity(sensitivityStep)
	case SettingsToggleInvert:
		s.settings.ToggleInvertTilt()
	case SettingsToggleDebug:
		s.settings.ToggleDebug()
	}

	s.tiltSystem.SetMapper(s.tiltMapper())
	if err := s.settings.Save(); err != nil {
		log.Printf("[ARScene] Warning: 保存设置失败: %v", err)
	}
}

// drawOverlay 绘制放置提示和调试信息
func (s *ARScene) drawOverlay(screen *ebiten.Image) {
	if !s.session.Placed {
		s.placementButton().draw(screen)
	}
	if !s.settings.GetSettings().ShowDebug {
		return
	}

	mapper := s.tiltSystem.Mapper()
	applied, dropped := s.tiltSystem.Stats()
	ball := s.animator
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Placed: %v  Launches: %d", s.session.Placed, s.session.Launches),
		fmt.Sprintf("Ball: %s  target=(%.2f, %.2f, %.2f)", ball.State(), ball.Target().X(), ball.Target().Y(), ball.Target().Z()),
		fmt.Sprintf("Glove: %s", s.session.Glove.State()),
		fmt.Sprintf("Gamma: %.1f  sensitivity=%.3f invert=%v", s.tiltSystem.LastReading().GammaOrZero(), mapper.Sensitivity, mapper.Invert),
		fmt.Sprintf("Readings: applied=%d dropped=%d overflow=%d", applied, dropped, s.tiltSystem.Overflow()),
		fmt.Sprintf("Camera: (%.2f, %.2f, %.2f) yaw=%.2f", s.rig.Position.X(), s.rig.Position.Y(), s.rig.Position.Z(), s.rig.Yaw),
		"[ / ] sensitivity  I invert  F3 debug  WASD/QE move",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*debugCharHeight)
	}
}
