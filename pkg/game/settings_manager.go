package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 灵敏度可调节范围
const (
	MinTiltSensitivity = 0.005
	MaxTiltSensitivity = 0.5
)

// DemoSettings 用户可调节并持久化的设置
type DemoSettings struct {
	TiltSensitivity float64 `yaml:"tiltSensitivity"` // 每度倾斜的水平位移
	InvertTilt      bool    `yaml:"invertTilt"`      // 反转倾斜方向
	ShowDebug       bool    `yaml:"showDebug"`       // 显示调试信息
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DemoSettings {
	return &DemoSettings{
		TiltSensitivity: 0.05,
		InvertTilt:      false,
		ShowDebug:       false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	defaults     DemoSettings
	settings     *DemoSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "demo"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - defaults: 没有存档时使用的设置，nil 时使用 DefaultSettings()；灵敏度会被限制在允许范围内
//
// 加载失败不是致命错误，此时使用默认设置并记录警告。
func NewSettingsManager(gdataManager *gdata.Manager, defaults *DemoSettings) *SettingsManager {
	if defaults == nil {
		defaults = DefaultSettings()
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     *defaults,
	}
	sm.defaults.TiltSensitivity = clampSensitivity(sm.defaults.TiltSensitivity)
	sm.resetToDefaults()

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

func (sm *SettingsManager) resetToDefaults() {
	s := sm.defaults
	sm.settings = &s
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或没有存档时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.resetToDefaults()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.resetToDefaults()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 在默认值之上解析，旧存档缺少的字段保留默认值
	loaded := sm.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.TiltSensitivity = clampSensitivity(loaded.TiltSensitivity)

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DemoSettings {
	return sm.settings
}

// SetTiltSensitivity 设置倾斜灵敏度，限制在 [MinTiltSensitivity, MaxTiltSensitivity]
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTiltSensitivity(v float64) {
	sm.settings.TiltSensitivity = clampSensitivity(v)
}

// ScaleTiltSensitivity 按倍数调整灵敏度
func (sm *SettingsManager) ScaleTiltSensitivity(factor float64) {
	sm.SetTiltSensitivity(sm.settings.TiltSensitivity * factor)
}

// ToggleInvertTilt 切换倾斜方向
func (sm *SettingsManager) ToggleInvertTilt() {
	sm.settings.InvertTilt = !sm.settings.InvertTilt
}

// ToggleDebug 切换调试信息显示
func (sm *SettingsManager) ToggleDebug() {
	sm.settings.ShowDebug = !sm.settings.ShowDebug
}

func clampSensitivity(v float64) float64 {
	if v < MinTiltSensitivity {
		return MinTiltSensitivity
	}
	if v > MaxTiltSensitivity {
		return MaxTiltSensitivity
	}
	return v
}
