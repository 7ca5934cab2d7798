package config

// 默认窗口参数（桌面端）
// 浏览器与移动端由 Layout 跟随宿主尺寸，窗口参数只作为初始值
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
	GameWindowTitle  = "AR Kick"
)

// SettingsAppName gdata 存储使用的应用名
const SettingsAppName = "arkick"
