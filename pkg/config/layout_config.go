package config

// 布局配置常量
// 本文件定义了窗口尺寸等与渲染层相关的参数，游戏区域尺寸本身由 ArcheryConfig.Screen 决定

const (
	// GameWindowWidth 逻辑屏幕宽度（与参考布局的游戏区域一致）
	GameWindowWidth = 1000

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 650

	// WindowTitle 窗口标题
	WindowTitle = "Super Tiny Bow Game"

	// DefaultConfigPath 默认配置文件路径（相对于 embedded 数据根目录）
	DefaultConfigPath = "data/archery.yaml"
)
