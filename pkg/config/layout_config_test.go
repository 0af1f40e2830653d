package config

import "testing"

// TestDefaultScreenMatchesWindow 默认游戏区域与逻辑窗口尺寸一致
func TestDefaultScreenMatchesWindow(t *testing.T) {
	cfg := DefaultArcheryConfig()

	if cfg.Screen.Width != GameWindowWidth {
		t.Errorf("Expected screen width %d, got %.1f", GameWindowWidth, cfg.Screen.Width)
	}
	if cfg.Screen.Height != GameWindowHeight {
		t.Errorf("Expected screen height %d, got %.1f", GameWindowHeight, cfg.Screen.Height)
	}

	// 参考布局中靶锚定在屏幕右下角
	if cfg.Target.AnchorX != GameWindowWidth || cfg.Target.AnchorY != GameWindowHeight {
		t.Errorf("Expected target anchor at bottom-right, got (%.1f, %.1f)", cfg.Target.AnchorX, cfg.Target.AnchorY)
	}
}
