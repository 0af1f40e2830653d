package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时 HOME 下创建 gdata manager
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_archery_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 默认不全屏、不显示碰撞盒、不输出详细日志
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen || settings.ShowHitboxes || settings.Verbose {
		t.Errorf("Expected all settings off by default, got %+v", settings)
	}
}

// TestNewSettingsManager 首次启动没有存档时使用默认设置
func TestNewSettingsManager(t *testing.T) {
	sm, err := NewSettingsManager(newTestGdata(t))
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil || sm.GetSettings() == nil {
		t.Fatal("NewSettingsManager() returned no settings")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", sm.GetSettings())
	}
}

// TestNewSettingsManagerNilGdata 降级模式：只在内存中保存设置
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	sm.SetShowHitboxes(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail, got %v", err)
	}
	if !sm.GetSettings().ShowHitboxes {
		t.Error("In-memory setting should be kept")
	}

	// 降级模式下重新加载回到默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail, got %v", err)
	}
	if sm.GetSettings().ShowHitboxes {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsSaveAndLoad 保存后新的管理器能读到相同设置
func TestSettingsSaveAndLoad(t *testing.T) {
	gdataManager := newTestGdata(t)

	sm, _ := NewSettingsManager(gdataManager)
	sm.SetFullscreen(true)
	sm.SetShowHitboxes(true)
	sm.SetVerbose(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	got := reloaded.GetSettings()
	if !got.Fullscreen || !got.ShowHitboxes || !got.Verbose {
		t.Errorf("Expected saved settings to be restored, got %+v", got)
	}
}

// TestSettingsLoadCorrupted 存档损坏时回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := newTestGdata(t)
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() should not fail on corrupted data, got %v", err)
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("Expected defaults after corrupted load, got %+v", sm.GetSettings())
	}

	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}

func TestToggleShowHitboxes(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if !sm.ToggleShowHitboxes() {
		t.Error("Expected first toggle to enable hitboxes")
	}
	if sm.ToggleShowHitboxes() {
		t.Error("Expected second toggle to disable hitboxes")
	}
}
