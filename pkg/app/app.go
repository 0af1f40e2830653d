// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/embedded"
	"github.com/decker502/archery/pkg/game"
	"github.com/decker502/archery/pkg/scenes"
	"github.com/decker502/archery/pkg/utils"
)

// storageAppName gdata 存储目录名
const storageAppName = "super_tiny_bow"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空则使用嵌入的 data/archery.yaml
	ConfigPath string
	// ShowHitboxes 启动时显示碰撞盒（覆盖已保存的设置）
	ShowHitboxes bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	cfg                      *config.ArcheryConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] 配置加载完成: %d ticks/s, %d 支箭", gameConfig.TicksPerSecond, gameConfig.Bow.MaxAmmo)

	settings, _ := game.NewSettingsManager(openStorage())
	if cfg.ShowHitboxes {
		settings.SetShowHitboxes(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(sceneManager, settings, gameConfig)
	})
	if err := sceneManager.Restart(); err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		cfg:          gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 优先读取磁盘上的配置文件，否则使用嵌入的默认配置
func loadGameConfig(path string) (*config.ArcheryConfig, error) {
	if path != "" {
		cfg, err := config.LoadArcheryConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		return cfg, nil
	}

	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
	}
	cfg, err := config.ParseArcheryConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	return cfg, nil
}

// openStorage 打开 gdata 存储；失败时返回 nil，设置管理器进入降级模式
func openStorage() *gdata.Manager {
	if dir, err := utils.PrepareStorage(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	} else if dir != "" {
		log.Printf("[App] 设置目录: %s", dir)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: storageAppName,
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// TicksPerSecond 游戏逻辑频率，main 据此调用 ebiten.SetTPS
func (a *App) TicksPerSecond() int {
	return a.cfg.TicksPerSecond
}

// StartFullscreen 是否按已保存的设置全屏启动
func (a *App) StartFullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（频率为配置中的 ticksPerSecond）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settings.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(a.cfg.TicksPerSecond)
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.Screen.Width), int(a.cfg.Screen.Height)
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
