package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/game"
	"github.com/decker502/archery/pkg/utils"
)

var (
	backgroundColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	bowColor        = color.RGBA{R: 120, G: 72, B: 32, A: 255}
	bowLockedColor  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	stringColor     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	arrowColor      = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	hitboxColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	overlayColor    = color.RGBA{A: 120}

	zoneColors = map[components.ZoneKind]color.RGBA{
		components.ZoneOuter:  {R: 60, G: 110, B: 220, A: 255},
		components.ZoneMiddle: {R: 230, G: 60, B: 50, A: 255},
		components.ZoneInner:  {R: 250, G: 210, B: 40, A: 255},
	}
)

// GameScene ebiten 前端：采集输入、驱动会话、绘制快照
//
// ebiten 的 TPS 设置为配置中的 ticksPerSecond，因此每次 Update 恰好推进会话一个 tick。
// 暂停时不推进会话；暂停期间松开拉弓键会在恢复后的第一个 tick 补发。
type GameScene struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	session      *game.Session

	poll func() utils.FrameInput

	paused         bool
	pendingRelease bool
	drawHeld       bool
}

// NewGameScene 创建新的一局
//
// 参数:
//   - sceneManager: 用于重新开始
//   - settings: 显示设置，可为降级模式
//   - cfg: 已验证的游戏配置
func NewGameScene(sceneManager *game.SceneManager, settings *game.SettingsManager, cfg *config.ArcheryConfig) (*GameScene, error) {
	session, err := game.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	log.Printf("[GameScene] 新的一局: %s", session.ID())

	return &GameScene{
		sceneManager: sceneManager,
		settings:     settings,
		session:      session,
		poll:         utils.PollFrameInput,
	}, nil
}

// Session 返回当前会话
func (s *GameScene) Session() *game.Session {
	return s.session
}

// IsPaused 是否处于暂停
func (s *GameScene) IsPaused() bool {
	return s.paused
}

// TranslateInput 将本帧按键边沿转换为会话输入
// 同一帧内先按下后松开时保持 DRAW_BEGIN 在前
func TranslateInput(in utils.FrameInput) []game.InputEvent {
	var events []game.InputEvent
	if in.DrawPressed {
		events = append(events, game.InputEvent{Type: game.InputDrawBegin})
	}
	if in.DrawReleased {
		events = append(events, game.InputEvent{Type: game.InputRelease})
	}
	if in.PausePressed {
		events = append(events, game.InputEvent{Type: game.InputPause})
	}
	if in.QuitPressed {
		events = append(events, game.InputEvent{Type: game.InputQuit})
	}
	return events
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) error {
	in := s.poll()

	if in.HitboxTogglePressed && s.settings != nil {
		s.settings.ToggleShowHitboxes()
	}

	if s.session.IsOver() && in.RestartPressed {
		if err := s.sceneManager.Restart(); err != nil {
			return fmt.Errorf("failed to restart: %w", err)
		}
		return nil
	}

	if in.DrawPressed {
		s.drawHeld = true
	}
	if in.DrawReleased {
		s.drawHeld = false
	}

	if s.paused {
		if in.QuitPressed {
			log.Printf("[GameScene] 退出")
			return ebiten.Termination
		}
		if in.DrawReleased {
			s.pendingRelease = true
		}
		if in.PausePressed {
			s.paused = false
			log.Printf("[GameScene] 继续")
		}
		return nil
	}

	events := TranslateInput(in)
	if s.pendingRelease {
		s.pendingRelease = false
		if !s.drawHeld {
			events = append([]game.InputEvent{{Type: game.InputRelease}}, events...)
		}
	}

	switch s.session.Tick(events) {
	case game.SignalPause:
		s.paused = true
		log.Printf("[GameScene] 暂停 (tick %d)", s.session.Ticks())
	case game.SignalQuit:
		log.Printf("[GameScene] 退出")
		return ebiten.Termination
	}
	return nil
}

// SaveOnExit 保存显示设置
func (s *GameScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] 保存设置失败: %v", err)
		return false
	}
	return true
}

func (s *GameScene) showHitboxes() bool {
	return s.settings != nil && s.settings.GetSettings().ShowHitboxes
}

// Draw 绘制当前快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()
	screen.Fill(backgroundColor)

	s.drawTarget(screen, snap)
	s.drawBow(screen, snap)
	s.drawArrows(screen, snap)
	s.drawHUD(screen, snap)
}

// drawTarget 从外到内绘制，靶心在最上层
func (s *GameScene) drawTarget(screen *ebiten.Image, snap game.Snapshot) {
	for i := len(snap.Zones) - 1; i >= 0; i-- {
		z := snap.Zones[i]
		vector.DrawFilledRect(screen, float32(z.Rect.X), float32(z.Rect.Y), float32(z.Rect.W), float32(z.Rect.H), zoneColors[z.Kind], false)
		if s.showHitboxes() {
			vector.StrokeRect(screen, float32(z.Rect.X), float32(z.Rect.Y), float32(z.Rect.W), float32(z.Rect.H), 1, hitboxColor, false)
		}
	}
}

// drawBow 弓身为竖直的弧，弓弦中点随档位向左拉开
func (s *GameScene) drawBow(screen *ebiten.Image, snap game.Snapshot) {
	x, y := float32(snap.BowX), float32(snap.BowY)
	w, h := float32(snap.BowWidth), float32(snap.BowHeight)

	body := bowColor
	if snap.BowVisual == components.VisualLocked {
		body = bowLockedColor
	}

	tipX := x + w*0.25
	bellyX := x + w
	midY := y + h/2
	vector.StrokeLine(screen, tipX, y, bellyX, midY, 4, body, true)
	vector.StrokeLine(screen, bellyX, midY, tipX, y+h, 4, body, true)

	pull := float32(0)
	if snap.BowVisual == components.VisualDrawing && snap.BowNotch > 0 {
		notches := float32(max(1, s.session.Config().Bow.DrawNotches))
		pull = w * 0.75 * float32(snap.BowNotch) / notches
	}
	vector.StrokeLine(screen, tipX, y, tipX-pull, midY, 1, stringColor, true)
	vector.StrokeLine(screen, tipX-pull, midY, tipX, y+h, 1, stringColor, true)

	if s.showHitboxes() {
		vector.StrokeRect(screen, x, y, w, h, 1, hitboxColor, false)
	}
}

func (s *GameScene) drawArrows(screen *ebiten.Image, snap game.Snapshot) {
	for _, p := range snap.Projectiles {
		r := p.Visual
		midY := float32(r.Y + r.H/2)
		vector.StrokeLine(screen, float32(r.X), midY, float32(r.Right()), midY, 2, arrowColor, true)
		vector.DrawFilledRect(screen, float32(p.Hitbox.X), float32(p.Hitbox.Y), float32(p.Hitbox.W), float32(p.Hitbox.H), arrowColor, false)

		if s.showHitboxes() {
			vector.StrokeRect(screen, float32(p.Hitbox.X), float32(p.Hitbox.Y), float32(p.Hitbox.W), float32(p.Hitbox.H), 1, hitboxColor, false)
		}
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	hud := fmt.Sprintf("SCORE %d   ARROWS %d/%d   %s", snap.Score, snap.Ammo, snap.MaxAmmo, snap.BowState)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)
	ebitenutil.DebugPrintAt(screen, controlsHint(), 10, 26)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	switch {
	case s.paused:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P", w/2-45, h/2)
	case snap.Over:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
		summary := fmt.Sprintf("GAME OVER  score %d  (inner %d / middle %d / outer %d)",
			snap.Score, snap.Hits[components.ZoneInner], snap.Hits[components.ZoneMiddle], snap.Hits[components.ZoneOuter])
		ebitenutil.DebugPrintAt(screen, summary, w/2-160, h/2)
		ebitenutil.DebugPrintAt(screen, restartHint(), w/2-65, h/2+16)
	}
}

func controlsHint() string {
	if utils.IsMobile() {
		return "HOLD to draw, LIFT to shoot"
	}
	return "SPACE/CLICK draw  P pause  H hitboxes  ESC quit"
}

func restartHint() string {
	if utils.IsMobile() {
		return "tap to play again"
	}
	return "press R to play again"
}
