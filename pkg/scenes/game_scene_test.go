package scenes

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/game"
	"github.com/decker502/archery/pkg/utils"
)

// scriptedInput 按顺序返回预设的帧输入，用完后返回空输入
type scriptedInput struct {
	frames []utils.FrameInput
}

func (p *scriptedInput) next() utils.FrameInput {
	if len(p.frames) == 0 {
		return utils.FrameInput{}
	}
	in := p.frames[0]
	p.frames = p.frames[1:]
	return in
}

func newTestScene(t *testing.T, cfg *config.ArcheryConfig, frames ...utils.FrameInput) (*GameScene, *game.SceneManager) {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultArcheryConfig()
	}

	settings, _ := game.NewSettingsManager(nil)
	sm := game.NewSceneManager()
	input := &scriptedInput{frames: frames}

	sm.SetSceneFactory(func() (game.Scene, error) {
		scene, err := NewGameScene(sm, settings, cfg)
		if err != nil {
			return nil, err
		}
		scene.poll = input.next
		return scene, nil
	})
	if err := sm.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	return sm.GetCurrentScene().(*GameScene), sm
}

func update(t *testing.T, s *GameScene, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Update(1.0 / 30); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
}

func TestTranslateInput(t *testing.T) {
	events := TranslateInput(utils.FrameInput{
		DrawPressed:  true,
		DrawReleased: true,
		PausePressed: true,
		QuitPressed:  true,
	})

	want := []game.InputType{game.InputDrawBegin, game.InputRelease, game.InputPause, game.InputQuit}
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(events))
	}
	for i := range want {
		if events[i].Type != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], events[i].Type)
		}
	}

	if got := TranslateInput(utils.FrameInput{HitboxTogglePressed: true, RestartPressed: true}); len(got) != 0 {
		t.Errorf("Front-end only keys must not reach the session, got %v", got)
	}
}

func TestGameScene_DrawAndRelease(t *testing.T) {
	s, _ := newTestScene(t, nil,
		utils.FrameInput{DrawPressed: true},
		utils.FrameInput{},
		utils.FrameInput{DrawReleased: true},
	)

	update(t, s, 3)

	if s.Session().ShotsFired() != 1 {
		t.Errorf("Expected 1 shot, got %d", s.Session().ShotsFired())
	}
	if s.Session().Ticks() != 3 {
		t.Errorf("Expected 3 ticks, got %d", s.Session().Ticks())
	}
}

// TestGameScene_Pause 暂停期间会话不前进
func TestGameScene_Pause(t *testing.T) {
	s, _ := newTestScene(t, nil,
		utils.FrameInput{PausePressed: true},
		utils.FrameInput{},
		utils.FrameInput{},
		utils.FrameInput{PausePressed: true},
		utils.FrameInput{},
	)

	update(t, s, 1)
	if !s.IsPaused() {
		t.Fatal("Scene should be paused")
	}
	if s.Session().Ticks() != 1 {
		t.Errorf("The pausing tick itself still runs, got %d ticks", s.Session().Ticks())
	}

	update(t, s, 2)
	if s.Session().Ticks() != 1 {
		t.Errorf("Session must not advance while paused, got %d ticks", s.Session().Ticks())
	}

	update(t, s, 1)
	if s.IsPaused() {
		t.Fatal("Scene should be resumed")
	}

	update(t, s, 1)
	if s.Session().Ticks() != 2 {
		t.Errorf("Expected 2 ticks after resume, got %d", s.Session().Ticks())
	}
}

// TestGameScene_ReleaseDuringPause 暂停期间松开拉弓键，恢复后补发
func TestGameScene_ReleaseDuringPause(t *testing.T) {
	s, _ := newTestScene(t, nil,
		utils.FrameInput{DrawPressed: true},
		utils.FrameInput{PausePressed: true},
		utils.FrameInput{DrawReleased: true},
		utils.FrameInput{PausePressed: true},
		utils.FrameInput{},
	)

	update(t, s, 4)
	if s.Session().BowState() != components.BowDrawing {
		t.Fatalf("Bow should still be drawing, got %s", s.Session().BowState())
	}

	update(t, s, 1)
	if s.Session().ShotsFired() != 1 {
		t.Errorf("Release during pause should fire after resume, got %d shots", s.Session().ShotsFired())
	}
}

func TestGameScene_Quit(t *testing.T) {
	s, _ := newTestScene(t, nil, utils.FrameInput{QuitPressed: true})

	if err := s.Update(1.0 / 30); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

func TestGameScene_QuitWhilePaused(t *testing.T) {
	s, _ := newTestScene(t, nil,
		utils.FrameInput{PausePressed: true},
		utils.FrameInput{QuitPressed: true},
	)

	update(t, s, 1)
	if err := s.Update(1.0 / 30); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

// TestGameScene_Restart 游戏结束后按 R 开始新的一局
func TestGameScene_Restart(t *testing.T) {
	cfg := config.DefaultArcheryConfig()
	cfg.Bow.MaxAmmo = 1

	s, sm := newTestScene(t, cfg,
		utils.FrameInput{DrawPressed: true, DrawReleased: true},
		utils.FrameInput{RestartPressed: true},
	)

	// R 在游戏结束前无效
	update(t, s, 2)
	if sm.GetCurrentScene() != s {
		t.Fatal("Restart must be ignored while the game is running")
	}

	for i := 0; i < 200 && !s.Session().IsOver(); i++ {
		update(t, s, 1)
	}
	if !s.Session().IsOver() {
		t.Fatal("Session should be over")
	}

	s.poll = func() utils.FrameInput { return utils.FrameInput{RestartPressed: true} }
	update(t, s, 1)

	next, ok := sm.GetCurrentScene().(*GameScene)
	if !ok || next == s {
		t.Fatal("Expected a fresh game scene")
	}
	if next.Session().ID() == s.Session().ID() || next.Session().Ammo() != 1 {
		t.Error("Fresh scene should start a new session")
	}
}

func TestGameScene_ToggleHitboxes(t *testing.T) {
	s, _ := newTestScene(t, nil, utils.FrameInput{HitboxTogglePressed: true})

	if s.showHitboxes() {
		t.Fatal("Hitboxes should be hidden by default")
	}
	update(t, s, 1)
	if !s.showHitboxes() {
		t.Error("Hitboxes should be visible after toggle")
	}
	if !s.SaveOnExit() {
		t.Error("SaveOnExit in degraded mode should succeed")
	}
}

// TestHints_MobileEmulation 移动模式下提示改为触摸操作
func TestHints_MobileEmulation(t *testing.T) {
	t.Setenv("ARCHERY_MOBILE_EMULATE", "1")

	if got := controlsHint(); got != "HOLD to draw, LIFT to shoot" {
		t.Errorf("Expected touch controls hint, got %q", got)
	}
	if got := restartHint(); got != "tap to play again" {
		t.Errorf("Expected tap restart hint, got %q", got)
	}
}
