// archery-tui 终端版射箭游戏
//
// 终端无法报告按键松开，因此空格在"拉弓"和"松弦"之间切换。
//
// 用法：
//
//	go run ./cmd/archery-tui [-config data/archery.yaml] [-log tui.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/game"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	logPath    = flag.String("log", "", "日志输出文件（默认不输出，避免破坏终端画面）")
)

// tui 终端前端
// 输入在事件 goroutine 中读取，所有会话操作都在主循环的 select 中串行执行
type tui struct {
	screen  tcell.Screen
	cfg     *config.ArcheryConfig
	session *game.Session

	pending      []game.InputEvent
	paused       bool
	showHitboxes bool
}

func newTUI(screen tcell.Screen, cfg *config.ArcheryConfig) (*tui, error) {
	session, err := game.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &tui{screen: screen, cfg: cfg, session: session}, nil
}

// toggleDraw 空格：弓在拉开状态（或本 tick 已排队拉弓）时松弦，否则拉弓
func (t *tui) toggleDraw() {
	drawing := t.session.BowState() == components.BowDrawing
	for _, ev := range t.pending {
		switch ev.Type {
		case game.InputDrawBegin:
			drawing = true
		case game.InputRelease:
			drawing = false
		}
	}

	if drawing {
		t.pending = append(t.pending, game.InputEvent{Type: game.InputRelease})
	} else {
		t.pending = append(t.pending, game.InputEvent{Type: game.InputDrawBegin})
	}
}

// handleInput 处理一个终端事件，返回 false 表示退出
func (t *tui) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		switch ev.Rune() {
		case ' ':
			if !t.paused {
				t.toggleDraw()
			}
		case 'p':
			if t.paused {
				t.paused = false
			} else {
				t.pending = append(t.pending, game.InputEvent{Type: game.InputPause})
			}
		case 'q':
			if t.paused {
				return false
			}
			t.pending = append(t.pending, game.InputEvent{Type: game.InputQuit})
		case 'h':
			t.showHitboxes = !t.showHitboxes
		case 'r':
			if t.session.IsOver() {
				session, err := game.NewSession(t.cfg)
				if err != nil {
					log.Printf("[TUI] 重新开始失败: %v", err)
					return true
				}
				t.session = session
				t.pending = nil
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// step 推进一个 tick，返回 false 表示退出
func (t *tui) step() bool {
	if t.paused {
		return true
	}

	events := t.pending
	t.pending = nil

	switch t.session.Tick(events) {
	case game.SignalPause:
		t.paused = true
	case game.SignalQuit:
		return false
	}
	return true
}

func (t *tui) draw() {
	cols, rows := t.screen.Size()
	v := newViewport(cols, rows, t.cfg.Screen.Width, t.cfg.Screen.Height)
	render(t.screen, v, t.session.Snapshot(), renderOptions{paused: t.paused, showHitboxes: t.showHitboxes})
}

func (t *tui) run() {
	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.TicksPerSecond))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	t.draw()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !t.step() {
				return
			}
			t.draw()
		}
	}
}

func loadConfig(path string) (*config.ArcheryConfig, error) {
	if path == "" {
		return config.DefaultArcheryConfig(), nil
	}
	return config.LoadArcheryConfig(path)
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	app, err := newTUI(screen, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	app.run()
	screen.Fini()

	fmt.Printf("score %d (%d arrows fired)\n", app.session.Score(), app.session.ShotsFired())
}
