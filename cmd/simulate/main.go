// simulate 无头运行一局射箭游戏
//
// 按输入脚本逐 tick 回放输入，结束后打印得分汇总。相同的配置与脚本总是得到相同的结果。
//
// 用法：
//
//	go run ./cmd/simulate -script round.yaml [-config data/archery.yaml] [-ticks 600] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/game"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	scriptPath = flag.String("script", "", "输入脚本路径（必填）")
	maxTicks   = flag.Uint64("ticks", 0, "最多运行的 tick 数，0 表示由脚本决定")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

// run 加载配置与脚本，驱动会话并把汇总写入 out
func run(cfgPath, scriptPath string, ticks uint64, out io.Writer) error {
	cfg := config.DefaultArcheryConfig()
	if cfgPath != "" {
		loaded, err := config.LoadArcheryConfig(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	script, err := game.LoadInputScript(scriptPath)
	if err != nil {
		return err
	}

	session, err := game.NewSession(cfg)
	if err != nil {
		return err
	}

	log.Printf("[Simulator] session %s: %d frames, %d ticks", session.ID(), len(script.Frames), script.Length())
	result := game.RunFrames(session, script.Source(), ticks)

	fmt.Fprintf(out, "ticks:    %d\n", result.Ticks)
	if result.Signal != game.SignalNone {
		fmt.Fprintf(out, "stopped:  %s\n", result.Signal)
	}
	fmt.Fprintf(out, "score:    %d\n", session.Score())
	fmt.Fprintf(out, "shots:    %d\n", session.ShotsFired())
	for _, kind := range components.ZonePriority {
		fmt.Fprintf(out, "  %-7s %d\n", kind.String()+":", session.Hits(kind))
	}
	fmt.Fprintf(out, "misses:   %d\n", session.Misses())
	fmt.Fprintf(out, "bow:      %s (ammo %d)\n", session.BowState(), session.Ammo())
	fmt.Fprintf(out, "in air:   %d\n", len(session.Projectiles()))
	return nil
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "-script is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, *scriptPath, *maxTicks, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}
