package game

import "log"

//go:generate go tool mockgen -destination=./mocks/frame_source_mock.go -package=mocks . FrameSource

// FrameSource 按固定频率提供每个 tick 的输入
//
// ebiten 场景、终端前端和无头模拟各自实现输入采集，会话本身不关心输入来自哪里。
type FrameSource interface {
	// NextFrame 返回下一个 tick 的输入；ok == false 表示输入结束
	NextFrame() (events []InputEvent, ok bool)
}

// RunResult RunFrames 的结果
type RunResult struct {
	Ticks  uint64        // 本次运行执行的 tick 数
	Signal ControlSignal // 导致运行停止的控制信号（输入耗尽时为 SignalNone）
}

// RunFrames 无头地驱动会话，直到输入耗尽、收到 PAUSE/QUIT 或达到 maxTicks
//
// 参数:
//   - s: 要驱动的会话
//   - src: 输入来源
//   - maxTicks: 本次最多执行的 tick 数，0 表示不限制
func RunFrames(s *Session, src FrameSource, maxTicks uint64) RunResult {
	var result RunResult
	for maxTicks == 0 || result.Ticks < maxTicks {
		events, ok := src.NextFrame()
		if !ok {
			break
		}

		signal := s.Tick(events)
		result.Ticks++

		if signal != SignalNone {
			log.Printf("[Session] %s 收到 %s 信号，停止运行 (tick %d)", s.ID(), signal, s.Ticks())
			result.Signal = signal
			break
		}
	}
	return result
}
