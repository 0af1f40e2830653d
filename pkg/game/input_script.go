package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultScriptTail 输入脚本未指定总 tick 数时，最后一个输入之后继续运行的 tick 数
// 足够让最慢的箭飞出屏幕
const DefaultScriptTail = 300

// InputScript 无头模拟使用的输入脚本
//
// 示例：
//
//	ticks: 120
//	frames:
//	  - tick: 1
//	    events: [draw]
//	  - tick: 23
//	    events: [release]
type InputScript struct {
	Ticks  uint64        `yaml:"ticks"` // 总 tick 数，0 表示最后一个输入之后再运行 DefaultScriptTail 个 tick
	Frames []ScriptFrame `yaml:"frames"`
}

// ScriptFrame 某个 tick 的输入
type ScriptFrame struct {
	Tick   uint64   `yaml:"tick"`   // 从 1 开始
	Events []string `yaml:"events"` // draw / release / pause / quit
}

// LoadInputScript 从文件加载输入脚本
func LoadInputScript(path string) (*InputScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input script %s: %w", path, err)
	}
	return ParseInputScript(data)
}

// ParseInputScript 解析并验证输入脚本
func ParseInputScript(data []byte) (*InputScript, error) {
	var script InputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse input script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input script: %w", err)
	}
	return &script, nil
}

// Validate 检查 tick 编号与输入名称
func (s *InputScript) Validate() error {
	for i, frame := range s.Frames {
		if frame.Tick == 0 {
			return fmt.Errorf("frame %d: tick must start at 1", i)
		}
		if s.Ticks > 0 && frame.Tick > s.Ticks {
			return fmt.Errorf("frame %d: tick %d is beyond script length %d", i, frame.Tick, s.Ticks)
		}
		for _, name := range frame.Events {
			if _, err := ParseInputType(name); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
	}
	return nil
}

// Length 脚本实际运行的 tick 数
func (s *InputScript) Length() uint64 {
	if s.Ticks > 0 {
		return s.Ticks
	}
	var last uint64
	for _, frame := range s.Frames {
		last = max(last, frame.Tick)
	}
	return last + DefaultScriptTail
}

// Source 返回按脚本回放输入的 FrameSource
// 同一 tick 出现多次时，输入按脚本中的先后顺序合并
func (s *InputScript) Source() *ScriptSource {
	frames := make(map[uint64][]InputEvent, len(s.Frames))
	for _, frame := range s.Frames {
		for _, name := range frame.Events {
			t, _ := ParseInputType(name)
			frames[frame.Tick] = append(frames[frame.Tick], InputEvent{Type: t})
		}
	}
	return &ScriptSource{frames: frames, length: s.Length()}
}

// ScriptSource 回放输入脚本
type ScriptSource struct {
	frames map[uint64][]InputEvent
	tick   uint64
	length uint64
}

// NextFrame 实现 FrameSource
func (src *ScriptSource) NextFrame() ([]InputEvent, bool) {
	if src.tick >= src.length {
		return nil, false
	}
	src.tick++
	return src.frames[src.tick], true
}

// Remaining 尚未回放的 tick 数
func (src *ScriptSource) Remaining() uint64 {
	return src.length - src.tick
}
