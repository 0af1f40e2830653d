package game

import "fmt"

// InputType 渲染/输入层每个 tick 交给会话的输入类型
type InputType int

const (
	// InputDrawBegin 按下拉弓键（空格 / 鼠标 / 触摸）
	InputDrawBegin InputType = iota
	// InputRelease 松开拉弓键
	InputRelease
	// InputPause 暂停/继续，会话只把它作为控制信号返回
	InputPause
	// InputQuit 退出，会话只把它作为控制信号返回
	InputQuit
)

// String 返回输入名称（与输入脚本中的写法一致）
func (t InputType) String() string {
	switch t {
	case InputDrawBegin:
		return "draw"
	case InputRelease:
		return "release"
	case InputPause:
		return "pause"
	case InputQuit:
		return "quit"
	default:
		return fmt.Sprintf("InputType(%d)", int(t))
	}
}

// ParseInputType 将输入名称转换为 InputType
func ParseInputType(name string) (InputType, error) {
	switch name {
	case "draw":
		return InputDrawBegin, nil
	case "release":
		return InputRelease, nil
	case "pause":
		return InputPause, nil
	case "quit":
		return InputQuit, nil
	default:
		return 0, fmt.Errorf("unknown input %q", name)
	}
}

// InputEvent 一个输入事件
type InputEvent struct {
	Type InputType
}

// Events 按顺序构造一批输入事件
func Events(types ...InputType) []InputEvent {
	events := make([]InputEvent, len(types))
	for i, t := range types {
		events[i] = InputEvent{Type: t}
	}
	return events
}

// ControlSignal Tick 返回给输入层的控制信号
type ControlSignal int

const (
	// SignalNone 继续运行
	SignalNone ControlSignal = iota
	// SignalPause 输入层请求暂停/继续
	SignalPause
	// SignalQuit 输入层请求退出
	SignalQuit
)

// String 返回信号名称
func (s ControlSignal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalPause:
		return "pause"
	case SignalQuit:
		return "quit"
	default:
		return fmt.Sprintf("ControlSignal(%d)", int(s))
	}
}
