package components

// BowState 弓的状态机状态
type BowState int

const (
	// BowIdle 空闲，弓弦未拉开，等待玩家开始拉弓
	BowIdle BowState = iota
	// BowDrawing 拉弓中，每个 tick 累积拉弓时长
	BowDrawing
	// BowCooldown 射出后的冷却锁定期
	BowCooldown
	// BowDepleted 弹药耗尽，终止状态
	BowDepleted
)

// String 返回状态名称，用于日志和调试显示
func (s BowState) String() string {
	switch s {
	case BowIdle:
		return "Idle"
	case BowDrawing:
		return "Drawing"
	case BowCooldown:
		return "Cooldown"
	case BowDepleted:
		return "Depleted"
	default:
		return "Unknown"
	}
}

// IsTerminal 终止状态之后不再有任何转移
func (s BowState) IsTerminal() bool {
	return s == BowDepleted
}

// BowVisual 渲染层使用的弓外观
type BowVisual int

const (
	// VisualUndrawn 弓弦未拉开
	VisualUndrawn BowVisual = iota
	// VisualDrawing 拉弓中，弯曲程度由 BowComponent.Notch 决定
	VisualDrawing
	// VisualLocked 弓弦完全拉回的锁定外观（冷却中或弹药耗尽）
	VisualLocked
)

// String 返回外观名称
func (v BowVisual) String() string {
	switch v {
	case VisualUndrawn:
		return "Undrawn"
	case VisualDrawing:
		return "Drawing"
	case VisualLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// BowComponent 弓的全部内部状态
//
// 状态机不再由若干状态对象分别持有数据，所有计数器都集中在这里，
// 由 systems.StepBow 纯函数负责推进。
type BowComponent struct {
	State BowState

	DrawTicks     int     // 拉弓累计 tick 数，只在 Drawing 中增加，离开 Drawing 时归零
	CooldownTicks int     // 剩余冷却 tick 数
	Ammo          int     // 剩余箭矢，永不为负
	MaxAmmo       int     // 会话开始时的箭矢数
	VerticalSpeed float64 // 垂直移动速度（像素/tick），碰到上下边界时反向
	Notch         int     // 弓弦弯曲的离散档位，0 表示未拉开
}

// Visual 根据当前状态返回外观
func (b *BowComponent) Visual() BowVisual {
	switch b.State {
	case BowDrawing:
		return VisualDrawing
	case BowCooldown, BowDepleted:
		return VisualLocked
	default:
		return VisualUndrawn
	}
}
