package components

// ZoneKind 靶的计分区域，取值顺序即命中判定的优先级
type ZoneKind int

const (
	// ZoneNone 未命中任何区域
	ZoneNone ZoneKind = iota - 1
	// ZoneInner 靶心
	ZoneInner
	// ZoneMiddle 中环
	ZoneMiddle
	// ZoneOuter 外环
	ZoneOuter
)

// ZonePriority 命中判定的固定顺序：靶心 -> 中环 -> 外环
var ZonePriority = [...]ZoneKind{ZoneInner, ZoneMiddle, ZoneOuter}

// String 返回区域名称（与配置文件中的 name 字段一致）
func (k ZoneKind) String() string {
	switch k {
	case ZoneInner:
		return "inner"
	case ZoneMiddle:
		return "middle"
	case ZoneOuter:
		return "outer"
	default:
		return "none"
	}
}

// ParseZoneKind 将配置中的区域名称转换为 ZoneKind
func ParseZoneKind(name string) (ZoneKind, bool) {
	switch name {
	case "inner":
		return ZoneInner, true
	case "middle":
		return ZoneMiddle, true
	case "outer":
		return ZoneOuter, true
	default:
		return ZoneNone, false
	}
}

// Zone 一个计分区域（世界坐标）
type Zone struct {
	Kind  ZoneKind
	Rect  Rect
	Score int
}

// TargetComponent 靶的静态几何
// Zones 按 ZoneKind 下标存放，整个会话期间不变
type TargetComponent struct {
	Zones [len(ZonePriority)]Zone
}

// Zone 返回指定区域
func (t *TargetComponent) Zone(kind ZoneKind) Zone {
	return t.Zones[kind]
}

// Bounds 返回包含全部区域的最小矩形
func (t *TargetComponent) Bounds() Rect {
	b := t.Zones[0].Rect
	for _, z := range t.Zones[1:] {
		left := min(b.X, z.Rect.X)
		top := min(b.Y, z.Rect.Y)
		right := max(b.Right(), z.Rect.Right())
		bottom := max(b.Bottom(), z.Rect.Bottom())
		b = Rect{X: left, Y: top, W: right - left, H: bottom - top}
	}
	return b
}
