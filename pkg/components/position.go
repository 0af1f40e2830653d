package components

// PositionComponent 实体在游戏世界中的位置（像素，左上角为原点，Y轴向下）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体每个 tick 的位移量（像素/tick）
type VelocityComponent struct {
	VX float64 // 水平速度，正值向右
	VY float64 // 垂直速度，正值向下
}

// IsZero 速度为 (0,0) 时返回 true
func (v *VelocityComponent) IsZero() bool {
	return v.VX == 0 && v.VY == 0
}
