package components

// HitboxComponent 定义实体的碰撞检测矩形
// 与视觉尺寸（SpriteSizeComponent）相互独立，箭矢只用箭头附近的一小块区域判定命中
type HitboxComponent struct {
	OffsetX float64 // 碰撞盒左上角相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒左上角相对于实体位置的Y偏移量（像素），正值向下偏移
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
}

// Rect 返回实体位于 pos 时碰撞盒在世界坐标中的矩形
func (h *HitboxComponent) Rect(pos *PositionComponent) Rect {
	return Rect{
		X: pos.X + h.OffsetX,
		Y: pos.Y + h.OffsetY,
		W: h.Width,
		H: h.Height,
	}
}
