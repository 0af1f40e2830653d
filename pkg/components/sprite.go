package components

// SpriteSizeComponent 存储实体的视觉包围盒尺寸
// 渲染层据此绘制弓、箭和靶，碰撞检测不使用它
type SpriteSizeComponent struct {
	Width  float64
	Height float64
}

// Rect 返回实体位于 pos 时的视觉矩形
func (s *SpriteSizeComponent) Rect(pos *PositionComponent) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: s.Width, H: s.Height}
}
