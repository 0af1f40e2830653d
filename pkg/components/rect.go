package components

// Rect 轴对齐矩形，(X,Y) 为左上角
type Rect struct {
	X, Y float64
	W, H float64
}

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Translate 返回平移 (dx, dy) 后的矩形
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects 检查两个矩形是否重叠
//
// 仅共享一条边不算重叠。
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() &&
		o.X < r.Right() &&
		r.Y < o.Bottom() &&
		o.Y < r.Bottom()
}

// Contains 点 (x, y) 位于矩形内部（含左上边界，不含右下边界）时返回 true
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
