package systems

// DrawForce 根据拉弓时长计算发射力度
//
//	force = forceMin + (forceMax - forceMin) * drawTicks / maxDrawTicks
//
// drawTicks 会被限制在 [0, maxDrawTicks]，因此结果总在 [forceMin, forceMax] 内，
// 且 drawTicks == 0 时恰为 forceMin，drawTicks == maxDrawTicks 时恰为 forceMax。
func DrawForce(drawTicks, maxDrawTicks int, forceMin, forceMax float64) float64 {
	if maxDrawTicks <= 0 {
		return forceMin
	}
	drawTicks = max(0, min(drawTicks, maxDrawTicks))
	if drawTicks == maxDrawTicks {
		return forceMax
	}
	return forceMin + (forceMax-forceMin)*float64(drawTicks)/float64(maxDrawTicks)
}

// DrawNotch 将拉弓时长离散化为弓弦弯曲档位（向下取整）
// 返回值范围 [0, notches]
func DrawNotch(drawTicks, maxDrawTicks, notches int) int {
	if maxDrawTicks <= 0 || notches <= 0 {
		return 0
	}
	drawTicks = max(0, min(drawTicks, maxDrawTicks))
	return drawTicks * notches / maxDrawTicks
}
