package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/game"
)

// hudLines 顶部状态栏占用的行数
const hudLines = 2

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBow     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleLocked  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleArrow   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHitbox  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)

	zoneStyles = map[components.ZoneKind]tcell.Style{
		components.ZoneOuter:  tcell.StyleDefault.Background(tcell.ColorBlue),
		components.ZoneMiddle: tcell.StyleDefault.Background(tcell.ColorRed),
		components.ZoneInner:  tcell.StyleDefault.Background(tcell.ColorYellow),
	}
)

// viewport 把游戏坐标缩放到终端字符格，状态栏下方为游戏区域
type viewport struct {
	cols, rows     int
	worldW, worldH float64
}

func newViewport(cols, rows int, worldW, worldH float64) viewport {
	return viewport{cols: max(cols, 1), rows: max(rows-hudLines, 1), worldW: worldW, worldH: worldH}
}

// cell 返回游戏坐标所在的字符格（已加上状态栏偏移）
func (v viewport) cell(x, y float64) (col, row int) {
	col = int(x * float64(v.cols) / v.worldW)
	row = int(y*float64(v.rows)/v.worldH) + hudLines
	return col, row
}

// span 返回矩形覆盖的字符格范围 [c0,c1]x[r0,r1]，至少一格
func (v viewport) span(r components.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.cell(r.X, r.Y)
	c1, r1 = v.cell(r.Right(), r.Bottom())
	return c0, r0, max(c1-1, c0), max(r1-1, r0)
}

// set 只写入游戏区域内的格子
func (v viewport) set(screen tcell.Screen, col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= v.cols || row < hudLines || row >= v.rows+hudLines {
		return
	}
	screen.SetContent(col, row, ch, nil, style)
}

func drawText(screen tcell.Screen, col, row int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

// renderOptions 终端前端的显示开关
type renderOptions struct {
	paused       bool
	showHitboxes bool
}

// render 把快照画到终端
func render(screen tcell.Screen, v viewport, snap game.Snapshot, opts renderOptions) {
	screen.Clear()

	// 从外到内绘制，靶心在最上层
	for i := len(snap.Zones) - 1; i >= 0; i-- {
		z := snap.Zones[i]
		c0, r0, c1, r1 := v.span(z.Rect)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				v.set(screen, col, row, ' ', zoneStyles[z.Kind])
			}
		}
	}

	bowGlyph, bowStyle := ')', styleBow
	switch snap.BowVisual {
	case components.VisualDrawing:
		bowGlyph = '}'
	case components.VisualLocked:
		bowGlyph, bowStyle = '|', styleLocked
	}
	bc, br0, _, br1 := v.span(components.Rect{X: snap.BowX, Y: snap.BowY, W: snap.BowWidth, H: snap.BowHeight})
	for row := br0; row <= br1; row++ {
		v.set(screen, bc, row, bowGlyph, bowStyle)
	}

	for _, p := range snap.Projectiles {
		tail, _ := v.cell(p.Visual.X, p.Visual.Y)
		hc, hr := v.cell(p.Hitbox.X, p.Hitbox.Y)
		for col := tail; col < hc; col++ {
			v.set(screen, col, hr, '-', styleArrow)
		}
		head := styleArrow
		if opts.showHitboxes {
			head = styleHitbox
		}
		v.set(screen, hc, hr, '>', head)
	}

	hud := fmt.Sprintf("SCORE %d  ARROWS %d/%d  %s  tick %d", snap.Score, snap.Ammo, snap.MaxAmmo, snap.BowState, snap.Tick)
	drawText(screen, 0, 0, hud, styleHUD)

	switch {
	case opts.paused:
		drawText(screen, 0, 1, " PAUSED - press p ", styleBanner)
	case snap.Over:
		drawText(screen, 0, 1, fmt.Sprintf(" GAME OVER  score %d  - r to restart, q to quit ", snap.Score), styleBanner)
	default:
		drawText(screen, 0, 1, "space draw/release  p pause  h hitboxes  q quit", styleDefault)
	}

	screen.Show()
}
