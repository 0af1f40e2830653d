// Package utils 提供 ebiten 前端共用的输入与平台工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FrameInput 本帧采集到的按键边沿
// 只记录"刚按下/刚松开"，不记录持续按住
type FrameInput struct {
	DrawPressed  bool // 空格、鼠标左键或触摸刚按下
	DrawReleased bool // 空格、鼠标左键或触摸刚松开

	PausePressed        bool // P
	QuitPressed         bool // Esc
	RestartPressed      bool // R；移动端无键盘，点击屏幕即可
	HitboxTogglePressed bool // H
}

// PollFrameInput 读取 ebiten 的本帧输入
// 键盘与指针（鼠标/触摸）都映射到拉弓键
func PollFrameInput() FrameInput {
	UpdateLastTouchPosition()

	pointerPressed, _, _ := IsPointerJustPressed()
	pointerReleased, _, _ := IsPointerJustReleased()

	return FrameInput{
		DrawPressed:         inpututil.IsKeyJustPressed(ebiten.KeySpace) || pointerPressed,
		DrawReleased:        inpututil.IsKeyJustReleased(ebiten.KeySpace) || pointerReleased,
		PausePressed:        inpututil.IsKeyJustPressed(ebiten.KeyP),
		QuitPressed:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		RestartPressed:      inpututil.IsKeyJustPressed(ebiten.KeyR) || (IsMobile() && pointerPressed),
		HitboxTogglePressed: inpututil.IsKeyJustPressed(ebiten.KeyH),
	}
}

// 保存最后一次触摸位置（触摸释放时已无法读取位置）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		return true, lastTouchX, lastTouchY
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
