//go:build mobile

package utils

// IsMobile ebitenmobile 构建（-tags mobile）始终处于移动模式：
// 触摸代替键盘，点击屏幕重新开始
func IsMobile() bool {
	return true
}
