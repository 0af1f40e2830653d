//go:build !mobile

package utils

import "os"

// mobileEmulateEnv 设为 "1" 时桌面端按移动模式运行（本地调试触摸交互）
const mobileEmulateEnv = "ARCHERY_MOBILE_EMULATE"

// IsMobile 桌面构建默认返回 false
func IsMobile() bool {
	return os.Getenv(mobileEmulateEnv) == "1"
}
