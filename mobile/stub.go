//go:build !mobile

// Package mobile 只在 -tags mobile 时包含 ebitenmobile 入口（见 mobile.go）
//
// 普通桌面构建下保留一个空的导出函数，使 `go build ./...` 不会因空包失败。
package mobile

// Dummy 桌面构建下的占位导出
func Dummy() {}
