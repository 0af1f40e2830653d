//go:build !android

package utils

// PrepareStorage 非 Android 平台由 gdata 自行创建目录
func PrepareStorage() (string, error) {
	return "", nil
}
