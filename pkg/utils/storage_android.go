//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PrepareStorage 在打开 gdata 之前创建 Android 上的设置目录
//
// gdata 在 Android 上写入 /data/data/{package}/saves，但不会自己创建该目录。
// 返回准备好的目录，供日志输出。
func PrepareStorage() (string, error) {
	pkg, err := androidPackage()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return "", fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	_ = os.Remove(probe)

	return dir, nil
}

// androidPackage 应用进程的 argv[0] 即包名
func androidPackage() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(cmdline, 0); i >= 0 {
		cmdline = cmdline[:i]
	}
	pkg := string(bytes.TrimSpace(cmdline))
	if pkg == "" {
		return "", errors.New("empty /proc/self/cmdline")
	}
	return pkg, nil
}
