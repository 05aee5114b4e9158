//go:build !android

package utils

// EnsureStorageDir 确保状态存储目录存在（非 Android 平台无需处理）
// gdata 在桌面平台会自动创建目录
func EnsureStorageDir() error {
	return nil
}

// StorageRoot 状态存储根目录；非 Android 平台由 gdata 决定，返回空字符串
func StorageRoot() string {
	return ""
}
