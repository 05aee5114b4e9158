//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 设置环境变量 SHOWCASE_MOBILE_EMULATE=1 可在桌面模拟移动端（系统栏占位等）
func IsMobile() bool {
	return os.Getenv("SHOWCASE_MOBILE_EMULATE") == "1"
}
