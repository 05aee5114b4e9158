package animation

import "time"

// Clock 为过渡动画提供当前时间
// 默认使用系统时间，测试中注入可手动推进的时钟以获得确定的结果
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统墙上时间
type SystemClock struct{}

// Now 返回当前系统时间
func (SystemClock) Now() time.Time { return time.Now() }
