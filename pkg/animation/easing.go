// Package animation 提供展示层使用的时间驱动过渡动画
//
// 只包含遮罩实际用到的几种三次方缓动曲线，以及一个由回调驱动的通用过渡器 Transition。
package animation

// Easing Functions (缓动函数)
//
// 所有曲线接受进度 t ∈ [0, 1]，返回缓动后的进度。
// 参考：http://gizma.com/easing/

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（点击目标后的扩散动画使用）
// 公式：f(t) = (t-1)³ + 1
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢（揭示/隐藏圆形视口使用）
// 公式：
//
//	t < 0.5:  f(t) = (2t)³ / 2
//	t >= 0.5: f(t) = ((2t-2)³ + 2) / 2
func EaseInOutCubic(t float64) float64 {
	u := t * 2
	if u < 1 {
		return u * u * u / 2
	}
	u -= 2
	return (u*u*u + 2) / 2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InterpolateLinear 线性插值：from + (to-from)*f
func InterpolateLinear(from, to, f float64) float64 {
	return Lerp(from, to, EaseLinear(f))
}

// InterpolateEaseIn 缓入插值：from + (to-from)*f³
func InterpolateEaseIn(from, to, f float64) float64 {
	return Lerp(from, to, EaseInCubic(f))
}

// InterpolateEaseOut 缓出插值：from + (to-from)*((f-1)³+1)
func InterpolateEaseOut(from, to, f float64) float64 {
	return Lerp(from, to, EaseOutCubic(f))
}

// InterpolateEaseInOut 缓入缓出插值，在 f=0.5 处分段
func InterpolateEaseInOut(from, to, f float64) float64 {
	return Lerp(from, to, EaseInOutCubic(f))
}

// Curve 插值算法类型
type Curve int

const (
	// CurveLinear 匀速
	CurveLinear Curve = iota
	// CurveEaseIn 开始慢，结束快
	CurveEaseIn
	// CurveEaseOut 开始快，结束慢
	CurveEaseOut
	// CurveEaseInOut 两端慢，中间快
	CurveEaseInOut
)

// String 返回曲线名称（用于日志）
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEaseIn:
		return "easeIn"
	case CurveEaseOut:
		return "easeOut"
	case CurveEaseInOut:
		return "easeInOut"
	default:
		return "unknown"
	}
}

// Interpolate 按曲线类型在 from 和 to 之间插值
// f 不做裁剪：调用方需要在剩余时间为 0 时直接使用终值
func (c Curve) Interpolate(from, to, f float64) float64 {
	switch c {
	case CurveEaseIn:
		return InterpolateEaseIn(from, to, f)
	case CurveEaseOut:
		return InterpolateEaseOut(from, to, f)
	case CurveEaseInOut:
		return InterpolateEaseInOut(from, to, f)
	default:
		return InterpolateLinear(from, to, f)
	}
}
