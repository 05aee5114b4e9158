// Package geometry 提供聚光遮罩使用的圆形几何与目标抽象
//
// 所有距离比较都使用平方值，避免触摸热路径上的开方运算。
package geometry

import (
	"image"
	"math"
)

// Target 遮罩指向的目标
// 只暴露中心点和半径，核心逻辑从不关心目标背后的具体元素
type Target interface {
	// CenterPoint 返回目标中心（屏幕坐标）
	CenterPoint() image.Point
	// Radius 返回目标半径
	Radius() int
	// RadiusSquared 返回半径的平方，比 Radius 更快
	RadiusSquared() int
}

// 哨兵目标的字面常量
// 命中测试依赖这些值：任何屏幕上的点到哨兵中心的距离平方都远大于其半径平方
const (
	NoTargetCoord         = 1000000
	NoTargetRadius        = 10000
	NoTargetRadiusSquared = 100000000
)

type noTarget struct{}

func (noTarget) CenterPoint() image.Point { return image.Pt(NoTargetCoord, NoTargetCoord) }
func (noTarget) Radius() int              { return NoTargetRadius }
func (noTarget) RadiusSquared() int       { return NoTargetRadiusSquared }

// NoTarget 表示“没有目标”（全屏模式）
// 位于屏幕外极远处，距离比较对它总是失败
var NoTarget Target = noTarget{}

// IsNoTarget 判断目标是否为空或哨兵
func IsNoTarget(t Target) bool {
	return t == nil || t == NoTarget
}

// FixedPoint 固定位置的目标
type FixedPoint struct {
	Point image.Point
	R     int
}

// CenterPoint 返回固定中心
func (f FixedPoint) CenterPoint() image.Point { return f.Point }

// Radius 返回固定半径
func (f FixedPoint) Radius() int { return f.R }

// RadiusSquared 返回半径平方
func (f FixedPoint) RadiusSquared() int { return f.R * f.R }

// RectTarget 绑定到一个实时矩形的目标
// Bounds 每次调用都会重新求值，元素移动时目标随之移动
type RectTarget struct {
	Bounds func() image.Rectangle
}

// NewRectTarget 创建绑定到实时边界的目标
func NewRectTarget(bounds func() image.Rectangle) *RectTarget {
	return &RectTarget{Bounds: bounds}
}

// CenterPoint 返回矩形中心
func (r *RectTarget) CenterPoint() image.Point {
	return RectCenter(r.Bounds())
}

// Radius 返回外接圆半径（向下取整）
func (r *RectTarget) Radius() int {
	return int(math.Sqrt(float64(r.RadiusSquared())))
}

// RadiusSquared 返回外接圆半径平方：(w/2)² + (h/2)²
func (r *RectTarget) RadiusSquared() int {
	b := r.Bounds()
	halfW := float64(b.Dx()) * 0.5
	halfH := float64(b.Dy()) * 0.5
	return int(halfW*halfW + halfH*halfH)
}

// RectCenter 返回矩形中心点
func RectCenter(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}
