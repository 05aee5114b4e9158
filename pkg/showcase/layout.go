package showcase

import (
	"image"
	"math"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/geometry"
)

// Gravity 内容框相对目标的停靠方式
type Gravity int

const (
	// GravityCenter 无目标时在屏幕中居中
	GravityCenter Gravity = iota
	// GravityTop 目标在屏幕上半部分，内容框位于目标下方
	GravityTop
	// GravityBottom 目标在屏幕下半部分，内容框位于目标上方
	GravityBottom
)

// String 返回停靠方式名称
func (g Gravity) String() string {
	switch g {
	case GravityTop:
		return "Top"
	case GravityBottom:
		return "Bottom"
	default:
		return "Center"
	}
}

// LayoutInput 布局计算的输入
type LayoutInput struct {
	// Screen 可用布局区域尺寸
	Screen image.Point
	// Target 目标，nil 或 NoTarget 表示全屏模式
	Target geometry.Target
	// ContentSize 内容框测量尺寸
	ContentSize image.Point
}

// Layout 布局计算结果
type Layout struct {
	Gravity Gravity
	// TopMargin 内容框顶部到屏幕顶部的距离（GravityTop 时有效）
	TopMargin int
	// BottomMargin 内容框底部到屏幕底部的距离（GravityBottom 时有效）
	BottomMargin int
	// ContentRect 内容框的屏幕矩形
	ContentRect image.Rectangle
	// BackgroundCenter 背景圆圆心
	BackgroundCenter image.Point
	// BackgroundRadius 背景圆半径
	BackgroundRadius int
	// CenteredOnTarget 背景圆是否以目标为圆心
	CenteredOnTarget bool
}

// ComputeLayout 计算内容框位置与背景圆
//
// 参数：
//   - in: 屏幕尺寸、目标和内容框尺寸
//
// 返回：
//   - Layout: 布局结果
//   - bool: 屏幕尺寸非法时返回 false，调用方应在下一帧重试
//
// 规则：
//  1. 目标在屏幕下半部分时内容框放在目标上方，否则放在目标下方，
//     与目标之间留出 TargetRadiusDefault；无目标时居中
//  2. 目标靠近任一屏幕边缘时背景圆以目标为圆心，否则以内容框中心为圆心
//  3. 半径取包住内容框四角和目标圆（加边距）所需的最小值；
//     全屏模式半径为半对角线加固定余量
func ComputeLayout(in LayoutInput) (Layout, bool) {
	w, h := in.Screen.X, in.Screen.Y
	if w <= 0 || h <= 0 {
		return Layout{}, false
	}

	size := in.ContentSize
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	left := (w - size.X) / 2

	var l Layout
	hasTarget := in.Target != nil && !geometry.IsNoTarget(in.Target)
	if !hasTarget {
		l.Gravity = GravityCenter
		top := (h - size.Y) / 2
		l.ContentRect = image.Rect(left, top, left+size.X, top+size.Y)
		l.BackgroundCenter = image.Pt(w/2, h/2)
		l.BackgroundRadius = int(math.Hypot(float64(w), float64(h))/2) + config.FullscreenRadiusSlack
		return l, true
	}

	t := in.Target.CenterPoint()
	if t.Y > h/2 {
		l.Gravity = GravityBottom
		l.BottomMargin = (h - t.Y) + config.TargetRadiusDefault
		bottom := h - l.BottomMargin
		l.ContentRect = image.Rect(left, bottom-size.Y, left+size.X, bottom)
	} else {
		l.Gravity = GravityTop
		l.TopMargin = t.Y + config.TargetRadiusDefault
		l.ContentRect = image.Rect(left, l.TopMargin, left+size.X, l.TopMargin+size.Y)
	}

	if IsNearBorder(t, in.Screen, config.TargetNearBorderDistance) {
		l.BackgroundCenter = t
		l.CenteredOnTarget = true
	} else {
		l.BackgroundCenter = geometry.RectCenter(l.ContentRect)
	}
	l.BackgroundRadius = EnclosingRadius(l.BackgroundCenter, l.ContentRect, t)
	return l, true
}

// IsNearBorder 目标中心到任一屏幕边缘的距离是否不超过 distance
func IsNearBorder(p image.Point, screen image.Point, distance int) bool {
	return p.X <= distance || p.X >= screen.X-distance ||
		p.Y <= distance || p.Y >= screen.Y-distance
}

// EnclosingRadius 以 center 为圆心、同时包住内容框四角和目标圆（加边距）的最小半径
func EnclosingRadius(center image.Point, content image.Rectangle, target image.Point) int {
	corners := [4]image.Point{
		content.Min,
		image.Pt(content.Max.X, content.Min.Y),
		image.Pt(content.Min.X, content.Max.Y),
		content.Max,
	}

	radius := 0
	for _, c := range corners {
		if d := ceilDistance(center, c); d > radius {
			radius = d
		}
	}

	targetReach := ceilDistance(center, target) + config.TargetRadiusDefault + config.TargetPadding
	if targetReach > radius {
		radius = targetReach
	}
	return radius
}

// ceilDistance 向上取整的欧氏距离，保证 ceilDistance² >= 距离平方
func ceilDistance(a, b image.Point) int {
	dsq := geometry.DistanceSquared(a, b)
	d := int(math.Ceil(math.Sqrt(float64(dsq))))
	for d*d < dsq {
		d++
	}
	return d
}
