package geometry

import "image"

// CircleShape 一个有位置、有大小的圆
//
// 中心可以绑定到一个实时目标，也可以是一个固定点；
// 绑定目标优先。半径为 0 时不绘制。
type CircleShape struct {
	radius int
	target Target
	point  *image.Point
}

// NewCircleShape 创建指定半径的圆
func NewCircleShape(radius int) *CircleShape {
	s := &CircleShape{}
	s.SetRadius(radius)
	return s
}

// Radius 返回当前半径
func (s *CircleShape) Radius() int {
	return s.radius
}

// SetRadius 设置半径，负值视为 0
func (s *CircleShape) SetRadius(radius int) {
	if radius < 0 {
		radius = 0
	}
	s.radius = radius
}

// Target 返回绑定的目标（可能为 nil）
func (s *CircleShape) Target() Target {
	return s.target
}

// SetTarget 绑定中心到目标，传 nil 解除绑定
func (s *CircleShape) SetTarget(t Target) {
	s.target = t
}

// SetPoint 设置备用中心点
func (s *CircleShape) SetPoint(p image.Point) {
	s.point = &p
}

// Center 返回圆心
//
// 返回：
//   - 绑定目标时为目标中心，否则为备用点
//   - ok=false 表示两者都未设置
func (s *CircleShape) Center() (image.Point, bool) {
	if s.target != nil {
		return s.target.CenterPoint(), true
	}
	if s.point != nil {
		return *s.point, true
	}
	return image.Point{}, false
}

// Drawable 圆心已确定且半径大于 0
func (s *CircleShape) Drawable() bool {
	_, ok := s.Center()
	return ok && s.radius > 0
}

// ContainsPoint 平方距离命中测试：距离平方 <= 半径平方时命中（含边界）
// 圆心未确定时总是返回 false
func (s *CircleShape) ContainsPoint(p image.Point) bool {
	c, ok := s.Center()
	if !ok {
		return false
	}
	return WithinRadiusSquared(c, p, s.radius*s.radius)
}

// DistanceSquared 返回两点距离的平方
func DistanceSquared(a, b image.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// WithinRadiusSquared 判断 p 是否位于以 c 为圆心、半径平方为 radiusSq 的圆内（含边界）
func WithinRadiusSquared(c, p image.Point, radiusSq int) bool {
	return DistanceSquared(c, p) <= radiusSq
}
