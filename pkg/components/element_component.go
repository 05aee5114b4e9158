package components

import "image"

// ElementComponent 可被展示作为目标的界面元素
// Name 与教学脚本中 target 字段对应
type ElementComponent struct {
	Name string
}

// BoundsComponent 元素在屏幕上的矩形区域（像素）
type BoundsComponent struct {
	X, Y          int
	Width, Height int
}

// Rect 返回屏幕矩形
func (b *BoundsComponent) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}
