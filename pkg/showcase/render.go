package showcase

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/showcase/pkg/config"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource 返回用于填充三角形的纯白源图
// 取 3x3 图片中间的 1 像素，避免边缘采样
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// draw 绘制展示
//
// 绘制流程：
//  1. 清空离屏缓冲
//  2. 用背景色填充背景圆
//  3. 用清除混合模式擦除目标圆，露出下方界面
//  4. 把内容层按背景圆裁剪后绘制到缓冲
//  5. 以当前不透明度把缓冲绘制到屏幕
func (v *View) draw(screen *ebiten.Image) {
	if v.state == StateNone || v.state == StateDone {
		return
	}
	if !v.backgroundShape.Drawable() {
		return
	}
	center, _ := v.backgroundShape.Center()
	radius := float32(v.backgroundShape.Radius())

	bounds := screen.Bounds()
	v.ensureImages(bounds.Dx(), bounds.Dy())
	v.buffer.Clear()
	v.contentLayer.Clear()

	fillCircle(v.buffer, center, radius, v.cfg.BackgroundColor, ebiten.BlendSourceOver)

	if v.targetShape.Drawable() {
		targetCenter, _ := v.targetShape.Center()
		fillCircle(v.buffer, targetCenter, float32(v.targetShape.Radius()), color.White, ebiten.BlendClear)
	}

	v.drawContent(v.contentLayer)
	clipCircle(v.buffer, v.contentLayer, center, radius)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(v.alpha))
	screen.DrawImage(v.buffer, op)
}

// drawContent 绘制标题、正文和关闭按钮
func (v *View) drawContent(dst *ebiten.Image) {
	if !v.layoutValid {
		return
	}
	origin := v.layout.ContentRect.Min
	x := float64(origin.X + config.ContentPadding)

	drawLines(dst, v.block.titleLines, v.host.face, x, float64(origin.Y+v.block.titleTop), v.cfg.TitleTextColor)
	drawLines(dst, v.block.bodyLines, v.host.face, x, float64(origin.Y+v.block.bodyTop), v.cfg.ContentTextColor)

	if v.block.dismissLabel == "" {
		return
	}
	btn := v.dismissButtonRect()
	vector.DrawFilledRect(dst, float32(btn.Min.X), float32(btn.Min.Y),
		float32(btn.Dx()), float32(btn.Dy()), v.cfg.DismissBackgroundColor, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(btn.Min.X+config.DismissButtonPaddingX), float64(btn.Min.Y+config.DismissButtonPaddingY))
	op.ColorScale.ScaleWithColor(v.cfg.DismissTextColor)
	text.Draw(dst, v.block.dismissLabel, v.host.face, op)
}

func drawLines(dst *ebiten.Image, lines []string, face text.Face, x, y float64, clr color.Color) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i*config.ContentLineSpacing))
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, line, face, op)
	}
}

// ensureImages 按屏幕尺寸准备离屏缓冲和内容层，尺寸变化时重建
func (v *View) ensureImages(width, height int) {
	if v.buffer != nil {
		b := v.buffer.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		v.releaseImages()
	}
	v.buffer = ebiten.NewImage(width, height)
	v.contentLayer = ebiten.NewImage(width, height)
}

// releaseImages 释放离屏图片
func (v *View) releaseImages() {
	if v.buffer != nil {
		v.buffer.Deallocate()
		v.buffer = nil
	}
	if v.contentLayer != nil {
		v.contentLayer.Deallocate()
		v.contentLayer = nil
	}
}

// circleTriangles 生成圆形的填充三角形
func circleTriangles(center image.Point, radius float32) ([]ebiten.Vertex, []uint16) {
	var path vector.Path
	path.Arc(float32(center.X), float32(center.Y), radius, 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	return path.AppendVerticesAndIndicesForFilling(nil, nil)
}

// fillCircle 以指定颜色和混合模式填充圆
func fillCircle(dst *ebiten.Image, center image.Point, radius float32, clr color.Color, blend ebiten.Blend) {
	if radius <= 0 {
		return
	}
	vs, is := circleTriangles(center, radius)

	// 顶点颜色按非预乘处理（ColorScaleModeStraightAlpha）
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(n.R) / 0xff
		vs[i].ColorG = float32(n.G) / 0xff
		vs[i].ColorB = float32(n.B) / 0xff
		vs[i].ColorA = float32(n.A) / 0xff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.Blend = blend
	dst.DrawTriangles(vs, is, solidSource(), op)
}

// clipCircle 把 src 中位于圆内的部分绘制到 dst 的相同位置
func clipCircle(dst, src *ebiten.Image, center image.Point, radius float32) {
	if radius <= 0 {
		return
	}
	vs, is := circleTriangles(center, radius)
	for i := range vs {
		vs[i].SrcX = vs[i].DstX
		vs[i].SrcY = vs[i].DstY
		vs[i].ColorR = 1
		vs[i].ColorG = 1
		vs[i].ColorB = 1
		vs[i].ColorA = 1
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.Address = ebiten.AddressClampToZero
	dst.DrawTriangles(vs, is, src, op)
}
