package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/showcase/pkg/components"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/utils"
)

// ButtonRenderSystem 按钮渲染系统
// 纯色矩形按钮，文字居中，底色随交互状态调整
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, face text.Face) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		face:          face,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager)
	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

		vector.DrawFilledRect(screen, float32(bounds.X), float32(bounds.Y),
			float32(bounds.Width), float32(bounds.Height), StateColor(button.Color, button.State), true)

		if button.Label == "" || s.face == nil {
			continue
		}
		w := utils.MeasureTextWidth(button.Label, s.face)
		h := s.face.Metrics().HAscent + s.face.Metrics().HDescent

		op := &text.DrawOptions{}
		op.GeoM.Translate(
			float64(bounds.X)+(float64(bounds.Width)-w)/2,
			float64(bounds.Y)+(float64(bounds.Height)-h)/2,
		)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, button.Label, s.face, op)
	}
}

// StateColor 按交互状态调整按钮底色
// 悬停时提亮，点击时变暗，禁用时去饱和；在 HCL 空间调整以保持色相
func StateColor(base color.Color, state components.UIState) color.Color {
	if base == nil {
		base = color.Gray{Y: 0x80}
	}
	c, ok := colorful.MakeColor(base)
	if !ok {
		// 完全透明的颜色无法转换，原样返回
		return base
	}

	h, chroma, l := c.Hcl()
	switch state {
	case components.UIHovered:
		l = min(l+0.08, 1)
	case components.UIClicked:
		l = max(l-0.12, 0)
	case components.UIDisabled:
		chroma = 0
	default:
		return base
	}
	return colorful.Hcl(h, chroma, l).Clamped()
}
