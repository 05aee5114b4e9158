package showcase

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/utils"
)

// DefaultFace 默认字体（7x13 等宽位图字体，不依赖外部资源）
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// contentBlock 内容框测量结果，坐标相对内容框左上角
type contentBlock struct {
	titleLines   []string
	bodyLines    []string
	dismissLabel string

	titleTop    int
	bodyTop     int
	dismissRect image.Rectangle

	size image.Point
}

// measureContent 测量内容框
//
// 参数：
//   - cfg: 展示配置（标题、正文、关闭按钮文字）
//   - face: 字体
//   - screenWidth: 布局区域宽度，内容框宽度不超过 ContentMaxWidth
//
// 空的标题、正文、关闭按钮不占空间；关闭按钮文字转为大写。
func measureContent(cfg Config, face text.Face, screenWidth int) contentBlock {
	width := screenWidth - 2*config.ContentScreenMargin
	if width > config.ContentMaxWidth {
		width = config.ContentMaxWidth
	}
	textWidth := width - 2*config.ContentPadding
	if textWidth < 1 {
		textWidth = 1
		width = textWidth + 2*config.ContentPadding
	}

	var b contentBlock
	b.titleLines = utils.WrapText(cfg.Title, face, float64(textWidth))
	b.bodyLines = utils.WrapText(cfg.Content, face, float64(textWidth))
	b.dismissLabel = strings.ToUpper(cfg.DismissText)

	y := config.ContentPadding
	blocks := 0

	if len(b.titleLines) > 0 {
		b.titleTop = y
		y += len(b.titleLines) * config.ContentLineSpacing
		blocks++
	}
	if len(b.bodyLines) > 0 {
		if blocks > 0 {
			y += config.ContentBlockSpacing
		}
		b.bodyTop = y
		y += len(b.bodyLines) * config.ContentLineSpacing
		blocks++
	}
	if b.dismissLabel != "" {
		if blocks > 0 {
			y += config.ContentBlockSpacing
		}
		btnW := int(utils.MeasureTextWidth(b.dismissLabel, face)) + 2*config.DismissButtonPaddingX
		btnH := config.ContentLineSpacing + 2*config.DismissButtonPaddingY
		right := width - config.ContentPadding
		b.dismissRect = image.Rect(right-btnW, y, right, y+btnH)
		y += btnH
	}

	b.size = image.Pt(width, y+config.ContentPadding)
	return b
}
