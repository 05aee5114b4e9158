package config

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorConfig YAML 中的颜色配置
//
// 示例：
//
//	backgroundColor:
//	  hex: "#283593"
//	  alpha: 0.96
type ColorConfig struct {
	Hex   string   `yaml:"hex"`   // "#RRGGBB" 或 "#RGB"
	Alpha *float64 `yaml:"alpha"` // 不透明度 0.0 ~ 1.0，默认 1.0
}

// NRGBA 解析为非预乘颜色
func (c ColorConfig) NRGBA() (color.NRGBA, error) {
	parsed, err := colorful.Hex(c.Hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", c.Hex, err)
	}

	alpha := 1.0
	if c.Alpha != nil {
		alpha = *c.Alpha
	}
	if alpha < 0 || alpha > 1 {
		return color.NRGBA{}, fmt.Errorf("invalid alpha %v for color %q: must be between 0 and 1", alpha, c.Hex)
	}

	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}, nil
}

// SharedConfig 多个展示共用的外观配置（YAML 格式）
// 只有显式设置的字段才会覆盖展示自身的值
type SharedConfig struct {
	Delay                  *time.Duration `yaml:"delay"`
	BackgroundColor        *ColorConfig   `yaml:"backgroundColor"`
	TitleTextColor         *ColorConfig   `yaml:"titleTextColor"`
	ContentTextColor       *ColorConfig   `yaml:"contentTextColor"`
	DismissTextColor       *ColorConfig   `yaml:"dismissTextColor"`
	DismissBackgroundColor *ColorConfig   `yaml:"dismissBackgroundColor"`
	RenderBeyondChrome     *bool          `yaml:"renderBeyondChrome"`
}

// Theme 解析后的共用配置，nil 字段表示未设置
type Theme struct {
	Delay                  *time.Duration
	BackgroundColor        *color.NRGBA
	TitleTextColor         *color.NRGBA
	ContentTextColor       *color.NRGBA
	DismissTextColor       *color.NRGBA
	DismissBackgroundColor *color.NRGBA
	RenderBeyondChrome     *bool
}

// Resolve 校验并解析颜色，得到 Theme
func (c *SharedConfig) Resolve() (Theme, error) {
	var theme Theme
	if c == nil {
		return theme, nil
	}

	if c.Delay != nil {
		if *c.Delay < 0 {
			return theme, fmt.Errorf("delay cannot be negative: %v", *c.Delay)
		}
		d := *c.Delay
		theme.Delay = &d
	}
	if c.RenderBeyondChrome != nil {
		v := *c.RenderBeyondChrome
		theme.RenderBeyondChrome = &v
	}

	colors := []struct {
		name string
		src  *ColorConfig
		dst  **color.NRGBA
	}{
		{"backgroundColor", c.BackgroundColor, &theme.BackgroundColor},
		{"titleTextColor", c.TitleTextColor, &theme.TitleTextColor},
		{"contentTextColor", c.ContentTextColor, &theme.ContentTextColor},
		{"dismissTextColor", c.DismissTextColor, &theme.DismissTextColor},
		{"dismissBackgroundColor", c.DismissBackgroundColor, &theme.DismissBackgroundColor},
	}
	for _, entry := range colors {
		if entry.src == nil {
			continue
		}
		parsed, err := entry.src.NRGBA()
		if err != nil {
			return theme, fmt.Errorf("%s: %w", entry.name, err)
		}
		*entry.dst = &parsed
	}

	return theme, nil
}
