package showcase

import (
	"image/color"
	"time"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/geometry"
)

// Config 单个展示的全部配置
//
// 所有字段可选，零值含义：
//   - Target 为 nil：全屏模式，内容居中
//   - 颜色为 nil：使用 config 包中的默认颜色
//   - SingleUseID 为空：每次都显示
//   - TargetTouchable 为 nil：目标可点击
//   - DismissText 为空：不显示关闭按钮，点击背景圆外关闭
type Config struct {
	Target geometry.Target

	Title       string
	Content     string
	DismissText string

	BackgroundColor        color.Color
	TitleTextColor         color.Color
	ContentTextColor       color.Color
	DismissTextColor       color.Color
	DismissBackgroundColor color.Color

	// Delay 获准显示后再等待多久开始揭示
	Delay time.Duration

	// SingleUseID 单次展示 ID，展示成功后同一 ID 不再显示
	SingleUseID string

	TargetTouchable *bool

	// RenderBeyondChrome 为 true 时布局覆盖宿主的系统栏区域
	RenderBeyondChrome bool

	Listener Listener
}

// ApplyTheme 用共用外观覆盖已设置的字段
// Theme 中为 nil 的字段保持原值
func (c *Config) ApplyTheme(theme config.Theme) {
	if theme.Delay != nil {
		c.Delay = *theme.Delay
	}
	if theme.BackgroundColor != nil {
		c.BackgroundColor = *theme.BackgroundColor
	}
	if theme.TitleTextColor != nil {
		c.TitleTextColor = *theme.TitleTextColor
	}
	if theme.ContentTextColor != nil {
		c.ContentTextColor = *theme.ContentTextColor
	}
	if theme.DismissTextColor != nil {
		c.DismissTextColor = *theme.DismissTextColor
	}
	if theme.DismissBackgroundColor != nil {
		c.DismissBackgroundColor = *theme.DismissBackgroundColor
	}
	if theme.RenderBeyondChrome != nil {
		c.RenderBeyondChrome = *theme.RenderBeyondChrome
	}
}

// withDefaults 填充默认值，返回副本
func (c Config) withDefaults() Config {
	if c.Target == nil {
		c.Target = geometry.NoTarget
	}
	if c.BackgroundColor == nil {
		c.BackgroundColor = config.BackgroundColorDefault
	}
	if c.TitleTextColor == nil {
		c.TitleTextColor = config.TitleTextColorDefault
	}
	if c.ContentTextColor == nil {
		c.ContentTextColor = config.ContentTextColorDefault
	}
	if c.DismissTextColor == nil {
		c.DismissTextColor = config.DismissTextColorDefault
	}
	if c.DismissBackgroundColor == nil {
		c.DismissBackgroundColor = config.DismissBackgroundColorDefault
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	return c
}

// hasTarget 是否绑定了真实目标
func (c Config) hasTarget() bool {
	return c.Target != nil && !geometry.IsNoTarget(c.Target)
}

// targetTouchable 目标是否可点击，默认 true
func (c Config) targetTouchable() bool {
	return c.TargetTouchable == nil || *c.TargetTouchable
}

// Bool 返回指向 b 的指针，便于设置 TargetTouchable
func Bool(b bool) *bool {
	return &b
}
