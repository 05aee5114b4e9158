package components

import (
	"image/color"
	"time"
)

// ButtonComponent 示例界面上的按钮
//
// 纯数据组件：点击判定与状态切换由 systems.ButtonSystem 负责，
// 绘制由 systems.ButtonRenderSystem 负责。
type ButtonComponent struct {
	// Label 按钮文字
	Label string
	// Color 按钮底色
	Color color.Color

	// State 当前交互状态
	State UIState
	// ClickedUntil UIClicked 状态保持到该时刻
	ClickedUntil time.Time
	// Clicks 累计点击次数
	Clicks int

	// OnClick 点击回调（可选）
	OnClick func()
}
