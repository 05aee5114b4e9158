package components

// UIState 界面元素的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 指针悬停
	UIHovered
	// UIClicked 刚被点击（按下后短暂保持，用于点击反馈）
	UIClicked
	// UIDisabled 禁用，不响应点击
	UIDisabled
)

// String 返回状态名称
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
