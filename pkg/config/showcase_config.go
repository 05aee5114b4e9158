package config

import (
	"image/color"
	"time"
)

// 展示遮罩的动画与布局常量
// 所有尺寸单位为逻辑像素

// 动画时长
const (
	// AnimationInTime 揭示动画时长（背景圆和目标圆从 0 放大）
	AnimationInTime = 500 * time.Millisecond

	// AnimationHideTime 关闭动画时长（背景圆和目标圆缩小到 0）
	AnimationHideTime = 300 * time.Millisecond

	// AnimationPressedTime 点击目标后的扩散淡出动画时长
	AnimationPressedTime = 400 * time.Millisecond
)

// 布局常量
const (
	// TargetRadiusDefault 目标圆的默认半径（揭示动画终值）
	// 同时用作内容框与目标之间的间距
	TargetRadiusDefault = 44

	// TargetPadding 背景圆包住目标圆时额外留出的边距
	TargetPadding = 24

	// TargetNearBorderDistance 目标中心距屏幕任一边缘不超过此距离时视为“靠近边缘”
	// 靠近边缘的目标直接作为背景圆圆心，否则以内容框为圆心
	TargetNearBorderDistance = 50

	// FullscreenRadiusSlack 全屏模式下背景圆半径在半对角线之外的余量
	FullscreenRadiusSlack = 10

	// TargetPressedScale 点击目标后两个圆放大的倍数
	TargetPressedScale = 1.4

	// ContentMaxWidth 内容框最大宽度
	ContentMaxWidth = 420

	// ContentPadding 内容框内边距
	ContentPadding = 16

	// ContentScreenMargin 内容框与屏幕左右边缘的最小距离
	ContentScreenMargin = 24

	// ContentLineSpacing 内容框中各行文本的行距
	ContentLineSpacing = 18

	// ContentBlockSpacing 标题、正文、关闭按钮之间的间距
	ContentBlockSpacing = 12

	// DismissButtonPaddingX 关闭按钮水平内边距
	DismissButtonPaddingX = 12

	// DismissButtonPaddingY 关闭按钮垂直内边距
	DismissButtonPaddingY = 8
)

// 默认颜色
var (
	// BackgroundColorDefault 背景圆颜色（Material 规范建议 96% 不透明度）
	BackgroundColorDefault = color.NRGBA{R: 0x28, G: 0x35, B: 0x93, A: 0xF5}

	// TitleTextColorDefault 标题文字颜色
	TitleTextColorDefault = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// ContentTextColorDefault 正文文字颜色
	ContentTextColorDefault = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xB3}

	// DismissTextColorDefault 关闭按钮文字颜色
	DismissTextColorDefault = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// DismissBackgroundColorDefault 关闭按钮背景色
	DismissBackgroundColorDefault = color.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}
)
