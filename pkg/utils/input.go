// Package utils 提供通用工具函数
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PressEvent 一次按下事件
type PressEvent struct {
	// Pos 按下位置（屏幕坐标）
	Pos image.Point
	// Touch 是否来自触摸（否则为鼠标左键）
	Touch bool
}

// AppendJustPressed 收集本帧新发生的按下事件
// 多点触摸时每个新触点一个事件；鼠标左键按下追加在触摸之后
//
// 参数：
//   - events: 追加目标，可为 nil（每帧复用可避免分配）
//
// 返回：
//   - []PressEvent: 追加后的切片
func AppendJustPressed(events []PressEvent) []PressEvent {
	var touchBuf [8]ebiten.TouchID
	for _, id := range inpututil.AppendJustPressedTouchIDs(touchBuf[:0]) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, PressEvent{Pos: image.Pt(x, y), Touch: true})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, PressEvent{Pos: image.Pt(x, y)})
	}
	return events
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() image.Point {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return image.Pt(ebiten.TouchPosition(touchIDs[0]))
	}
	return image.Pt(ebiten.CursorPosition())
}
