package showcase

import (
	"image"

	"github.com/decker502/showcase/pkg/geometry"
)

// HandlePress 处理一次按下事件（移动和抬起事件不应传入）
//
// 参数：
//   - p: 按下位置（屏幕坐标）
//
// 返回：
//   - true: 事件被遮罩消费
//   - false: 事件应继续传给遮罩下方的界面（未显示，或点中了可点击的目标）
//
// 路由规则：
//   - 显示关闭按钮时吞掉所有点击，点中按钮则关闭
//   - 无目标时任意点击关闭
//   - 点中可点击目标且未设置关闭按钮时触发目标点击
//   - 点在背景圆外时关闭，背景圆内其余位置的点击被吸收
func (v *View) HandlePress(p image.Point) bool {
	if !v.attached || v.state == StateNone || v.state == StateDone {
		return false
	}
	if !v.state.interactive() {
		// 关闭或点击动画进行中
		return true
	}

	if v.block.dismissLabel != "" {
		if p.In(v.dismissButtonRect()) {
			v.Hide()
		}
		return true
	}

	if !v.cfg.hasTarget() {
		v.startDismiss()
		return true
	}

	t := v.cfg.Target
	if v.cfg.targetTouchable() && geometry.WithinRadiusSquared(t.CenterPoint(), p, t.RadiusSquared()) {
		if v.startTargetPressed() {
			v.cfg.Listener.targetPressed(v)
		}
		return false
	}

	if !v.backgroundShape.ContainsPoint(p) {
		v.startDismiss()
	}
	return true
}

// dismissButtonRect 关闭按钮的屏幕矩形
func (v *View) dismissButtonRect() image.Rectangle {
	if v.block.dismissLabel == "" || !v.layoutValid {
		return image.Rectangle{}
	}
	return v.block.dismissRect.Add(v.layout.ContentRect.Min)
}
