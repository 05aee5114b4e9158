package showcase

// Listener 展示事件回调，所有字段可选
type Listener struct {
	// OnDisplayed 揭示动画完成
	OnDisplayed func(v *View)
	// OnDismissed 展示被用户关闭并已分离（包括点击目标之后）
	OnDismissed func(v *View)
	// OnSkipped 单次展示已触发过，本次被跳过
	OnSkipped func(v *View)
	// OnTargetPressed 用户点击了目标
	OnTargetPressed func(v *View)
}

func (l Listener) displayed(v *View) {
	if l.OnDisplayed != nil {
		l.OnDisplayed(v)
	}
}

func (l Listener) dismissed(v *View) {
	if l.OnDismissed != nil {
		l.OnDismissed(v)
	}
}

func (l Listener) skipped(v *View) {
	if l.OnSkipped != nil {
		l.OnSkipped(v)
	}
}

func (l Listener) targetPressed(v *View) {
	if l.OnTargetPressed != nil {
		l.OnTargetPressed(v)
	}
}

// SequenceListener 序列事件回调，所有字段可选
type SequenceListener struct {
	// OnItemShown 序列中的某一项开始显示，position 为该项在序列中的下标
	OnItemShown func(v *View, position int)
	// OnItemDismissed 序列中的某一项被关闭或跳过
	OnItemDismissed func(v *View, position int)
	// OnFinished 整个序列结束（全部看完或被取消）
	OnFinished func(s *Sequence)
}
