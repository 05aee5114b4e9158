package showcase

// AnimationState 展示遮罩的动画状态
//
// 一次生命周期内状态单调推进：
//
//	None → Reveal → Idle → Dismiss | TargetPressed → Done
//
// Reveal 至多出现一次，Dismiss 与 TargetPressed 二者至多出现其一，Done 为终态。
type AnimationState int

const (
	// StateNone 尚未开始揭示（排队中、延迟中或尚未调用 Show）
	StateNone AnimationState = iota
	// StateReveal 揭示动画进行中
	StateReveal
	// StateIdle 揭示完成，等待用户操作
	StateIdle
	// StateDismiss 关闭动画进行中
	StateDismiss
	// StateTargetPressed 点击目标后的扩散淡出动画进行中
	StateTargetPressed
	// StateDone 已从宿主分离，不再接受任何状态转换
	StateDone
)

// String 返回状态名称（用于日志）
func (s AnimationState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateReveal:
		return "Reveal"
	case StateIdle:
		return "Idle"
	case StateDismiss:
		return "Dismiss"
	case StateTargetPressed:
		return "TargetPressed"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// interactive 揭示中和空闲时接受点击
func (s AnimationState) interactive() bool {
	return s == StateReveal || s == StateIdle
}

// canAdvanceTo 检查状态转换是否合法
func (s AnimationState) canAdvanceTo(next AnimationState) bool {
	switch next {
	case StateReveal:
		return s == StateNone
	case StateIdle:
		return s == StateReveal
	case StateDismiss, StateTargetPressed:
		return s == StateReveal || s == StateIdle
	case StateDone:
		return s != StateDone
	default:
		return false
	}
}

// DetachReason 展示从宿主分离的原因
// 由分离操作显式给出，不依赖事后检查的标志位
type DetachReason int

const (
	// DetachDismissed 用户主动关闭（关闭动画或点击目标动画完成）
	DetachDismissed DetachReason = iota
	// DetachIncidental 与用户操作无关的移除（宿主清空、序列取消、尚未显示即撤回）
	DetachIncidental
	// DetachSkipped 单次展示已触发过，直接跳过
	DetachSkipped
)

// String 返回分离原因名称（用于日志）
func (r DetachReason) String() string {
	switch r {
	case DetachDismissed:
		return "dismissed"
	case DetachIncidental:
		return "incidental"
	case DetachSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}
