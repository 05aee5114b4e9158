package showcase

import (
	"errors"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/showcase/pkg/animation"
	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/geometry"
	"github.com/decker502/showcase/pkg/storage"
)

// ErrNilHost 创建展示时未提供宿主
var ErrNilHost = errors.New("showcase: host is nil")

// View 单个聚光灯展示遮罩
//
// 负责布局、动画状态机、点击路由和单次显示检查。
// 由 Host 每帧驱动，所有方法只应在 UI 线程调用。
type View struct {
	host *Host
	cfg  Config

	state    AnimationState
	queued   bool // 已调用 Show（排队中或已放行）
	admitted bool // 已获 Displayer 放行
	attached bool // 在宿主的活动列表中
	revealAt time.Time

	// firedByView 本次生命周期中由该展示写入了单次标记
	// 非用户操作导致的分离需要据此回滚
	firedByView bool

	// onDetach 序列项的分离回调；为 nil 时表示独立展示，分离后通知 Displayer
	onDetach func(v *View, reason DetachReason)

	targetShape     *geometry.CircleShape
	backgroundShape *geometry.CircleShape
	alpha           float64

	block       contentBlock
	blockWidth  int
	layout      Layout
	layoutValid bool
	lastScreen  image.Point
	lastTarget  image.Point

	targetAnim     *animation.Transition
	backgroundAnim *animation.Transition
	alphaAnim      *animation.Transition
	stateEnded     bool

	buffer       *ebiten.Image
	contentLayer *ebiten.Image
}

// NewView 创建展示
//
// 参数：
//   - host: 宿主，不能为 nil
//   - cfg: 展示配置，缺省字段使用默认值
//
// 返回：
//   - *View: 新建的展示（尚未显示，需调用 Show）
//   - error: host 为 nil 时返回 ErrNilHost
func NewView(host *Host, cfg Config) (*View, error) {
	if host == nil {
		return nil, ErrNilHost
	}

	v := &View{
		host:            host,
		cfg:             cfg.withDefaults(),
		targetShape:     geometry.NewCircleShape(0),
		backgroundShape: geometry.NewCircleShape(0),
		alpha:           1,
	}
	if v.cfg.hasTarget() {
		v.targetShape.SetTarget(v.cfg.Target)
	}
	return v, nil
}

// Config 返回展示配置（已填充默认值）
func (v *View) Config() Config {
	return v.cfg
}

// State 返回当前动画状态
func (v *View) State() AnimationState {
	return v.state
}

// Layout 返回最近一次布局结果
func (v *View) Layout() (Layout, bool) {
	return v.layout, v.layoutValid
}

// BackgroundRadius 返回背景圆当前半径
func (v *View) BackgroundRadius() int {
	return v.backgroundShape.Radius()
}

// TargetRadius 返回目标圆当前半径
func (v *View) TargetRadius() int {
	return v.targetShape.Radius()
}

// Alpha 返回当前整体不透明度
func (v *View) Alpha() float64 {
	return v.alpha
}

// Show 请求显示
//
// 单次展示已触发过时只通知 OnSkipped，不会进入揭示（已结束的同一实例再次调用也一样）；
// 否则立即写入单次标记并交给 Displayer 排队。
// 排队中或显示中重复调用、序列中的项、已结束的普通展示调用此方法均无效果。
func (v *View) Show() {
	if v.onDetach != nil {
		log.Printf("[Showcase] Show ignored: view is managed by a sequence")
		return
	}
	if v.state == StateDone {
		// 结束后再次请求：单次展示照常通知跳过
		if v.HasFired() {
			log.Printf("[Showcase] %q already fired, skipping", v.cfg.SingleUseID)
			v.cfg.Listener.skipped(v)
		}
		return
	}
	if v.queued {
		return
	}
	if !v.passSingleUseGate() {
		return
	}
	v.queued = true
	v.host.displayer.Enqueue(v)
}

// Hide 关闭展示
//
// 揭示中或空闲时进入关闭动画；尚未开始揭示时直接撤回（不计为已显示）；
// 关闭动画进行中或已结束时无效果。
func (v *View) Hide() {
	switch {
	case v.state.interactive():
		v.startDismiss()
	case v.state == StateNone && v.queued:
		v.detach(DetachIncidental)
	}
}

// HasFired 单次展示是否已经触发过；非单次展示总是返回 false
func (v *View) HasFired() bool {
	if v.cfg.SingleUseID == "" {
		return false
	}
	return storage.HasFired(v.host.store, v.cfg.SingleUseID)
}

// ResetSingleUse 清除该展示的单次标记
func (v *View) ResetSingleUse() {
	if v.cfg.SingleUseID == "" {
		return
	}
	storage.Reset(v.host.store, v.cfg.SingleUseID)
}

// ResetSingleUse 清除指定 ID 的单次或序列进度记录
func ResetSingleUse(store storage.StatusStore, id string) {
	storage.Reset(store, id)
}

// ResetAll 清除所有单次和序列进度记录
func ResetAll(store storage.StatusStore) {
	store.Clear()
}

// HasFired 指定 ID 是否已经触发过
func HasFired(store storage.StatusStore, id string) bool {
	return storage.HasFired(store, id)
}

// SetFired 将指定 ID 标记为已触发
func SetFired(store storage.StatusStore, id string) {
	storage.SetFired(store, id)
}

// passSingleUseGate 单次显示检查
// 已触发过则通知跳过并分离，返回 false
func (v *View) passSingleUseGate() bool {
	id := v.cfg.SingleUseID
	if id == "" {
		return true
	}
	if storage.HasFired(v.host.store, id) {
		log.Printf("[Showcase] %q already fired, skipping", id)
		v.cfg.Listener.skipped(v)
		v.detach(DetachSkipped)
		return false
	}
	storage.SetFired(v.host.store, id)
	v.firedByView = true
	return true
}

// admit Displayer 放行后调用：延迟结束后由宿主开始揭示
func (v *View) admit() {
	if v.state != StateNone {
		return
	}
	v.admitted = true
	v.revealAt = v.host.clock.Now().Add(v.cfg.Delay)
	v.host.attach(v)
}

// withdraw 排队中被宿主清空
func (v *View) withdraw() {
	v.detach(DetachIncidental)
}

func (v *View) owner() *Host {
	return v.host
}

// showInSequence 作为序列项显示，不经过 Displayer（序列已占用位置）
func (v *View) showInSequence() {
	if v.queued || v.state != StateNone {
		return
	}
	if !v.passSingleUseGate() {
		return
	}
	v.queued = true
	v.admit()
}

// update 每帧推进：等待延迟、刷新布局、推进动画
// 状态结束的处理留到 completeTick，保证回调在本帧几何更新之后执行
func (v *View) update() {
	switch v.state {
	case StateDone:
		return
	case StateNone:
		if !v.admitted || v.host.clock.Now().Before(v.revealAt) {
			return
		}
		if !v.relayout() {
			return
		}
		v.startReveal()
	default:
		v.relayout()
	}

	if v.targetAnim != nil {
		v.targetAnim.Update()
	}
	if v.backgroundAnim != nil {
		v.backgroundAnim.Update()
	}
	if v.alphaAnim != nil {
		v.alphaAnim.Update()
	}
}

// completeTick 处理本帧结束的动画状态
func (v *View) completeTick() {
	if !v.stateEnded {
		return
	}
	v.stateEnded = false

	switch v.state {
	case StateReveal:
		v.clearAnimations()
		v.setState(StateIdle)
		v.backgroundShape.SetRadius(v.layout.BackgroundRadius)
		if v.cfg.hasTarget() {
			v.targetShape.SetRadius(config.TargetRadiusDefault)
		}
		v.cfg.Listener.displayed(v)
	case StateDismiss, StateTargetPressed:
		v.detach(DetachDismissed)
	}
}

// relayout 仅在布局区域或目标位置变化时重新计算布局
// 返回 false 表示布局区域或目标几何尚不可用
func (v *View) relayout() bool {
	screen := v.host.layoutSize(v.cfg.RenderBeyondChrome)
	if screen.X <= 0 || screen.Y <= 0 {
		return false
	}

	var targetPoint image.Point
	if v.cfg.hasTarget() {
		// 半径为 0 的目标几何尚不可用（如元素已被移除），保留上一次布局
		if v.cfg.Target.RadiusSquared() <= 0 {
			return false
		}
		targetPoint = v.cfg.Target.CenterPoint()
	}
	if v.layoutValid && screen == v.lastScreen && targetPoint == v.lastTarget {
		return true
	}

	if screen.X != v.blockWidth {
		v.block = measureContent(v.cfg, v.host.face, screen.X)
		v.blockWidth = screen.X
	}

	l, ok := ComputeLayout(LayoutInput{
		Screen:      screen,
		Target:      v.cfg.Target,
		ContentSize: v.block.size,
	})
	if !ok {
		return false
	}
	v.applyLayout(l)
	v.lastScreen = screen
	v.lastTarget = targetPoint
	return true
}

// applyLayout 写入布局结果，值未变化的属性不重复写入
func (v *View) applyLayout(l Layout) {
	if !v.layoutValid || l.BackgroundCenter != v.layout.BackgroundCenter {
		v.backgroundShape.SetPoint(l.BackgroundCenter)
	}
	if v.state == StateIdle && l.BackgroundRadius != v.backgroundShape.Radius() {
		v.backgroundShape.SetRadius(l.BackgroundRadius)
	}
	if v.layoutValid && l != v.layout {
		log.Printf("[Showcase] Layout changed: gravity=%s radius=%d", l.Gravity, l.BackgroundRadius)
	}
	v.layout = l
	v.layoutValid = true
}

// startReveal 进入揭示状态：背景圆从 0 放大到布局半径，目标圆从 0 放大到默认半径
// 揭示期间布局半径若有变化，动画跟随最新值
func (v *View) startReveal() {
	if !v.setState(StateReveal) {
		return
	}
	clock := v.host.clock

	v.backgroundAnim = animation.NewTransition(clock, config.AnimationInTime, func(t *animation.Transition) {
		if t.Remaining() <= 0 {
			v.backgroundShape.SetRadius(v.layout.BackgroundRadius)
			return
		}
		r := animation.InterpolateEaseInOut(0, float64(v.layout.BackgroundRadius), t.Fraction())
		v.backgroundShape.SetRadius(int(r))
	}).OnEnd(v.endState)

	if v.cfg.hasTarget() {
		v.targetAnim = animation.NewRadius(clock, config.AnimationInTime,
			0, config.TargetRadiusDefault, animation.CurveEaseInOut, v.targetShape.SetRadius)
	}
	v.alpha = 1
	v.startAnimations()
	log.Printf("[Showcase] Reveal started (target=%v)", v.cfg.hasTarget())
}

// startDismiss 进入关闭状态：两个圆缩小到 0
func (v *View) startDismiss() bool {
	if !v.setState(StateDismiss) {
		return false
	}
	clock := v.host.clock
	v.clearAnimations()

	v.backgroundAnim = animation.NewRadius(clock, config.AnimationHideTime,
		v.backgroundShape.Radius(), 0, animation.CurveEaseInOut, v.backgroundShape.SetRadius).OnEnd(v.endState)
	if v.cfg.hasTarget() {
		v.targetAnim = animation.NewRadius(clock, config.AnimationHideTime,
			v.targetShape.Radius(), 0, animation.CurveEaseInOut, v.targetShape.SetRadius)
	}
	v.startAnimations()
	return true
}

// startTargetPressed 进入目标点击状态：两个圆放大到 1.4 倍并淡出
func (v *View) startTargetPressed() bool {
	if !v.setState(StateTargetPressed) {
		return false
	}
	clock := v.host.clock
	v.clearAnimations()

	bgFrom := v.backgroundShape.Radius()
	targetFrom := v.targetShape.Radius()
	v.backgroundAnim = animation.NewRadius(clock, config.AnimationPressedTime,
		bgFrom, scaleRadius(bgFrom), animation.CurveEaseOut, v.backgroundShape.SetRadius).OnEnd(v.endState)
	v.targetAnim = animation.NewRadius(clock, config.AnimationPressedTime,
		targetFrom, scaleRadius(targetFrom), animation.CurveEaseOut, v.targetShape.SetRadius)
	v.alphaAnim = animation.NewAlpha(clock, config.AnimationPressedTime,
		1, 0, animation.CurveEaseOut, func(a float64) { v.alpha = a })
	v.startAnimations()
	return true
}

func scaleRadius(r int) int {
	return int(float64(r) * config.TargetPressedScale)
}

// endState 主动画（背景圆）结束回调；同一状态的动画时长相同，在同一帧结束
func (v *View) endState() {
	v.stateEnded = true
}

// startAnimations 以状态进入的时刻作为动画起点
func (v *View) startAnimations() {
	for _, t := range []*animation.Transition{v.targetAnim, v.backgroundAnim, v.alphaAnim} {
		if t != nil {
			t.Start()
		}
	}
}

func (v *View) clearAnimations() {
	v.targetAnim = nil
	v.backgroundAnim = nil
	v.alphaAnim = nil
	v.stateEnded = false
}

// setState 状态转换，非法转换返回 false 且不改变状态
func (v *View) setState(next AnimationState) bool {
	if !v.state.canAdvanceTo(next) {
		return false
	}
	v.state = next
	return true
}

// detach 从宿主分离并进入终态
//
// 参数：
//   - reason: 分离原因。非用户操作导致的分离会回滚本次写入的单次标记，
//     使该展示在下次有机会重新显示
func (v *View) detach(reason DetachReason) {
	if !v.setState(StateDone) {
		return
	}
	v.clearAnimations()
	v.host.detach(v)
	v.releaseImages()

	if reason == DetachIncidental && v.firedByView {
		storage.Reset(v.host.store, v.cfg.SingleUseID)
		v.firedByView = false
		log.Printf("[Showcase] %q torn down before completion, single-use flag rolled back", v.cfg.SingleUseID)
	}
	if reason == DetachDismissed {
		v.cfg.Listener.dismissed(v)
	}

	if v.onDetach != nil {
		v.onDetach(v, reason)
		return
	}
	v.host.displayer.OnFinished(v)
}
