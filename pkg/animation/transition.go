package animation

import "time"

// ApplyFunc 每次 Update 时调用，负责把当前进度写入被驱动的对象
type ApplyFunc func(t *Transition)

// Transition 时间盒过渡动画
//
// 由外部的渲染循环每帧调用 Update() 轮询推进，自身不阻塞也不启动 goroutine。
// 具体驱动什么（半径、透明度）由构造时传入的 ApplyFunc 决定。
//
// 不变式：
//   - 起始时间只记录一次（首次 Start 或 Update），之后不再重置
//   - 剩余时间首次归零的那一帧，done 置为 true 并触发一次 onEnd
type Transition struct {
	clock    Clock
	duration time.Duration
	apply    ApplyFunc
	onEnd    func()

	startAt time.Time
	now     time.Time
	started bool
	done    bool
}

// NewTransition 创建过渡动画
//
// 参数：
//   - clock: 时间源，为 nil 时使用系统时间
//   - duration: 动画时长，<= 0 时第一次 Update 即完成
//   - apply: 每帧的更新回调，可为 nil
func NewTransition(clock Clock, duration time.Duration, apply ApplyFunc) *Transition {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Transition{
		clock:    clock,
		duration: duration,
		apply:    apply,
	}
}

// OnEnd 设置结束回调，返回自身便于链式调用
func (t *Transition) OnEnd(fn func()) *Transition {
	t.onEnd = fn
	return t
}

// Start 记录起始时间；重复调用无效果
func (t *Transition) Start() {
	if t.started {
		return
	}
	t.startAt = t.clock.Now()
	t.now = t.startAt
	t.started = true
}

// Update 推进动画一帧
//
// 返回：
//   - true: 动画已完成（剩余时间为 0）
func (t *Transition) Update() bool {
	if !t.started {
		t.Start()
	}
	t.now = t.clock.Now()

	if t.apply != nil {
		t.apply(t)
	}

	if !t.done && t.Remaining() == 0 {
		t.done = true
		if t.onEnd != nil {
			t.onEnd()
		}
	}
	return t.done
}

// Duration 返回动画时长
func (t *Transition) Duration() time.Duration {
	return t.duration
}

// Elapsed 返回自起始以来经过的时间（未开始时为 0）
func (t *Transition) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	return t.now.Sub(t.startAt)
}

// Remaining 返回剩余时间，最小为 0
// 未开始或时长非法时视为已经耗尽
func (t *Transition) Remaining() time.Duration {
	if !t.started || t.duration <= 0 {
		return 0
	}
	remaining := t.duration - t.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Fraction 返回已经过时间占总时长的比例
// 结果不做裁剪，可能大于 1；时长非法时返回 1
func (t *Transition) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.Elapsed()) / float64(t.duration)
}

// Done 返回动画是否已完成
func (t *Transition) Done() bool {
	return t.done
}

// NewRadius 创建驱动整数半径的过渡动画
// 剩余时间为 0 时直接写入终值，避免 Fraction 越界带来的过冲
func NewRadius(clock Clock, duration time.Duration, from, to int, curve Curve, set func(int)) *Transition {
	return NewTransition(clock, duration, func(t *Transition) {
		if t.Remaining() <= 0 {
			set(to)
			return
		}
		set(int(curve.Interpolate(float64(from), float64(to), t.Fraction())))
	})
}

// NewAlpha 创建透明度过渡动画
func NewAlpha(clock Clock, duration time.Duration, from, to float64, curve Curve, set func(float64)) *Transition {
	return NewTransition(clock, duration, func(t *Transition) {
		if t.Remaining() <= 0 {
			set(to)
			return
		}
		set(curve.Interpolate(from, to, t.Fraction()))
	})
}
