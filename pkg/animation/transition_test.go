package animation

import (
	"testing"
	"time"
)

// manualClock 手动推进的测试时钟
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestTransitionLifecycle(t *testing.T) {
	clock := newManualClock()
	var fractions []float64
	ends := 0

	tr := NewTransition(clock, 100*time.Millisecond, func(tr *Transition) {
		fractions = append(fractions, tr.Fraction())
	}).OnEnd(func() { ends++ })

	if tr.Update() {
		t.Fatal("第一帧不应完成")
	}
	if fractions[0] != 0 {
		t.Errorf("第一帧进度应为 0，实际 %v", fractions[0])
	}

	clock.Advance(40 * time.Millisecond)
	if tr.Update() {
		t.Fatal("40ms 时不应完成")
	}
	if got := tr.Remaining(); got != 60*time.Millisecond {
		t.Errorf("Remaining = %v, want 60ms", got)
	}

	clock.Advance(80 * time.Millisecond)
	if !tr.Update() {
		t.Fatal("超过时长后应完成")
	}
	if tr.Fraction() <= 1 {
		t.Errorf("超时后进度不裁剪，应大于 1，实际 %v", tr.Fraction())
	}

	// 完成后继续调用：保持完成，结束回调不重复触发
	clock.Advance(time.Second)
	if !tr.Update() || !tr.Done() {
		t.Error("完成状态应保持")
	}
	if ends != 1 {
		t.Errorf("结束回调应只触发一次，实际 %d 次", ends)
	}
}

func TestTransitionStartIsIdempotent(t *testing.T) {
	clock := newManualClock()
	tr := NewTransition(clock, 100*time.Millisecond, nil)

	tr.Start()
	clock.Advance(50 * time.Millisecond)
	tr.Start() // 不应重置起点
	tr.Update()

	if got := tr.Elapsed(); got != 50*time.Millisecond {
		t.Errorf("Elapsed = %v, want 50ms", got)
	}
}

func TestTransitionDegenerate(t *testing.T) {
	t.Run("未开始时剩余时间为0", func(t *testing.T) {
		tr := NewTransition(newManualClock(), time.Second, nil)
		if tr.Remaining() != 0 {
			t.Errorf("Remaining before start = %v, want 0", tr.Remaining())
		}
		if tr.Done() {
			t.Error("未 Update 前不应完成")
		}
	})

	for _, d := range []time.Duration{0, -time.Second} {
		t.Run("非法时长"+d.String(), func(t *testing.T) {
			ends := 0
			tr := NewTransition(newManualClock(), d, nil).OnEnd(func() { ends++ })
			if !tr.Update() {
				t.Error("非法时长应在第一帧完成")
			}
			if ends != 1 {
				t.Errorf("结束回调次数 = %d, want 1", ends)
			}
			if tr.Fraction() != 1 {
				t.Errorf("Fraction = %v, want 1", tr.Fraction())
			}
		})
	}

	t.Run("nil时钟使用系统时间", func(t *testing.T) {
		tr := NewTransition(nil, time.Hour, nil)
		if tr.Update() {
			t.Error("一小时的动画不应立即完成")
		}
	})
}

func TestNewRadius(t *testing.T) {
	clock := newManualClock()
	radius := -1
	tr := NewRadius(clock, 200*time.Millisecond, 0, 100, CurveEaseInOut, func(r int) { radius = r })

	tr.Update()
	if radius != 0 {
		t.Errorf("起始半径 = %d, want 0", radius)
	}

	clock.Advance(100 * time.Millisecond)
	tr.Update()
	if radius != 50 {
		t.Errorf("中点半径 = %d, want 50", radius)
	}

	clock.Advance(500 * time.Millisecond)
	if !tr.Update() {
		t.Fatal("应已完成")
	}
	if radius != 100 {
		t.Errorf("终点半径应被钳制为 100，实际 %d", radius)
	}
}

func TestNewAlpha(t *testing.T) {
	clock := newManualClock()
	alpha := -1.0
	tr := NewAlpha(clock, 100*time.Millisecond, 1, 0, CurveLinear, func(a float64) { alpha = a })

	clock.Advance(0)
	tr.Update()
	clock.Advance(25 * time.Millisecond)
	tr.Update()
	if alpha != 0.75 {
		t.Errorf("25ms 时透明度 = %v, want 0.75", alpha)
	}

	clock.Advance(time.Second)
	tr.Update()
	if alpha != 0 {
		t.Errorf("终点透明度 = %v, want 0", alpha)
	}
}
