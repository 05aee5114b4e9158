package showcase

import (
	"image"
	"testing"
	"time"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/storage"
)

// manualClock 手动推进的时钟
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// testEnv 测试用宿主环境（1000x2000 屏幕，内存存储）
type testEnv struct {
	t     *testing.T
	clock *manualClock
	store *storage.MemoryStore
	host  *Host
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		t:     t,
		clock: newManualClock(),
		store: storage.NewMemoryStore(),
	}
	env.host = NewHost(HostOptions{Store: env.store, Clock: env.clock})
	env.host.SetSize(1000, 2000)
	return env
}

// restart 模拟进程重启：新的宿主和调度器，保留存储
func (e *testEnv) restart() {
	e.host = NewHost(HostOptions{Store: e.store, Clock: e.clock})
	e.host.SetSize(1000, 2000)
}

func (e *testEnv) newView(cfg Config) *View {
	e.t.Helper()
	v, err := NewView(e.host, cfg)
	if err != nil {
		e.t.Fatalf("NewView: %v", err)
	}
	return v
}

// tick 推进时间后执行一帧
func (e *testEnv) tick(d time.Duration) {
	e.clock.Advance(d)
	e.host.Update()
}

// reveal 执行揭示动画直到空闲
func (e *testEnv) reveal() {
	e.tick(0)
	e.tick(config.AnimationInTime)
}

// dismissByTap 点击左上角（全屏展示任意点击关闭）并执行关闭动画
func (e *testEnv) dismissByTap() {
	e.host.HandlePress(image.Pt(1, 1))
	e.tick(config.AnimationHideTime)
}

// recorder 记录监听器回调次数
type recorder struct {
	displayed, dismissed, skipped, targetPressed int
}

func (r *recorder) listener() Listener {
	return Listener{
		OnDisplayed:     func(*View) { r.displayed++ },
		OnDismissed:     func(*View) { r.dismissed++ },
		OnSkipped:       func(*View) { r.skipped++ },
		OnTargetPressed: func(*View) { r.targetPressed++ },
	}
}

// movableTarget 位置可变的目标
type movableTarget struct {
	p image.Point
	r int
}

func (m *movableTarget) CenterPoint() image.Point { return m.p }
func (m *movableTarget) Radius() int              { return m.r }
func (m *movableTarget) RadiusSquared() int       { return m.r * m.r }
