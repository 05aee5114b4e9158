package showcase

import (
	"image"
	"testing"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/storage"
)

// newTestSequence 创建包含若干全屏项的序列
func newTestSequence(t *testing.T, env *testEnv, id string, contents ...string) *Sequence {
	t.Helper()
	seq, err := NewSequence(env.host, id)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	for _, c := range contents {
		if _, err := seq.AddItem(Config{Content: c}); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}
	return seq
}

func currentContent(seq *Sequence) string {
	if seq.Current() == nil {
		return ""
	}
	return seq.Current().Config().Content
}

func TestSequenceShowsItemsInOrder(t *testing.T) {
	env := newTestEnv(t)
	seq := newTestSequence(t, env, "tour", "A", "B", "C")

	var shown, dismissed []int
	finished := 0
	seq.Listener = SequenceListener{
		OnItemShown:     func(_ *View, pos int) { shown = append(shown, pos) },
		OnItemDismissed: func(_ *View, pos int) { dismissed = append(dismissed, pos) },
		OnFinished:      func(*Sequence) { finished++ },
	}

	seq.Show()
	if env.host.Displayer().Current() != seq {
		t.Fatal("序列应作为一个单元放行")
	}

	for i, want := range []string{"A", "B", "C"} {
		if got := currentContent(seq); got != want {
			t.Fatalf("第 %d 项 = %q, want %q", i, got, want)
		}
		env.reveal()
		env.dismissByTap()
		if i < 2 {
			if got := env.store.Get("tour"); got != i+1 {
				t.Errorf("关闭第 %d 项后进度 = %d, want %d", i, got, i+1)
			}
		}
	}

	if !seq.HasFired() {
		t.Error("全部关闭后序列应标记为完成")
	}
	if env.store.Get("tour") != storage.StatusFinished {
		t.Errorf("完成后状态 = %d, want -1", env.store.Get("tour"))
	}
	if env.host.Displayer().Busy() {
		t.Error("序列结束后应释放调度器")
	}
	if len(shown) != 3 || len(dismissed) != 3 || finished != 1 {
		t.Errorf("shown=%v dismissed=%v finished=%d", shown, dismissed, finished)
	}

	// 已完成的单次序列再次 Show 无效果
	again := newTestSequence(t, env, "tour", "A", "B", "C")
	again.Show()
	if env.host.Displayer().Busy() || again.Current() != nil {
		t.Error("已完成的序列不应再次显示")
	}
}

// TestSequenceResume 关闭第一项后进程重启，新的序列实例从第二项继续
func TestSequenceResume(t *testing.T) {
	env := newTestEnv(t)
	seq := newTestSequence(t, env, "tour", "A", "B", "C")
	seq.Show()
	env.reveal()
	env.dismissByTap()

	if got := env.store.Get("tour"); got != 1 {
		t.Fatalf("进度 = %d, want 1", got)
	}

	// 第二项开始揭示前进程重启
	env.restart()
	resumed := newTestSequence(t, env, "tour", "A", "B", "C")
	resumed.Show()

	if got := currentContent(resumed); got != "B" {
		t.Fatalf("恢复后当前项 = %q, want B", got)
	}
	if resumed.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", resumed.Cursor())
	}
	if resumed.items[0].State() != StateNone {
		t.Error("已看过的 A 不应再显示")
	}

	env.reveal()
	env.dismissByTap()
	env.reveal()
	env.dismissByTap()
	if !resumed.HasFired() {
		t.Error("剩余两项关闭后序列应完成")
	}
}

func TestSequenceWithoutIDDoesNotPersist(t *testing.T) {
	env := newTestEnv(t)
	seq := newTestSequence(t, env, "", "A", "B")
	seq.Show()
	env.reveal()
	env.dismissByTap()

	if got := env.store.Get(""); got != 0 {
		t.Errorf("无 ID 序列不应写入存储，got %d", got)
	}
	if seq.Cursor() != 1 || currentContent(seq) != "B" {
		t.Errorf("cursor=%d current=%q", seq.Cursor(), currentContent(seq))
	}
}

func TestSequenceOccupiesSingleSlot(t *testing.T) {
	env := newTestEnv(t)
	seq := newTestSequence(t, env, "tour", "A", "B")
	standalone := env.newView(Config{Content: "standalone"})

	seq.Show()
	standalone.Show()

	env.reveal()
	env.dismissByTap()
	if env.host.Displayer().Current() != seq {
		t.Fatal("序列项之间不应放行其他单元")
	}
	if standalone.State() != StateNone {
		t.Fatal("独立展示应等待整个序列结束")
	}

	env.reveal()
	env.dismissByTap()
	if env.host.Displayer().Current() != standalone {
		t.Error("序列结束后应放行排队的独立展示")
	}
}

func TestSequenceIncidentalTeardown(t *testing.T) {
	env := newTestEnv(t)
	seq := newTestSequence(t, env, "tour", "A", "B", "C")
	seq.Show()
	env.reveal()
	env.dismissByTap()

	// 第二项揭示中被宿主移除
	env.tick(0)
	env.host.RemoveAll()

	if got := env.store.Get("tour"); got != 1 {
		t.Errorf("非用户移除不应推进进度，got %d", got)
	}
	if env.host.Displayer().Busy() {
		t.Error("被打断的序列应释放调度器")
	}

	// 重启后从被打断的那一项重新开始
	env.restart()
	resumed := newTestSequence(t, env, "tour", "A", "B", "C")
	resumed.Show()
	if got := currentContent(resumed); got != "B" {
		t.Errorf("恢复后当前项 = %q, want B", got)
	}
}

func TestSequenceCancel(t *testing.T) {
	env := newTestEnv(t)
	seq := newTestSequence(t, env, "tour", "A", "B", "C")
	waiting := env.newView(Config{Content: "after"})
	finished := 0
	seq.Listener.OnFinished = func(*Sequence) { finished++ }

	seq.Show()
	waiting.Show()
	env.reveal()
	current := seq.Current()

	seq.Cancel()
	if got := env.store.Get("tour"); got != 3 {
		t.Errorf("取消后进度 = %d, want 3", got)
	}
	if current.State() != StateDismiss {
		t.Errorf("取消时当前项应进入关闭动画，state = %s", current.State())
	}
	if env.host.Displayer().Current() != waiting {
		t.Error("取消后应放行下一个单元")
	}
	if finished != 1 {
		t.Errorf("OnFinished = %d, want 1", finished)
	}

	// 当前项关闭动画结束不会继续序列
	env.tick(config.AnimationHideTime)
	if seq.Current() != nil || seq.items[1].State() != StateNone {
		t.Error("取消后不应显示后续项")
	}

	seq.Cancel()
	if finished != 1 {
		t.Error("重复取消无效果")
	}

	// 进度已覆盖全部项，再次显示时直接标记完成
	env.restart()
	again := newTestSequence(t, env, "tour", "A", "B", "C")
	again.Show()
	if env.host.Displayer().Busy() || !again.HasFired() {
		t.Error("取消后的序列不应再显示")
	}
}

func TestSequenceCancelBeforeAdmission(t *testing.T) {
	env := newTestEnv(t)
	blocker := env.newView(Config{Content: "blocker"})
	blocker.Show()

	seq := newTestSequence(t, env, "tour", "A")
	seq.Show()
	if len(env.host.Displayer().Pending()) != 1 {
		t.Fatal("序列应排队")
	}
	seq.Cancel()
	if len(env.host.Displayer().Pending()) != 0 {
		t.Error("取消应把序列移出队列")
	}
	if env.host.Displayer().Current() != blocker {
		t.Error("当前展示不受影响")
	}
}

func TestSequenceSkipsFiredItem(t *testing.T) {
	env := newTestEnv(t)
	SetFired(env.store, "item-b")

	seq, _ := NewSequence(env.host, "tour")
	rec := &recorder{}
	seq.AddItem(Config{Content: "A"})
	seq.AddItem(Config{Content: "B", SingleUseID: "item-b", Listener: rec.listener()})
	seq.AddItem(Config{Content: "C"})

	seq.Show()
	env.reveal()
	env.dismissByTap()

	if got := currentContent(seq); got != "C" {
		t.Errorf("已触发的 B 应被跳过，当前项 = %q", got)
	}
	if rec.skipped != 1 {
		t.Errorf("skipped = %d, want 1", rec.skipped)
	}
	if got := env.store.Get("tour"); got != 2 {
		t.Errorf("跳过的项计入进度，got %d, want 2", got)
	}
}

func TestSequenceSetConfig(t *testing.T) {
	env := newTestEnv(t)
	seq, _ := NewSequence(env.host, "")

	before, _ := seq.AddItem(Config{Content: "A"})
	beyond := true
	seq.SetConfig(config.Theme{BackgroundColor: &config.DismissBackgroundColorDefault, RenderBeyondChrome: &beyond})
	after, _ := seq.AddItem(Config{Content: "B"})

	if before.Config().BackgroundColor != config.BackgroundColorDefault {
		t.Error("SetConfig 不应影响之前添加的项")
	}
	if after.Config().BackgroundColor != config.DismissBackgroundColorDefault || !after.Config().RenderBeyondChrome {
		t.Error("SetConfig 应作用于之后添加的项")
	}

	manual := env.newView(Config{Content: "C"})
	seq.AddView(manual)
	if !manual.Config().RenderBeyondChrome || seq.Len() != 3 {
		t.Error("AddView 应应用共用外观并追加")
	}

	// 序列中的项不能单独显示
	manual.Show()
	if env.host.Displayer().Busy() {
		t.Error("序列项单独 Show 应被忽略")
	}
}

func TestSequenceEmpty(t *testing.T) {
	env := newTestEnv(t)
	seq := newTestSequence(t, env, "empty")
	seq.Show()
	if env.host.Displayer().Busy() {
		t.Error("空序列不应占用调度器")
	}
	if seq.HasFired() {
		t.Error("空序列不应写入完成标记")
	}
}

func TestSequenceTargetPressedAdvances(t *testing.T) {
	env := newTestEnv(t)
	seq, _ := NewSequence(env.host, "tour")
	target := &movableTarget{p: image.Pt(500, 300), r: 30}
	seq.AddItem(Config{Target: target, Content: "A"})
	seq.AddItem(Config{Content: "B"})

	seq.Show()
	env.reveal()
	if env.host.HandlePress(target.p) {
		t.Error("点中目标应返回未消费")
	}
	env.tick(config.AnimationPressedTime)
	if got := currentContent(seq); got != "B" {
		t.Errorf("点击目标后应进入下一项，当前 %q", got)
	}
}
