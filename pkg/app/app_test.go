package app

import (
	"image"
	"log"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/showcase/pkg/components"
	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/embedded"
	"github.com/decker502/showcase/pkg/geometry"
	"github.com/decker502/showcase/pkg/showcase"
	"github.com/decker502/showcase/pkg/storage"
	"github.com/decker502/showcase/pkg/systems"
)

const demoScript = `
elements:
  - name: fab
    label: "+"
    x: 400
    y: 720
    width: 56
    height: 56
  - name: menu
    x: 16
    y: 16
    width: 48
    height: 48
showcases:
  - id: welcome
    title: Welcome
    content: Tap anywhere
sequences:
  - id: tour
    theme:
      delay: 200ms
    items:
      - target: fab
        title: Create
        content: Tap the button
        delay: 0s
      - target: menu
        content: Menu
`

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// newTestApp 使用内存存储和可控时钟创建应用（不经过 NewApp，避免关闭日志输出）
func newTestApp(t *testing.T, source string, store storage.StatusStore) (*App, *fakeClock) {
	t.Helper()
	script, err := config.ParseTutorialScript([]byte(source), "inline")
	if err != nil {
		t.Fatalf("ParseTutorialScript: %v", err)
	}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	a := &App{
		script: script,
		store:  store,
		closer: nopCloser{},
		clock:  clock,
		face:   showcase.DefaultFace(),
		clicks: make(map[string]int),
	}
	if err := a.start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return a, clock
}

func (a *App) tick(clock *fakeClock, d time.Duration) {
	clock.now = clock.now.Add(d)
	a.host.Update()
}

func TestBuildTutorial(t *testing.T) {
	a, _ := newTestApp(t, demoScript, storage.NewMemoryStore())
	tut := a.Tutorial()

	if len(tut.Views) != 1 || len(tut.Sequences) != 1 {
		t.Fatalf("views=%d sequences=%d", len(tut.Views), len(tut.Sequences))
	}
	if tut.Sequences[0].Len() != 2 || tut.Sequences[0].ID() != "tour" {
		t.Errorf("sequence = %q len %d", tut.Sequences[0].ID(), tut.Sequences[0].Len())
	}

	fab, ok := tut.Element("fab")
	if !ok {
		t.Fatal("应创建 fab 元素")
	}
	if _, ok := ecs.GetComponent[*components.ButtonComponent](a.entityManager, fab); !ok {
		t.Error("元素应带有 ButtonComponent")
	}

	// 独立展示没有目标
	if !geometry.IsNoTarget(tut.Views[0].Config().Target) {
		t.Error("未指定 target 的展示应为全屏")
	}

	// 序列项：单项 delay 覆盖序列主题
	first, firstTut := sequenceItemAt(t, a.script, 0)
	if first.Config().Delay != 0 {
		t.Errorf("item 0 delay = %v, want 0", first.Config().Delay)
	}
	fabInFirst, _ := firstTut.Element("fab")
	target, ok := first.Config().Target.(*systems.ElementTarget)
	if !ok || target.Entity() != fabInFirst {
		t.Errorf("item 0 target = %#v", first.Config().Target)
	}

	second, _ := sequenceItemAt(t, a.script, 1)
	if second.Config().Delay != 200*time.Millisecond {
		t.Errorf("item 1 delay = %v, want 200ms", second.Config().Delay)
	}
}

// sequenceItemAt 从持久化进度 index 处启动序列，返回当前项
func sequenceItemAt(t *testing.T, script *config.TutorialScript, index int) (*showcase.View, *Tutorial) {
	t.Helper()
	store := storage.NewMemoryStore()
	if index > 0 {
		store.Set("tour", index)
	}
	host := showcase.NewHost(showcase.HostOptions{Store: store})
	tut, err := BuildTutorial(host, ecs.NewEntityManager(), script, nil)
	if err != nil {
		t.Fatalf("BuildTutorial: %v", err)
	}
	seq := tut.Sequences[0]
	seq.Show()
	if seq.Current() == nil {
		t.Fatalf("序列未从第 %d 项开始", index)
	}
	return seq.Current(), tut
}

func TestAppTutorialFlow(t *testing.T) {
	store := storage.NewMemoryStore()
	a, clock := newTestApp(t, demoScript, store)

	welcome := a.Tutorial().Views[0]
	if a.displayer.Current() != welcome {
		t.Fatal("独立展示应先获得 Displayer")
	}

	// 揭示欢迎页
	a.tick(clock, 0)
	a.tick(clock, config.AnimationInTime)
	if welcome.State() != showcase.StateIdle {
		t.Fatalf("welcome state = %s, want Idle", welcome.State())
	}

	// 全屏展示：任意位置点击关闭，不会传给按钮
	a.HandlePress(image.Pt(16+10, 16+10))
	if a.Clicks("menu") != 0 {
		t.Error("遮罩显示时按钮不应收到点击")
	}
	a.tick(clock, config.AnimationHideTime)
	if welcome.State() != showcase.StateDone {
		t.Fatalf("welcome state = %s, want Done", welcome.State())
	}
	if !storage.HasFired(store, "welcome") {
		t.Error("welcome 应被标记为已显示")
	}

	// 序列第一项指向 fab
	seq := a.Tutorial().Sequences[0]
	item := seq.Current()
	if item == nil {
		t.Fatal("序列应在欢迎页关闭后开始")
	}
	a.tick(clock, 0)
	a.tick(clock, config.AnimationInTime)
	if item.State() != showcase.StateIdle {
		t.Fatalf("item state = %s, want Idle", item.State())
	}

	// 点中可点击目标：遮罩开始扩散淡出，点击传给下面的按钮
	a.HandlePress(image.Pt(428, 748))
	if item.State() != showcase.StateTargetPressed {
		t.Errorf("item state = %s, want TargetPressed", item.State())
	}
	if a.Clicks("fab") != 1 {
		t.Errorf("fab clicks = %d, want 1", a.Clicks("fab"))
	}

	a.tick(clock, config.AnimationPressedTime)
	if seq.Cursor() != 1 || store.Get("tour") != 1 {
		t.Errorf("cursor = %d, stored = %d, want 1", seq.Cursor(), store.Get("tour"))
	}
}

func TestAppRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	a, clock := newTestApp(t, demoScript, store)

	a.tick(clock, 0)
	a.tick(clock, config.AnimationInTime)
	a.HandlePress(image.Pt(1, 1))
	a.tick(clock, config.AnimationHideTime)
	if !storage.HasFired(store, "welcome") {
		t.Fatal("welcome 应已显示")
	}

	oldHost := a.Host()
	if err := a.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if a.Host() == oldHost {
		t.Error("重新开始应创建新宿主")
	}
	if len(oldHost.Views()) != 0 {
		t.Error("旧宿主上的展示应被移除")
	}
	// 单次标记已清空，新的欢迎页不会被跳过
	welcome := a.Tutorial().Views[0]
	if a.displayer.Current() != welcome || welcome.State() != showcase.StateNone {
		t.Error("新的欢迎页应获得 Displayer 并等待揭示")
	}
	a.tick(clock, 0)
	if welcome.State() != showcase.StateReveal {
		t.Errorf("welcome state = %s, want Reveal", welcome.State())
	}
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		kind    string
		wantErr bool
	}{
		{"memory", StoreMemory, false},
		{"sqlite", StoreSQLite, false},
		{"unknown", "redis", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closer, err := OpenStore(tt.kind, filepath.Join(dir, "store_test"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("OpenStore(%q) err = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer closer.Close()

			storage.SetFired(store, "x")
			if !storage.HasFired(store, "x") {
				t.Error("写入后应能读到")
			}
		})
	}
}

func TestNewAppEmbeddedScript(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})
	embedded.Init(fstest.MapFS{
		DefaultScript: {Data: []byte(demoScript)},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	a, err := NewApp(Config{Store: StoreMemory, Reset: true})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer a.Close()

	if w, h := a.Layout(1920, 1080); w != ScreenWidth || h != ScreenHeight {
		t.Errorf("Layout = %dx%d", w, h)
	}
	if len(a.Tutorial().Views) != 1 {
		t.Errorf("views = %d, want 1", len(a.Tutorial().Views))
	}
}

func TestNewAppScriptFile(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("elements:\n  - name: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewApp(Config{Store: StoreMemory, Script: path}); err == nil {
		t.Error("非法脚本应返回错误")
	}

	good := filepath.Join(t.TempDir(), "good.yaml")
	if err := os.WriteFile(good, []byte(demoScript), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewApp(Config{Store: "unknown", Script: good}); err == nil {
		t.Error("未知存储后端应返回错误")
	}
}
