package showcase

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/showcase/pkg/animation"
	"github.com/decker502/showcase/pkg/storage"
)

// HostOptions 宿主的可选依赖
type HostOptions struct {
	// Displayer 展示调度器，为 nil 时新建一个（同一应用中的宿主应共享同一个）
	Displayer *Displayer
	// Store 状态存储，为 nil 时使用内存存储（不跨进程保存）
	Store storage.StatusStore
	// Clock 时间源，为 nil 时使用系统时间
	Clock animation.Clock
	// Face 文本字体，为 nil 时使用 DefaultFace
	Face text.Face
}

// Host 展示的渲染宿主
//
// 宿主游戏在 Update 中调用 Host.Update 和 Host.HandlePress，
// 在 Draw 中调用 Host.Draw。单线程使用，无需加锁。
type Host struct {
	displayer *Displayer
	store     storage.StatusStore
	clock     animation.Clock
	face      text.Face

	size         image.Point
	chromeRight  int
	chromeBottom int

	views []*View
}

// NewHost 创建宿主
func NewHost(opts HostOptions) *Host {
	h := &Host{
		displayer: opts.Displayer,
		store:     opts.Store,
		clock:     opts.Clock,
		face:      opts.Face,
	}
	if h.displayer == nil {
		h.displayer = NewDisplayer()
	}
	if h.store == nil {
		log.Printf("[Host] No status store provided, single-use state will not persist")
		h.store = storage.NewMemoryStore()
	}
	if h.clock == nil {
		h.clock = animation.SystemClock{}
	}
	if h.face == nil {
		h.face = DefaultFace()
	}
	return h
}

// Displayer 返回宿主使用的展示调度器
func (h *Host) Displayer() *Displayer {
	return h.displayer
}

// Store 返回宿主使用的状态存储
func (h *Host) Store() storage.StatusStore {
	return h.store
}

// SetSize 设置宿主表面尺寸（通常为 ebiten Layout 返回的逻辑尺寸）
func (h *Host) SetSize(width, height int) {
	h.size = image.Pt(width, height)
}

// Size 返回宿主表面尺寸
func (h *Host) Size() image.Point {
	return h.size
}

// SetChromeInsets 设置系统栏占用的右侧和底部宽度
// 未开启 RenderBeyondChrome 的展示布局时会扣除这部分区域
func (h *Host) SetChromeInsets(right, bottom int) {
	h.chromeRight = max(right, 0)
	h.chromeBottom = max(bottom, 0)
}

// layoutSize 展示可用的布局区域
func (h *Host) layoutSize(beyondChrome bool) image.Point {
	if beyondChrome {
		return h.size
	}
	return image.Pt(h.size.X-h.chromeRight, h.size.Y-h.chromeBottom)
}

// Active 是否有展示挂在宿主上（包括等待延迟的展示）
func (h *Host) Active() bool {
	return len(h.views) > 0
}

// Views 返回挂在宿主上的展示副本
func (h *Host) Views() []*View {
	out := make([]*View, len(h.views))
	copy(out, h.views)
	return out
}

// Update 推进所有展示一帧
// 先完成所有展示的几何与动画更新，再统一处理状态结束（分离、通知调度器）
func (h *Host) Update() {
	views := h.Views()
	for _, v := range views {
		v.update()
	}
	for _, v := range views {
		v.completeTick()
	}
}

// Draw 绘制所有展示
func (h *Host) Draw(screen *ebiten.Image) {
	for _, v := range h.views {
		v.draw(screen)
	}
}

// HandlePress 将按下事件交给最上层的可见展示
//
// 返回：
//   - true: 事件已被消费，宿主界面不应再处理
func (h *Host) HandlePress(p image.Point) bool {
	for i := len(h.views) - 1; i >= 0; i-- {
		v := h.views[i]
		if v.state == StateNone {
			continue
		}
		return v.HandlePress(p)
	}
	return false
}

// RemoveAll 移除宿主上的所有展示，包括仍在 Displayer 中排队的展示和序列
// 视为非用户操作导致的分离：已写入的单次标记会被回滚
//
// 先撤回排队项，再分离已挂载的展示；分离当前项会放行下一个排队项，
// 因此重复直到宿主和队列中都不再有属于该宿主的单元。
func (h *Host) RemoveAll() {
	for {
		withdrawn := 0
		for _, item := range h.displayer.Pending() {
			if item.owner() == h {
				item.withdraw()
				withdrawn++
			}
		}

		views := h.Views()
		for _, v := range views {
			v.detach(DetachIncidental)
		}

		if withdrawn == 0 && len(views) == 0 {
			return
		}
	}
}

// attach 挂载展示
func (h *Host) attach(v *View) {
	if v.attached {
		return
	}
	v.attached = true
	h.views = append(h.views, v)
}

// detach 卸载展示
func (h *Host) detach(v *View) {
	if !v.attached {
		return
	}
	v.attached = false
	for i, existing := range h.views {
		if existing == v {
			h.views = append(h.views[:i], h.views[i+1:]...)
			return
		}
	}
}
