package showcase

import "log"

// Item 可以被 Displayer 排队显示的单元（单个展示或整个序列）
type Item interface {
	// admit 获准显示时由 Displayer 调用
	admit()
	// withdraw 排队中被宿主清空时调用，视为非用户操作导致的撤回
	withdraw()
	// owner 返回所属宿主
	owner() *Host
}

// Displayer 展示调度器
//
// 保证任意时刻至多一个展示（或序列）处于显示状态，其余按 FIFO 排队。
// 序列整体只占一个位置，而不是每一项各占一个。
// 由应用显式创建，通过 Host 注入到所有展示和序列中。
// 所有方法只应在 UI 线程调用，无需加锁。
type Displayer struct {
	current Item
	pending []Item
}

// NewDisplayer 创建展示调度器
func NewDisplayer() *Displayer {
	return &Displayer{}
}

// Enqueue 将单元加入队列
// 当前没有显示中的单元时立即放行队首。
// 已在显示或已在队列中的单元会被忽略。
func (d *Displayer) Enqueue(item Item) {
	if item == nil {
		return
	}
	if d.current == item || d.indexOf(item) >= 0 {
		log.Printf("[Displayer] Ignoring duplicate enqueue of %T", item)
		return
	}

	d.pending = append(d.pending, item)
	d.admitNext()
}

// OnFinished 通知单元已结束
//
// 参数：
//   - item: 结束的单元。若为当前显示的单元则放行下一个；
//     若仍在排队则从队列移除（显示前撤回）；否则不做任何事
func (d *Displayer) OnFinished(item Item) {
	if item == nil {
		return
	}
	if d.current == item {
		d.current = nil
		d.admitNext()
		return
	}
	if i := d.indexOf(item); i >= 0 {
		d.pending = append(d.pending[:i], d.pending[i+1:]...)
	}
}

// Current 返回当前显示中的单元，没有时返回 nil
func (d *Displayer) Current() Item {
	return d.current
}

// Pending 返回排队中单元的副本（按放行顺序）
func (d *Displayer) Pending() []Item {
	out := make([]Item, len(d.pending))
	copy(out, d.pending)
	return out
}

// Busy 是否有单元正在显示
func (d *Displayer) Busy() bool {
	return d.current != nil
}

// admitNext 当前空闲时弹出队首并放行
// admit 内可能同步调用 OnFinished（如跳过的展示），此时递归放行下一个
func (d *Displayer) admitNext() {
	if d.current != nil || len(d.pending) == 0 {
		return
	}
	next := d.pending[0]
	d.pending = d.pending[1:]
	d.current = next
	next.admit()
}

func (d *Displayer) indexOf(item Item) int {
	for i, p := range d.pending {
		if p == item {
			return i
		}
	}
	return -1
}
