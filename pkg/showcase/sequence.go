package showcase

import (
	"log"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/storage"
)

type sequenceState int

const (
	sequenceIdle sequenceState = iota
	sequenceQueued
	sequenceRunning
	sequenceFinished
	// sequenceInterrupted 当前项被非用户操作移除，本进程内不再继续
	sequenceInterrupted
)

// Sequence 按顺序显示的一组展示
//
// 整个序列在 Displayer 中只占一个位置。设置了 ID 时为单次序列：
// 每关闭一项就持久化进度，进程重启后从上次停下的位置继续。
type Sequence struct {
	host     *Host
	id       string
	theme    *config.Theme
	Listener SequenceListener

	items   []*View
	cursor  int // 已看过的项数（items 下标），只增不减
	current *View
	state   sequenceState
}

// NewSequence 创建序列
//
// 参数：
//   - host: 宿主，不能为 nil
//   - id: 单次序列 ID，为空表示每次都完整显示
//
// 返回：
//   - error: host 为 nil 时返回 ErrNilHost
func NewSequence(host *Host, id string) (*Sequence, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	return &Sequence{host: host, id: id}, nil
}

// ID 返回序列 ID
func (s *Sequence) ID() string {
	return s.id
}

// SetConfig 设置共用外观，只作用于之后添加的项
func (s *Sequence) SetConfig(theme config.Theme) {
	s.theme = &theme
}

// AddItem 按配置创建展示并追加到序列末尾
func (s *Sequence) AddItem(cfg Config) (*View, error) {
	if s.theme != nil {
		cfg.ApplyTheme(*s.theme)
	}
	v, err := NewView(s.host, cfg)
	if err != nil {
		return nil, err
	}
	s.append(v)
	return v, nil
}

// AddView 追加已创建的展示
// 已调用过 Show 或已属于其他序列的展示会被忽略
func (s *Sequence) AddView(v *View) {
	if v == nil || v.queued || v.onDetach != nil || v.state != StateNone {
		log.Printf("[Sequence] AddView ignored: view already in use")
		return
	}
	if s.theme != nil {
		v.cfg.ApplyTheme(*s.theme)
	}
	s.append(v)
}

func (s *Sequence) append(v *View) {
	v.onDetach = s.onItemDetached
	s.items = append(s.items, v)
}

// Len 返回序列项总数
func (s *Sequence) Len() int {
	return len(s.items)
}

// Cursor 返回已看过的项数
func (s *Sequence) Cursor() int {
	return s.cursor
}

// Current 返回当前显示中的项，没有时返回 nil
func (s *Sequence) Current() *View {
	return s.current
}

// HasFired 单次序列是否已全部完成
func (s *Sequence) HasFired() bool {
	if s.id == "" {
		return false
	}
	return storage.HasFired(s.host.store, s.id)
}

// Show 请求显示序列
//
// 单次序列已完成时不做任何事；部分完成时跳过已看过的项，从中断处继续。
// 没有剩余项时不占用 Displayer。
func (s *Sequence) Show() {
	if s.state != sequenceIdle {
		return
	}

	if s.id != "" {
		status := s.host.store.Get(s.id)
		if status == storage.StatusFinished {
			log.Printf("[Sequence] %q already finished", s.id)
			return
		}
		if status > 0 {
			s.cursor = min(status, len(s.items))
			log.Printf("[Sequence] %q resuming at item %d/%d", s.id, s.cursor, len(s.items))
		}
	}

	if s.cursor >= len(s.items) {
		if s.id != "" && len(s.items) > 0 {
			storage.SetFired(s.host.store, s.id)
		}
		s.state = sequenceFinished
		return
	}

	s.state = sequenceQueued
	s.host.displayer.Enqueue(s)
}

// admit Displayer 放行后显示第一个剩余项
func (s *Sequence) admit() {
	if s.state != sequenceQueued {
		return
	}
	s.state = sequenceRunning
	s.showNext()
}

// withdraw 排队中被宿主清空：与运行中被打断一样，本进程内不再显示
func (s *Sequence) withdraw() {
	if s.state != sequenceQueued {
		return
	}
	log.Printf("[Sequence] %q withdrawn before start", s.id)
	s.state = sequenceInterrupted
	s.host.displayer.OnFinished(s)
}

func (s *Sequence) owner() *Host {
	return s.host
}

// showNext 显示下一项，没有剩余项时结束序列
func (s *Sequence) showNext() {
	if s.cursor >= len(s.items) {
		s.finish()
		return
	}
	s.current = s.items[s.cursor]
	if s.Listener.OnItemShown != nil {
		s.Listener.OnItemShown(s.current, s.cursor)
	}
	s.current.showInSequence()
}

// onItemDetached 序列项分离回调
//
// 用户关闭或因单次标记跳过的项视为已看过：推进并持久化进度，然后显示下一项。
// 非用户操作导致的分离不推进进度（该项下次重新显示），并释放 Displayer 位置。
func (s *Sequence) onItemDetached(v *View, reason DetachReason) {
	if s.state != sequenceRunning || v != s.current {
		return
	}
	s.current = nil

	if reason == DetachIncidental {
		log.Printf("[Sequence] %q interrupted at item %d", s.id, s.cursor)
		s.state = sequenceInterrupted
		s.host.displayer.OnFinished(s)
		return
	}

	position := s.cursor
	s.cursor++
	if s.id != "" {
		s.host.store.Set(s.id, s.cursor)
	}
	if s.Listener.OnItemDismissed != nil {
		s.Listener.OnItemDismissed(v, position)
	}
	s.showNext()
}

// finish 序列全部完成
func (s *Sequence) finish() {
	s.state = sequenceFinished
	s.current = nil
	if s.id != "" {
		storage.SetFired(s.host.store, s.id)
	}
	log.Printf("[Sequence] %q finished", s.id)
	if s.Listener.OnFinished != nil {
		s.Listener.OnFinished(s)
	}
	s.host.displayer.OnFinished(s)
}

// Cancel 取消序列
//
// 剩余项全部视为已看过，持久化最终进度，关闭当前显示的项，并释放 Displayer 位置。
// 用于宿主中途放弃整个流程。已结束的序列调用此方法无效果。
func (s *Sequence) Cancel() {
	if s.state == sequenceFinished || s.state == sequenceInterrupted {
		return
	}

	s.cursor = len(s.items)
	if s.id != "" {
		s.host.store.Set(s.id, s.cursor)
	}

	current := s.current
	s.current = nil
	s.state = sequenceFinished
	if current != nil {
		current.Hide()
	}

	log.Printf("[Sequence] %q cancelled", s.id)
	if s.Listener.OnFinished != nil {
		s.Listener.OnFinished(s)
	}
	s.host.displayer.OnFinished(s)
}
