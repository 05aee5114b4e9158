// Package storage 持久化展示遮罩的“是否已显示”状态
//
// 每个展示/序列用调用方指定的字符串 ID 作为键，值为整数：
//   - StatusNeverStarted (0): 从未显示
//   - StatusFinished (-1): 已完整显示
//   - 正整数 n: 序列中已经显示过的前 n 项
//
// 写入是“发出即忘”：失败只记录日志，不向调用方返回错误。
package storage

// 状态常量
const (
	StatusNeverStarted = 0
	StatusFinished     = -1
)

// StatusStore 持久化的 ID -> 整数状态表，必须在进程重启后仍然有效
type StatusStore interface {
	// Get 读取状态，不存在或损坏时返回 StatusNeverStarted
	Get(id string) int
	// Set 写入状态
	Set(id string, status int)
	// Clear 清除所有状态
	Clear()
}

// HasFired 检查展示/序列是否已完整显示
func HasFired(s StatusStore, id string) bool {
	return s.Get(id) == StatusFinished
}

// SetFired 标记为已完整显示
func SetFired(s StatusStore, id string) {
	s.Set(id, StatusFinished)
}

// Reset 重置为从未显示
func Reset(s StatusStore, id string) {
	s.Set(id, StatusNeverStarted)
}

// normalizeStatus 把非法值（-1 以外的负数）视为从未显示
func normalizeStatus(v int) int {
	if v < 0 && v != StatusFinished {
		return StatusNeverStarted
	}
	return v
}

// MemoryStore 内存状态表
// 用于测试，以及持久化不可用时的降级模式（进程退出后丢失）
type MemoryStore struct {
	statuses map[string]int
}

// NewMemoryStore 创建空的内存状态表
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{statuses: make(map[string]int)}
}

// Get 读取状态
func (m *MemoryStore) Get(id string) int {
	return normalizeStatus(m.statuses[id])
}

// Set 写入状态
func (m *MemoryStore) Set(id string, status int) {
	m.statuses[id] = status
}

// Clear 清除所有状态
func (m *MemoryStore) Clear() {
	m.statuses = make(map[string]int)
}
