package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	statusObject   = "showcase"
	statusProperty = "status"
)

// statusDocument 整张状态表序列化后的 YAML 结构
type statusDocument struct {
	Statuses map[string]int `yaml:"statuses"`
}

// GdataStore 基于 gdata 的跨平台状态表
//
// 整张表作为一个 YAML 文档保存在同一个属性下（类似 SharedPreferences 的单文件）。
// 启动时一次性读入内存，之后读操作只访问内存，每次写操作都整表落盘。
//
// gdataManager 为 nil 时进入降级模式：状态只保存在内存中。
type GdataStore struct {
	gdataManager *gdata.Manager
	statuses     map[string]int
}

// OpenGdataStore 使用应用名打开 gdata 存储
//
// 参数：
//   - appName: gdata 应用名（决定存储目录）
//
// 返回：
//   - *GdataStore: 状态表
//   - error: gdata 初始化失败（调用方可以改用 NewGdataStore(nil) 降级）
func OpenGdataStore(appName string) (*GdataStore, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage %q: %w", appName, err)
	}
	return NewGdataStore(manager), nil
}

// NewGdataStore 创建状态表并加载已保存的数据
//
// 参数：
//   - gdataManager: 可为 nil（降级模式）
func NewGdataStore(gdataManager *gdata.Manager) *GdataStore {
	s := &GdataStore{
		gdataManager: gdataManager,
		statuses:     make(map[string]int),
	}

	if err := s.load(); err != nil {
		// 损坏的数据不是致命错误，按“从未显示”处理
		log.Printf("[GdataStore] Warning: failed to load showcase status: %v (using defaults)", err)
	}
	return s
}

// load 从 gdata 读取整张状态表
func (s *GdataStore) load() error {
	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(statusObject, statusProperty) {
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(statusObject, statusProperty)
	if err != nil {
		return fmt.Errorf("failed to load status table: %w", err)
	}

	var doc statusDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal status table: %w", err)
	}

	for id, status := range doc.Statuses {
		s.statuses[id] = status
	}
	log.Printf("[GdataStore] Loaded %d showcase statuses", len(s.statuses))
	return nil
}

// save 整表写回 gdata，失败只记录日志
func (s *GdataStore) save() {
	if s.gdataManager == nil {
		return
	}

	data, err := yaml.Marshal(&statusDocument{Statuses: s.statuses})
	if err != nil {
		log.Printf("[GdataStore] Warning: failed to marshal status table: %v", err)
		return
	}
	if err := s.gdataManager.SaveObjectProp(statusObject, statusProperty, data); err != nil {
		log.Printf("[GdataStore] Warning: failed to save status table: %v", err)
	}
}

// Get 读取状态
func (s *GdataStore) Get(id string) int {
	return normalizeStatus(s.statuses[id])
}

// Set 写入状态并落盘
func (s *GdataStore) Set(id string, status int) {
	if current, ok := s.statuses[id]; ok && current == status {
		return
	}
	s.statuses[id] = status
	s.save()
}

// Clear 清除所有状态并落盘
func (s *GdataStore) Clear() {
	s.statuses = make(map[string]int)
	s.save()
}
