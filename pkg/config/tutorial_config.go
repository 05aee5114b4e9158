package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TutorialScript 教学脚本配置
// 描述宿主界面上的元素、独立展示以及有序的展示序列
type TutorialScript struct {
	Theme     SharedConfig     `yaml:"theme"`     // 所有展示共用的外观（可选）
	Elements  []ElementConfig  `yaml:"elements"`  // 可作为目标的界面元素
	Showcases []ItemConfig     `yaml:"showcases"` // 独立展示，依次排队显示
	Sequences []SequenceConfig `yaml:"sequences"` // 展示序列
}

// ElementConfig 宿主界面上的一个元素（示例程序中的按钮）
type ElementConfig struct {
	Name   string `yaml:"name"`   // 元素名，展示通过此名称引用目标
	Label  string `yaml:"label"`  // 按钮文字，默认为大写的元素名
	X      int    `yaml:"x"`      // 左上角 X
	Y      int    `yaml:"y"`      // 左上角 Y
	Width  int    `yaml:"width"`  // 宽度
	Height int    `yaml:"height"` // 高度
}

// ItemConfig 单个展示的配置
type ItemConfig struct {
	ID              string         `yaml:"id"`              // 单次显示 ID（可选，为空表示每次都显示）
	Target          string         `yaml:"target"`          // 目标元素名（可选，为空表示全屏）
	Title           string         `yaml:"title"`           // 标题
	Content         string         `yaml:"content"`         // 正文
	DismissText     string         `yaml:"dismissText"`     // 关闭按钮文字（可选）
	TargetTouchable *bool          `yaml:"targetTouchable"` // 目标是否可点击，默认 true
	Delay           *time.Duration `yaml:"delay"`           // 准入后延迟显示（可选）
}

// SequenceConfig 展示序列配置
type SequenceConfig struct {
	ID    string        `yaml:"id"`    // 单次显示 ID（可选）
	Theme *SharedConfig `yaml:"theme"` // 覆盖脚本级外观（可选）
	Items []ItemConfig  `yaml:"items"` // 按顺序显示的展示
}

// LoadTutorialScript 从 YAML 文件加载教学脚本
//
// 参数：
//   - filepath: 脚本文件路径
//
// 返回：
//   - *TutorialScript: 解析并校验后的脚本
//   - error: 读取、解析或校验失败
func LoadTutorialScript(filepath string) (*TutorialScript, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tutorial script %s: %w", filepath, err)
	}
	return ParseTutorialScript(data, filepath)
}

// ParseTutorialScript 解析 YAML 格式的教学脚本
//
// 参数：
//   - data: YAML 内容
//   - source: 来源名称（仅用于错误信息）
func ParseTutorialScript(data []byte, source string) (*TutorialScript, error) {
	var script TutorialScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse tutorial script YAML from %s: %w", source, err)
	}

	applyScriptDefaults(&script)

	if err := validateTutorialScript(&script); err != nil {
		return nil, fmt.Errorf("invalid tutorial script in %s: %w", source, err)
	}
	return &script, nil
}

// applyScriptDefaults 为缺失的可选字段设置默认值
func applyScriptDefaults(script *TutorialScript) {
	for i := range script.Elements {
		if script.Elements[i].Label == "" {
			script.Elements[i].Label = strings.ToUpper(script.Elements[i].Name)
		}
	}
}

// validateTutorialScript 校验脚本的完整性
func validateTutorialScript(script *TutorialScript) error {
	if _, err := script.Theme.Resolve(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	elements := make(map[string]bool, len(script.Elements))
	for i, e := range script.Elements {
		if e.Name == "" {
			return fmt.Errorf("element %d: name is required", i)
		}
		if elements[e.Name] {
			return fmt.Errorf("element %d: duplicate name %q", i, e.Name)
		}
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("element %q: width and height must be positive, got %dx%d", e.Name, e.Width, e.Height)
		}
		elements[e.Name] = true
	}

	checkItem := func(where string, item ItemConfig) error {
		if item.Target != "" && !elements[item.Target] {
			return fmt.Errorf("%s: unknown target element %q", where, item.Target)
		}
		if item.Delay != nil && *item.Delay < 0 {
			return fmt.Errorf("%s: delay cannot be negative", where)
		}
		if item.Title == "" && item.Content == "" {
			return fmt.Errorf("%s: title or content is required", where)
		}
		return nil
	}

	ids := make(map[string]bool)
	checkID := func(where, id string) error {
		if id == "" {
			return nil
		}
		if ids[id] {
			return fmt.Errorf("%s: duplicate id %q", where, id)
		}
		ids[id] = true
		return nil
	}

	for i, item := range script.Showcases {
		where := fmt.Sprintf("showcase %d", i)
		if err := checkID(where, item.ID); err != nil {
			return err
		}
		if err := checkItem(where, item); err != nil {
			return err
		}
	}

	for i, seq := range script.Sequences {
		where := fmt.Sprintf("sequence %d", i)
		if err := checkID(where, seq.ID); err != nil {
			return err
		}
		if len(seq.Items) == 0 {
			return fmt.Errorf("%s: at least one item is required", where)
		}
		if _, err := seq.Theme.Resolve(); err != nil {
			return fmt.Errorf("%s theme: %w", where, err)
		}
		for j, item := range seq.Items {
			if err := checkItem(fmt.Sprintf("%s item %d", where, j), item); err != nil {
				return err
			}
		}
	}

	return nil
}

// FindElement 按名称查找元素
func (s *TutorialScript) FindElement(name string) (ElementConfig, bool) {
	for _, e := range s.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return ElementConfig{}, false
}
