package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/entities"
	"github.com/decker502/showcase/pkg/geometry"
	"github.com/decker502/showcase/pkg/showcase"
	"github.com/decker502/showcase/pkg/systems"
)

// ElementColor 示例元素按钮的底色
var ElementColor = color.NRGBA{R: 0x00, G: 0x96, B: 0x88, A: 0xFF}

// Tutorial 由教学脚本构建出的界面元素、独立展示和展示序列
type Tutorial struct {
	Views     []*showcase.View
	Sequences []*showcase.Sequence

	// elements 元素名到实体的映射
	elements map[string]ecs.EntityID
}

// BuildTutorial 根据脚本创建元素按钮、展示和序列
//
// 参数：
//   - host: 展示宿主
//   - em: 实体管理器，元素按钮创建在其中
//   - script: 已校验的教学脚本
//   - onElementClick: 元素按钮被点击时的回调（可为 nil）
//
// 返回：
//   - *Tutorial: 构建结果，调用 Start 开始显示
//   - error: 主题解析失败或展示创建失败
func BuildTutorial(host *showcase.Host, em *ecs.EntityManager, script *config.TutorialScript, onElementClick func(name string)) (*Tutorial, error) {
	theme, err := script.Theme.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve script theme: %w", err)
	}

	t := &Tutorial{elements: make(map[string]ecs.EntityID, len(script.Elements))}

	for _, element := range script.Elements {
		name := element.Name
		var onClick func()
		if onElementClick != nil {
			onClick = func() { onElementClick(name) }
		}
		t.elements[name] = entities.NewElementButton(em, element, ElementColor, onClick)
	}

	for i, item := range script.Showcases {
		cfg := t.itemConfig(em, item)
		cfg.ApplyTheme(theme)
		applyItemOverrides(&cfg, item)

		v, err := showcase.NewView(host, cfg)
		if err != nil {
			return nil, fmt.Errorf("showcase %d: %w", i, err)
		}
		t.Views = append(t.Views, v)
	}

	for i, seqCfg := range script.Sequences {
		seqTheme, err := seqCfg.Theme.Resolve()
		if err != nil {
			return nil, fmt.Errorf("sequence %d theme: %w", i, err)
		}

		seq, err := showcase.NewSequence(host, seqCfg.ID)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		seq.Listener = sequenceLogger(seqCfg.ID)

		// 优先级：单项 > 序列主题 > 脚本主题
		for j, item := range seqCfg.Items {
			cfg := t.itemConfig(em, item)
			cfg.ApplyTheme(theme)
			cfg.ApplyTheme(seqTheme)
			applyItemOverrides(&cfg, item)

			if _, err := seq.AddItem(cfg); err != nil {
				return nil, fmt.Errorf("sequence %d item %d: %w", i, j, err)
			}
		}
		t.Sequences = append(t.Sequences, seq)
	}

	log.Printf("[Tutorial] Built %d elements, %d showcases, %d sequences",
		len(t.elements), len(t.Views), len(t.Sequences))
	return t, nil
}

// Element 按名称返回元素实体
func (t *Tutorial) Element(name string) (ecs.EntityID, bool) {
	id, ok := t.elements[name]
	return id, ok
}

// Start 请求显示所有独立展示和序列
// 它们共用宿主的 Displayer，按脚本顺序依次出现
func (t *Tutorial) Start() {
	for _, v := range t.Views {
		v.Show()
	}
	for _, seq := range t.Sequences {
		seq.Show()
	}
}

// itemConfig 把脚本中的展示项转换为展示配置（不含主题）
func (t *Tutorial) itemConfig(em *ecs.EntityManager, item config.ItemConfig) showcase.Config {
	cfg := showcase.Config{
		Target:          geometry.NoTarget,
		Title:           item.Title,
		Content:         item.Content,
		DismissText:     item.DismissText,
		SingleUseID:     item.ID,
		TargetTouchable: item.TargetTouchable,
		Listener:        viewLogger(item),
	}
	if item.Target != "" {
		if id, ok := t.elements[item.Target]; ok {
			cfg.Target = systems.NewElementTarget(em, id)
		}
	}
	return cfg
}

// applyItemOverrides 单项上显式设置的值覆盖主题
func applyItemOverrides(cfg *showcase.Config, item config.ItemConfig) {
	if item.Delay != nil {
		cfg.Delay = *item.Delay
	}
}

func viewLogger(item config.ItemConfig) showcase.Listener {
	name := item.ID
	if name == "" {
		name = item.Title
	}
	return showcase.Listener{
		OnDisplayed: func(*showcase.View) {
			log.Printf("[Tutorial] %q displayed", name)
		},
		OnDismissed: func(*showcase.View) {
			log.Printf("[Tutorial] %q dismissed", name)
		},
		OnSkipped: func(*showcase.View) {
			log.Printf("[Tutorial] %q skipped (already shown)", name)
		},
		OnTargetPressed: func(*showcase.View) {
			log.Printf("[Tutorial] %q target pressed", name)
		},
	}
}

func sequenceLogger(id string) showcase.SequenceListener {
	return showcase.SequenceListener{
		OnItemShown: func(_ *showcase.View, index int) {
			log.Printf("[Tutorial] Sequence %q item %d shown", id, index)
		},
		OnItemDismissed: func(_ *showcase.View, index int) {
			log.Printf("[Tutorial] Sequence %q item %d dismissed", id, index)
		},
		OnFinished: func(*showcase.Sequence) {
			log.Printf("[Tutorial] Sequence %q finished", id)
		},
	}
}
