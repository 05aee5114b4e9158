package entities

import (
	"image/color"

	"github.com/decker502/showcase/pkg/components"
	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/ecs"
)

// NewElementButton 根据脚本中的元素配置创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 元素配置（名称、文字、位置、尺寸）
//   - clr: 按钮底色
//   - onClick: 点击回调（可为 nil）
//
// 返回：
//   - 按钮实体ID
func NewElementButton(em *ecs.EntityManager, cfg config.ElementConfig, clr color.Color, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.ElementComponent{Name: cfg.Name})
	ecs.AddComponent(em, entity, &components.BoundsComponent{
		X:      cfg.X,
		Y:      cfg.Y,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Label:   cfg.Label,
		Color:   clr,
		State:   components.UINormal,
		OnClick: onClick,
	})

	return entity
}

// FindElement 按名称查找元素实体
func FindElement(em *ecs.EntityManager, name string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ElementComponent](em) {
		element, _ := ecs.GetComponent[*components.ElementComponent](em, id)
		if element.Name == name {
			return id, true
		}
	}
	return 0, false
}
