package systems

import (
	"image"

	"github.com/decker502/showcase/pkg/components"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/geometry"
)

// ElementTarget 把界面元素实体解析为展示目标
//
// 每次调用都读取实体当前的 BoundsComponent，元素移动后目标随之移动。
// 实体被删除后中心点和半径均为 0（展示会把它当作尚未就绪的几何）。
type ElementTarget struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	rect          *geometry.RectTarget
}

// NewElementTarget 创建元素目标
func NewElementTarget(em *ecs.EntityManager, entity ecs.EntityID) *ElementTarget {
	t := &ElementTarget{entityManager: em, entity: entity}
	t.rect = geometry.NewRectTarget(t.bounds)
	return t
}

// Entity 返回目标对应的实体
func (t *ElementTarget) Entity() ecs.EntityID {
	return t.entity
}

func (t *ElementTarget) bounds() image.Rectangle {
	b, ok := ecs.GetComponent[*components.BoundsComponent](t.entityManager, t.entity)
	if !ok {
		return image.Rectangle{}
	}
	return b.Rect()
}

// CenterPoint 元素中心点
func (t *ElementTarget) CenterPoint() image.Point {
	return t.rect.CenterPoint()
}

// Radius 包住元素矩形的圆半径
func (t *ElementTarget) Radius() int {
	return t.rect.Radius()
}

// RadiusSquared 半径平方
func (t *ElementTarget) RadiusSquared() int {
	return t.rect.RadiusSquared()
}
