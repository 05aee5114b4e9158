package systems

import (
	"image"
	"log"
	"time"

	"github.com/decker502/showcase/pkg/components"
	"github.com/decker502/showcase/pkg/ecs"
)

// ButtonClickFeedback 点击后 UIClicked 状态保持的时长
const ButtonClickFeedback = 150 * time.Millisecond

// ButtonSystem 按钮交互系统
//
// 职责：
//   - 处理按下事件：命中按钮时计数、触发 OnClick、进入点击反馈状态
//   - 每帧更新悬停状态，点击反馈到期后恢复
//
// 按下事件由宿主先交给展示遮罩，遮罩未消费（未显示或点中了目标）时才交给本系统。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// HandlePress 处理一次按下事件
//
// 参数：
//   - p: 按下位置
//   - now: 当前时间（用于点击反馈计时）
//
// 返回：
//   - true: 命中了某个按钮
func (s *ButtonSystem) HandlePress(p image.Point, now time.Time) bool {
	id, button, ok := s.buttonAt(p)
	if !ok || button.State == components.UIDisabled {
		return false
	}

	button.Clicks++
	button.State = components.UIClicked
	button.ClickedUntil = now.Add(ButtonClickFeedback)
	log.Printf("[ButtonSystem] Entity %d %q clicked (%d)", id, button.Label, button.Clicks)

	if button.OnClick != nil {
		button.OnClick()
	}
	return true
}

// Update 更新按钮悬停状态
//
// 参数：
//   - pointer: 当前指针位置
//   - now: 当前时间
func (s *ButtonSystem) Update(pointer image.Point, now time.Time) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager)
	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

		switch button.State {
		case components.UIDisabled:
			continue
		case components.UIClicked:
			if now.Before(button.ClickedUntil) {
				continue
			}
		}

		if pointer.In(bounds.Rect()) {
			button.State = components.UIHovered
		} else {
			button.State = components.UINormal
		}
	}
}

// buttonAt 查找位置上的按钮，重叠时取最后创建的（绘制在最上层）
func (s *ButtonSystem) buttonAt(p image.Point) (ecs.EntityID, *components.ButtonComponent, bool) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager)
	for i := len(entities) - 1; i >= 0; i-- {
		id := entities[i]
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if p.In(bounds.Rect()) {
			button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
			return id, button, true
		}
	}
	return 0, nil, false
}
