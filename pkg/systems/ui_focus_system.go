package systems

import (
	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
)

// UIFocusSystem 判断指针是否被 UI 占用
type UIFocusSystem struct {
	entityManager *ecs.EntityManager
}

// NewUIFocusSystem 创建 UI 占用检测系统
func NewUIFocusSystem(em *ecs.EntityManager) *UIFocusSystem {
	return &UIFocusSystem{entityManager: em}
}

// IsPointerOverUI 实现 input.UIFocus：任一可见且阻挡指针的 UI 元素包含该点
func (s *UIFocusSystem) IsPointerOverUI(x, y int) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.UIElementComponent](s.entityManager) {
		ui, _ := ecs.GetComponent[*components.UIElementComponent](s.entityManager, id)
		if ui.Visible && ui.BlocksPointer && ui.Contains(float64(x), float64(y)) {
			return true
		}
	}
	return false
}
