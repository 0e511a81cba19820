package systems

import (
	"image/color"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/utils"
)

// LabelSystem 驱动场景中唯一的名称标签实体
// 同时实现 input.NameLabel，供输入分发器显示/隐藏标签
type LabelSystem struct {
	entityManager *ecs.EntityManager
	labelEntity   ecs.EntityID
	cameraEntity  ecs.EntityID
}

// NewLabelSystem 创建标签系统
// labelEntity 需要带有 NameLabelComponent 和 FollowTargetComponent
func NewLabelSystem(em *ecs.EntityManager, labelEntity, cameraEntity ecs.EntityID) *LabelSystem {
	return &LabelSystem{
		entityManager: em,
		labelEntity:   labelEntity,
		cameraEntity:  cameraEntity,
	}
}

// LabelEntity 返回标签实体 ID
func (s *LabelSystem) LabelEntity() ecs.EntityID {
	return s.labelEntity
}

func (s *LabelSystem) label() *components.NameLabelComponent {
	label, _ := ecs.GetComponent[*components.NameLabelComponent](s.entityManager, s.labelEntity)
	return label
}

// Show 显示标签
// 只切换可见性，位置由 SetTarget/Update 投影（旧目标可能已被销毁）
func (s *LabelSystem) Show() {
	if label := s.label(); label != nil {
		label.Visible = true
	}
}

// Hide 隐藏标签
func (s *LabelSystem) Hide() {
	if label := s.label(); label != nil {
		label.Visible = false
	}
}

// SetTarget 设置标签跟随的实体，并立即更新屏幕位置
func (s *LabelSystem) SetTarget(target ecs.EntityID) {
	follow, ok := ecs.GetComponent[*components.FollowTargetComponent](s.entityManager, s.labelEntity)
	if !ok {
		return
	}
	follow.Target = target
	if label := s.label(); label != nil {
		s.project(label)
	}
}

// SetText 设置标签文本
func (s *LabelSystem) SetText(text string) {
	if label := s.label(); label != nil {
		label.Text = text
	}
}

// SetColor 设置文本颜色
func (s *LabelSystem) SetColor(c color.Color) {
	if label := s.label(); label != nil {
		label.Color = c
	}
}

// Update 每帧把标签投影到跟随目标的屏幕位置；目标消失时隐藏标签
func (s *LabelSystem) Update(dt float64) {
	label := s.label()
	if label == nil || !label.Visible {
		return
	}
	s.project(label)
}

func (s *LabelSystem) project(label *components.NameLabelComponent) {
	follow, ok := ecs.GetComponent[*components.FollowTargetComponent](s.entityManager, s.labelEntity)
	if !ok || follow.Target == 0 {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, follow.Target)
	if !ok {
		label.Visible = false
		return
	}

	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	x, y := utils.WorldToScreen(cam, pos.X, pos.Y)
	label.ScreenX = x + follow.OffsetX
	label.ScreenY = y + follow.OffsetY
}
