package systems

import (
	"image/color"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/utils"
)

// FlashEffectSystem 受击着色效果系统
// 开始时着色整棵实体树，持续期间按 EaseOutQuad 渐变回 BaseColor，结束后还原
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪烁效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Flash 开始（或重新开始）实体的着色效果
func (s *FlashEffectSystem) Flash(id ecs.EntityID, c color.RGBA, duration float64) {
	if utils.SetColorInChildren(s.entityManager, id, c) == 0 {
		return
	}

	flash, ok := ecs.GetOrAddComponent(s.entityManager, id, func() *components.FlashEffectComponent {
		return &components.FlashEffectComponent{}
	})
	if !ok {
		return
	}
	flash.Color = c
	flash.Duration = duration
	flash.Elapsed = 0
	flash.IsActive = true
}

// Update 更新所有闪烁效果
func (s *FlashEffectSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	for _, entity := range entities {
		flashComp, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, entity)
		if !ok || !flashComp.IsActive {
			continue
		}

		flashComp.Elapsed += dt

		if flashComp.Elapsed >= flashComp.Duration {
			utils.ResetColorInChildren(s.entityManager, entity)
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, entity)
			continue
		}

		progress := utils.EaseOutQuad(flashComp.Elapsed / flashComp.Duration)
		utils.BlendColorInChildren(s.entityManager, entity, flashComp.Color, progress)
	}
}
