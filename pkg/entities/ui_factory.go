package entities

import (
	"fmt"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/game"
)

// NameLabelPrefabID 悬浮名称标签的预制 ID（见 resources.yaml 的 prefabs）
const NameLabelPrefabID = "UI/ObjectNameCanvas"

// NewNameLabelEntity 按预制创建隐藏的名称标签实体
func NewNameLabelEntity(em *ecs.EntityManager, prefab game.LabelPrefab) (ecs.EntityID, error) {
	label := components.NewNameLabelComponent()
	if prefab.Padding > 0 {
		label.Padding = prefab.Padding
	}
	if prefab.Background != "" {
		bg, err := config.ParseHexColor(prefab.Background)
		if err != nil {
			return 0, fmt.Errorf("prefab %s: %w", prefab.ID, err)
		}
		label.BackgroundColor = bg
	}

	offsetY := prefab.OffsetY
	if offsetY == 0 {
		offsetY = config.NameLabelOffsetY
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, label)
	ecs.AddComponent(em, id, &components.FollowTargetComponent{
		OffsetX: prefab.OffsetX,
		OffsetY: offsetY,
	})
	return id, nil
}

// NewHUDPanelEntity 创建屏幕底部的 HUD 面板（阻挡世界交互）
func NewHUDPanelEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.UIElementComponent{
		X:             0,
		Y:             config.HUDPanelY,
		Width:         config.GameWindowWidth,
		Height:        config.HUDPanelHeight,
		Visible:       true,
		BlocksPointer: true,
	})
	return id
}
