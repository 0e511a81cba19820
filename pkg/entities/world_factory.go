package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/types"
	"github.com/decker502/rpgproto/pkg/utils"
)

// 玩家绘制尺寸与深度（玩家不可被射线命中）
const (
	playerSize  = 24.0
	playerDepth = 45.0
)

// SceneEntities BuildScene 创建的关键实体
type SceneEntities struct {
	Camera   ecs.EntityID
	Player   ecs.EntityID
	Monsters []ecs.EntityID
	Items    []ecs.EntityID
}

// BuildScene 根据场景配置创建世界实体：场景对象、玩家和跟随玩家的镜头
func BuildScene(em *ecs.EntityManager, cfg *config.SceneConfig) (*SceneEntities, error) {
	result := &SceneEntities{}

	for i, obj := range cfg.Objects {
		id, err := NewSceneObjectEntity(em, obj)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, obj.Name, err)
		}
		switch obj.Kind {
		case config.KindMonster:
			result.Monsters = append(result.Monsters, id)
		case config.KindItem:
			result.Items = append(result.Items, id)
		}
	}

	result.Player = NewPlayerEntity(em, cfg.Player)
	result.Camera = NewCameraEntity(em, cfg.World.Width, cfg.World.Height, result.Player)

	log.Printf("[EntityFactory] Scene %q built: %d objects (%d monsters, %d items)",
		cfg.Name, len(cfg.Objects), len(result.Monsters), len(result.Items))
	return result, nil
}

// NewSceneObjectEntity 创建一个场景对象（地面/障碍物/怪物/物品）
func NewSceneObjectEntity(em *ecs.EntityManager, obj config.SceneObject) (ecs.EntityID, error) {
	var layer types.Layer
	var fill color.RGBA
	switch obj.Kind {
	case config.KindGround:
		layer, fill = types.LayerGround, config.GroundColor
	case config.KindObstacle:
		layer, fill = types.LayerObstacle, config.ObstacleColor
	case config.KindMonster:
		layer, fill = types.LayerMonster, config.MonsterColor
	case config.KindItem:
		layer, fill = types.LayerItem, config.ItemColor
	default:
		return 0, fmt.Errorf("unknown object kind %q", obj.Kind)
	}

	if obj.Color != "" {
		c, err := config.ParseHexColor(obj.Color)
		if err != nil {
			return 0, err
		}
		fill = c
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: obj.X, Y: obj.Y})
	ecs.AddComponent(em, id, &components.ColliderComponent{
		Layer:   layer,
		Width:   obj.Width,
		Height:  obj.Height,
		Depth:   obj.Depth,
		Enabled: true,
	})
	ecs.AddComponent(em, id, &components.RendererComponent{
		BaseColor: fill,
		Color:     fill,
		Visible:   true,
	})

	switch obj.Kind {
	case config.KindMonster:
		ecs.AddComponent(em, id, components.NewOutlineComponent())
		ecs.AddComponent(em, id, &components.MonsterComponent{Name: obj.Name, HP: obj.HP, MaxHP: obj.HP})
		addMonsterHead(em, id, obj, fill)

	case config.KindItem:
		tier, err := types.ParseItemTier(obj.Tier)
		if err != nil {
			em.DestroyEntity(id)
			return 0, err
		}
		itemType, err := types.ParseItemType(obj.Type)
		if err != nil {
			em.DestroyEntity(id)
			return 0, err
		}
		ecs.AddComponent(em, id, components.NewOutlineComponent())
		ecs.AddComponent(em, id, &components.ItemInfoComponent{
			Name:  obj.Name,
			Tier:  tier,
			Type:  itemType,
			Value: obj.Value,
		})
	}

	return id, nil
}

// addMonsterHead 怪物头部子节点（受击时与身体一起着色）
func addMonsterHead(em *ecs.EntityManager, body ecs.EntityID, obj config.SceneObject, bodyColor color.RGBA) {
	headColor := color.RGBA{
		R: utils.LerpColorChannel(bodyColor.R, 0, 0.35),
		G: utils.LerpColorChannel(bodyColor.G, 0, 0.35),
		B: utils.LerpColorChannel(bodyColor.B, 0, 0.35),
		A: bodyColor.A,
	}

	head := em.CreateEntity()
	ecs.AddComponent(em, head, &components.RendererComponent{
		BaseColor: headColor,
		Color:     headColor,
		Visible:   true,
		Width:     obj.Width * 0.6,
		Height:    obj.Height * 0.4,
		OffsetY:   -obj.Height * 0.2,
	})
	utils.AttachChild(em, body, head)
}

// NewPlayerEntity 创建玩家（带攻击范围参数，范围圈由 PlayerControlSystem 绘制）
func NewPlayerEntity(em *ecs.EntityManager, spawn config.PlayerSpawn) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spawn.X, Y: spawn.Y})
	ecs.AddComponent(em, id, &components.ColliderComponent{
		Layer:   types.LayerDefault,
		Width:   playerSize,
		Height:  playerSize,
		Depth:   playerDepth,
		Enabled: false,
	})
	ecs.AddComponent(em, id, &components.RendererComponent{
		BaseColor: config.PlayerColor,
		Color:     config.PlayerColor,
		Visible:   true,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		HP:           config.PlayerDefaultHP,
		MaxHP:        config.PlayerDefaultHP,
		Speed:        spawn.Speed,
		AttackRange:  config.PlayerDefaultAttackRange,
		AttackDamage: config.PlayerDefaultAttackDamage,
		DestX:        spawn.X,
		DestY:        spawn.Y,
	})
	return id
}

// NewCameraEntity 创建跟随 target 的镜头
func NewCameraEntity(em *ecs.EntityManager, worldWidth, worldHeight float64, target ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		Zoom:        1,
		Target:      target,
		FollowSpeed: config.CameraFollowSpeed,
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
	})
	return id
}
