package scenes

import (
	"fmt"

	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/entities"
	"github.com/decker502/rpgproto/pkg/input"
	"github.com/decker502/rpgproto/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// initSystems 创建系统并按依赖顺序连线：
// 射线/UI/光标 → 输入分发器（实例化名称标签）→ 玩家控制
func (s *GameScene) initSystems(cfg *config.SceneConfig) error {
	em := s.entityManager
	camera := s.world.Camera

	s.raycastSystem = systems.NewRaycastSystem(em, camera)
	s.uiFocusSystem = systems.NewUIFocusSystem(em)
	s.cameraSystem = systems.NewCameraSystem(em, camera)
	s.movementSystem = systems.NewMovementSystem(em, cfg.World.Width, cfg.World.Height)
	s.flashSystem = systems.NewFlashEffectSystem(em)
	s.renderSystem = systems.NewRenderSystem(em, camera)
	s.renderSystem.SetShowColliders(s.settings.GetSettings().ShowColliders)

	if err := s.initCursor(); err != nil {
		return err
	}

	dispatcher, err := input.NewDispatcher(em, input.Host{
		Pointer:   s.pointer,
		UI:        s.uiFocusSystem,
		Raycaster: s.raycastSystem,
		Cursor:    s.cursor,
		Clock:     s.clock,
	}, sceneResources{scene: s})
	if err != nil {
		return fmt.Errorf("failed to create input dispatcher: %w", err)
	}
	s.dispatcher = dispatcher

	s.playerControlSystem = systems.NewPlayerControlSystem(em, s.world.Player, systems.PlayerControlConfig{
		Events:    dispatcher,
		Raycaster: s.raycastSystem,
		Pointer:   s.pointer,
		Keyboard:  s.keyboard,
		Movement:  s.movementSystem,
		Flash:     s.flashSystem,
	})

	s.cameraSystem.SnapToTarget()
	return nil
}

// initCursor 自绘光标与系统光标共用同一组图片，系统模式下映射为形状
func (s *GameScene) initCursor() error {
	attack, err := s.resourceManager.LoadImageByID(input.AttackCursorImageID)
	if err != nil {
		return err
	}
	hand, err := s.resourceManager.LoadImageByID(input.HandCursorImageID)
	if err != nil {
		return err
	}

	system := input.NewSystemCursor(map[*ebiten.Image]ebiten.CursorShapeType{
		attack: ebiten.CursorShapeCrosshair,
		hand:   ebiten.CursorShapePointer,
	})
	s.cursor = input.NewSwitchCursor(input.NewImageCursor(), system, s.settings.GetSettings().CustomCursor)
	return nil
}

// sceneResources 为输入分发器提供光标图片和名称标签
type sceneResources struct {
	scene *GameScene
}

func (r sceneResources) LoadImage(id string) (*ebiten.Image, error) {
	return r.scene.resourceManager.LoadImageByID(id)
}

// InstantiateNameLabel 按预制创建标签实体，由 LabelSystem 控制
func (r sceneResources) InstantiateNameLabel() (input.NameLabel, error) {
	s := r.scene
	prefab, err := s.resourceManager.LabelPrefab(entities.NameLabelPrefabID)
	if err != nil {
		return nil, err
	}
	id, err := entities.NewNameLabelEntity(s.entityManager, prefab)
	if err != nil {
		return nil, err
	}
	s.labelSystem = systems.NewLabelSystem(s.entityManager, id, s.world.Camera)
	return s.labelSystem, nil
}
