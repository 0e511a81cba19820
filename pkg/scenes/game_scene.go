package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/entities"
	"github.com/decker502/rpgproto/pkg/game"
	"github.com/decker502/rpgproto/pkg/input"
	"github.com/decker502/rpgproto/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// cursorResourceGroup 光标图片所在的资源组
const cursorResourceGroup = "cursors"

var backgroundColor = color.RGBA{R: 24, G: 30, B: 24, A: 255}

// GameScene 俯视角探索场景
//
// 世界由场景配置文件描述：地面、障碍物、怪物和物品。
// 玩家点击地面移动，点击范围内的怪物攻击、物品拾取；
// 悬停时由输入分发器切换光标、描边和名称标签。
type GameScene struct {
	resourceManager *game.ResourceManager
	settings        *game.SettingsManager
	entityManager   *ecs.EntityManager
	clock           *game.GameClock

	sceneName string
	world     *entities.SceneEntities

	pointer  *input.EbitenPointer
	keyboard input.Keyboard
	cursor   *input.SwitchCursor

	dispatcher *input.Dispatcher

	raycastSystem       *systems.RaycastSystem
	uiFocusSystem       *systems.UIFocusSystem
	labelSystem         *systems.LabelSystem
	cameraSystem        *systems.CameraSystem
	movementSystem      *systems.MovementSystem
	flashSystem         *systems.FlashEffectSystem
	playerControlSystem *systems.PlayerControlSystem
	renderSystem        *systems.RenderSystem
}

// NewGameScene 加载场景配置并创建所有实体和系统
func NewGameScene(rm *game.ResourceManager, settings *game.SettingsManager, scenePath string) (*GameScene, error) {
	cfg, err := config.LoadSceneConfig(scenePath)
	if err != nil {
		return nil, err
	}
	if err := rm.LoadResourceGroup(cursorResourceGroup); err != nil {
		return nil, fmt.Errorf("failed to load cursor images: %w", err)
	}

	s := &GameScene{
		resourceManager: rm,
		settings:        settings,
		entityManager:   ecs.NewEntityManager(),
		clock:           game.NewGameClock(),
		sceneName:       cfg.Name,
		pointer:         input.NewEbitenPointer(),
		keyboard:        input.EbitenKeyboard{},
	}

	s.world, err = entities.BuildScene(s.entityManager, cfg)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", scenePath, err)
	}
	entities.NewHUDPanelEntity(s.entityManager)

	if err := s.initSystems(cfg); err != nil {
		return nil, err
	}

	log.Printf("[GameScene] Scene %q ready (%d entities)", s.sceneName, s.entityManager.EntityCount())
	return s, nil
}

// Update 更新场景，每个 tick 调用一次
func (s *GameScene) Update(deltaTime float64) {
	s.clock.Advance(deltaTime)
	s.handleDebugKeys()

	s.dispatcher.OnFrame()

	s.playerControlSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.flashSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	s.labelSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)

	x, y := s.pointer.Position()
	s.cursor.Draw(screen, x, y)
}

// handleDebugKeys F1 切换碰撞盒显示，F2 切换自绘/系统光标，设置立即保存
func (s *GameScene) handleDebugKeys() {
	if s.keyboard.IsKeyJustPressed(ebiten.KeyF1) {
		s.toggleColliders()
	}
	if s.keyboard.IsKeyJustPressed(ebiten.KeyF2) {
		s.toggleCustomCursor()
	}
}

func (s *GameScene) toggleColliders() {
	show := !s.settings.GetSettings().ShowColliders
	s.settings.SetShowColliders(show)
	s.renderSystem.SetShowColliders(show)
	s.saveSettings()
	log.Printf("[GameScene] Show colliders: %v", show)
}

func (s *GameScene) toggleCustomCursor() {
	custom := !s.settings.GetSettings().CustomCursor
	s.settings.SetCustomCursor(custom)
	s.cursor.SetCustom(custom)
	s.saveSettings()
	log.Printf("[GameScene] Custom cursor: %v", custom)
}

func (s *GameScene) saveSettings() {
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save settings: %v", err)
	}
}

// Player 返回玩家实体
func (s *GameScene) Player() ecs.EntityID {
	return s.world.Player
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
