package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/atotto/clipboard"
	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/input"
	"github.com/decker502/rpgproto/pkg/types"
	"github.com/decker502/rpgproto/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// clipboardWrite 写系统剪贴板，测试中替换
var clipboardWrite = clipboard.WriteAll

// moveMask 点击移动的射线掩码：障碍物挡住下方地面
var moveMask = types.MaskOf(types.LayerGround, types.LayerObstacle)

// EventSource 输入分发器中玩家控制用到的部分
type EventSource interface {
	SetKeyListener(l input.KeyListener)
	SetMouseListener(l input.MouseListener)
	HoverTarget() ecs.EntityID
}

// PlayerControlSystem 把语义输入事件转换为玩家行为
//
//   - 按下/按住地面：设置移动目标点
//   - 点击怪物：范围内造成伤害并着色，生命归零时销毁
//   - 点击物品：范围内拾取（Immediate 回复生命，Obtain 放入背包）
//   - WASD/方向键：直接移动
//   - C：复制悬停物品的名称到剪贴板
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	events        EventSource
	raycaster     input.Raycaster
	pointer       input.Pointer
	keyboard      input.Keyboard
	movement      *MovementSystem
	flash         *FlashEffectSystem
	player        ecs.EntityID

	// 本帧键盘移动方向，由按键监听器写入，Update 消费
	keyDX, keyDY float64

	status string
}

// PlayerControlConfig 玩家控制系统的协作者
type PlayerControlConfig struct {
	Events    EventSource
	Raycaster input.Raycaster
	Pointer   input.Pointer
	Keyboard  input.Keyboard
	Movement  *MovementSystem
	Flash     *FlashEffectSystem
}

// NewPlayerControlSystem 创建玩家控制系统，注册输入监听器并绘制攻击范围圈
func NewPlayerControlSystem(em *ecs.EntityManager, player ecs.EntityID, cfg PlayerControlConfig) *PlayerControlSystem {
	s := &PlayerControlSystem{
		entityManager: em,
		events:        cfg.Events,
		raycaster:     cfg.Raycaster,
		pointer:       cfg.Pointer,
		keyboard:      cfg.Keyboard,
		movement:      cfg.Movement,
		flash:         cfg.Flash,
		player:        player,
	}

	cfg.Events.SetMouseListener(s.onMouse)
	cfg.Events.SetKeyListener(s.onKey)

	if p, ok := ecs.GetComponent[*components.PlayerComponent](em, player); ok {
		if ring := utils.DrawCircle(em, player, p.AttackRange, config.AttackRingLineWidth); ring != nil {
			ring.Color = config.AttackRingColor
		}
	}

	return s
}

// Status 最近一条玩家行为提示（HUD 显示）
func (s *PlayerControlSystem) Status() string {
	return s.status
}

// Update 应用本帧的键盘移动
func (s *PlayerControlSystem) Update(dt float64) {
	if s.keyDX == 0 && s.keyDY == 0 {
		return
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if ok {
		l := math.Hypot(s.keyDX, s.keyDY)
		step := player.Speed * dt
		player.Moving = false
		s.movement.Translate(s.player, s.keyDX/l*step, s.keyDY/l*step)
	}
	s.keyDX, s.keyDY = 0, 0
}

func (s *PlayerControlSystem) onKey() {
	var dx, dy float64
	if s.keyboard.IsKeyPressed(ebiten.KeyW) || s.keyboard.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if s.keyboard.IsKeyPressed(ebiten.KeyS) || s.keyboard.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if s.keyboard.IsKeyPressed(ebiten.KeyA) || s.keyboard.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if s.keyboard.IsKeyPressed(ebiten.KeyD) || s.keyboard.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	s.keyDX, s.keyDY = dx, dy

	if s.keyboard.IsKeyJustPressed(ebiten.KeyC) {
		s.copyHoveredName()
	}
}

func (s *PlayerControlSystem) onMouse(ev types.MouseEvent) {
	switch ev {
	case types.MousePointerDown, types.MousePress:
		if s.events.HoverTarget() == 0 {
			s.moveToPointer()
		}
	case types.MouseClick:
		s.interact(s.events.HoverTarget())
	}
}

// moveToPointer 指针下方是地面时设置移动目标
func (s *PlayerControlSystem) moveToPointer() {
	x, y := s.pointer.Position()
	hit, ok := s.raycaster.Raycast(x, y, config.RaycastMaxDistance, moveMask)
	if !ok || hit.Layer != types.LayerGround {
		return
	}
	s.moveTo(hit.WorldX, hit.WorldY)
}

func (s *PlayerControlSystem) moveTo(x, y float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	player.DestX, player.DestY = x, y
	player.Moving = true
}

// interact 点击悬停目标：超出攻击范围时走过去
func (s *PlayerControlSystem) interact(target ecs.EntityID) {
	if target == 0 || !s.entityManager.IsAlive(target) {
		return
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, target)
	if !ok {
		return
	}

	if utils.Distance(playerPos.X, playerPos.Y, targetPos.X, targetPos.Y) > player.AttackRange {
		s.status = "Too far away"
		s.moveTo(targetPos.X, targetPos.Y)
		return
	}

	if monster, ok := ecs.GetComponent[*components.MonsterComponent](s.entityManager, target); ok {
		s.attack(player, target, monster)
		return
	}
	if item, ok := ecs.GetComponent[*components.ItemInfoComponent](s.entityManager, target); ok {
		s.pickUp(player, target, item)
	}
}

func (s *PlayerControlSystem) attack(player *components.PlayerComponent, target ecs.EntityID, monster *components.MonsterComponent) {
	player.Moving = false
	monster.HP -= player.AttackDamage
	if monster.HP <= 0 {
		monster.HP = 0
		s.status = fmt.Sprintf("%s defeated", monster.Name)
		log.Printf("[PlayerControl] %s (entity %d) defeated", monster.Name, target)
		utils.DestroyTree(s.entityManager, target)
		return
	}

	s.status = fmt.Sprintf("Hit %s (%d/%d)", monster.Name, monster.HP, monster.MaxHP)
	s.flash.Flash(target, config.HitFlashColor, config.HitFlashDuration)
}

func (s *PlayerControlSystem) pickUp(player *components.PlayerComponent, target ecs.EntityID, item *components.ItemInfoComponent) {
	player.Moving = false
	switch item.Type {
	case types.ItemImmediate:
		player.HP = min(player.MaxHP, player.HP+item.Value)
		s.status = fmt.Sprintf("Used %s (+%d HP)", item.Name, item.Value)
	default:
		player.Inventory = append(player.Inventory, item.Name)
		s.status = fmt.Sprintf("Picked up %s", item.Name)
	}
	log.Printf("[PlayerControl] Picked up %s (%s, %s)", item.Name, item.Tier, item.Type)
	utils.DestroyTree(s.entityManager, target)
}

func (s *PlayerControlSystem) copyHoveredName() {
	target := s.events.HoverTarget()
	item, ok := ecs.GetComponent[*components.ItemInfoComponent](s.entityManager, target)
	if !ok {
		return
	}
	if err := clipboardWrite(item.Name); err != nil {
		log.Printf("[PlayerControl] Warning: clipboard unavailable: %v", err)
		s.status = "Clipboard unavailable"
		return
	}
	s.status = fmt.Sprintf("Copied %q", item.Name)
}
