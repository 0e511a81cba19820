// Package input 把宿主每帧的指针、按键和射线检测信号转换为
// 光标外观、语义鼠标事件和悬停高亮效果
//
// 每帧处理顺序固定：
//  1. 任意键按下 → 调用按键监听器
//  2. 指针在 UI 上 → 本帧到此为止
//  3. 光标外观 → 按键/点击检测 → 悬停跟踪
package input

import (
	"fmt"
	"image"
	"log"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/types"
	"github.com/decker502/rpgproto/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 光标图片资源 ID（见 assets/config/resources.yaml）
const (
	AttackCursorImageID = "IMAGE_CURSOR_ATTACK"
	HandCursorImageID   = "IMAGE_CURSOR_HAND"
)

var (
	// attackMask 光标外观射线只检测怪物
	attackMask = types.MaskOf(types.LayerMonster)
	// hoverMask 悬停射线检测物品和怪物
	hoverMask = types.MaskOf(types.LayerMonster, types.LayerItem)
)

// KeyListener 按键监听器（无参数）
type KeyListener func()

// MouseListener 语义鼠标事件监听器
type MouseListener func(types.MouseEvent)

// PointerState 分发器跨帧保存的指针状态
type PointerState struct {
	Pressed     bool
	PressedAt   float64 // 仅在 Pressed 为 true 时有意义，释放后归零
	HoverTarget ecs.EntityID
	HoverLayer  types.Layer
	Cursor      types.CursorType
}

// Dispatcher 悬停/点击分发器
// 由场景每帧调用一次 OnFrame，只在游戏主 goroutine 上使用
type Dispatcher struct {
	entityManager *ecs.EntityManager
	host          Host

	attackIcon *ebiten.Image
	handIcon   *ebiten.Image
	label      NameLabel

	keyListener   KeyListener
	mouseListener MouseListener

	state PointerState
}

// NewDispatcher 创建分发器：加载两张光标图片，实例化名称标签并隐藏
func NewDispatcher(em *ecs.EntityManager, host Host, loader ResourceLoader) (*Dispatcher, error) {
	attackIcon, err := loader.LoadImage(AttackCursorImageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attack cursor: %w", err)
	}
	handIcon, err := loader.LoadImage(HandCursorImageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hand cursor: %w", err)
	}
	label, err := loader.InstantiateNameLabel()
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate name label: %w", err)
	}
	label.Hide()

	log.Printf("[InputDispatcher] Initialized (attack cursor %dx%d, hand cursor %dx%d)",
		attackIcon.Bounds().Dx(), attackIcon.Bounds().Dy(),
		handIcon.Bounds().Dx(), handIcon.Bounds().Dy())

	return &Dispatcher{
		entityManager: em,
		host:          host,
		attackIcon:    attackIcon,
		handIcon:      handIcon,
		label:         label,
		state:         PointerState{Cursor: types.CursorNone},
	}, nil
}

// SetKeyListener 设置（或替换）按键监听器，nil 表示清空
func (d *Dispatcher) SetKeyListener(l KeyListener) {
	d.keyListener = l
}

// SetMouseListener 设置（或替换）鼠标事件监听器，nil 表示清空
func (d *Dispatcher) SetMouseListener(l MouseListener) {
	d.mouseListener = l
}

// State 返回当前指针状态的副本
func (d *Dispatcher) State() PointerState {
	return d.state
}

// HoverTarget 返回当前悬停的实体，0 表示没有
func (d *Dispatcher) HoverTarget() ecs.EntityID {
	return d.state.HoverTarget
}

// OnFrame 每帧调用一次
func (d *Dispatcher) OnFrame() {
	if d.host.Pointer.AnyKeyPressed() && d.keyListener != nil {
		d.keyListener()
	}

	x, y := d.host.Pointer.Position()

	// UI 优先消费输入
	if d.host.UI.IsPointerOverUI(x, y) {
		return
	}

	d.updateCursor(x, y)
	d.updateButton()
	d.updateHover(x, y)
}

// updateCursor 根据指针下方是否有怪物选择光标；按住主按键时保持不变
func (d *Dispatcher) updateCursor(x, y int) {
	if d.host.Pointer.PrimaryPressed() {
		return
	}

	if _, hit := d.host.Raycaster.Raycast(x, y, config.RaycastMaxDistance, attackMask); hit {
		d.applyCursor(types.CursorAttack)
	} else {
		d.applyCursor(types.CursorHand)
	}
}

// applyCursor 只在外观变化时调用宿主
func (d *Dispatcher) applyCursor(shape types.CursorType) {
	if d.state.Cursor == shape {
		return
	}

	switch shape {
	case types.CursorAttack:
		hotspot := image.Pt(d.attackIcon.Bounds().Dx()/config.AttackCursorHotspotDivisor, 0)
		d.host.Cursor.SetCursor(d.attackIcon, hotspot)
	case types.CursorHand:
		hotspot := image.Pt(d.handIcon.Bounds().Dx()/config.HandCursorHotspotDivisor, 0)
		d.host.Cursor.SetCursor(d.handIcon, hotspot)
	default:
		return
	}
	d.state.Cursor = shape
}

// updateButton 主按键边沿与时长检测；没有鼠标监听器时不跟踪按键状态
func (d *Dispatcher) updateButton() {
	if d.mouseListener == nil {
		return
	}

	if d.host.Pointer.PrimaryPressed() {
		if !d.state.Pressed {
			d.emit(types.MousePointerDown)
			d.state.PressedAt = d.host.Clock.Now()
		}
		d.emit(types.MousePress)
		d.state.Pressed = true
		return
	}

	if d.state.Pressed {
		if d.host.Clock.Now() < d.state.PressedAt+config.ClickThreshold {
			d.emit(types.MouseClick)
		}
		d.emit(types.MousePointerUp)
	}
	d.state.Pressed = false
	d.state.PressedAt = 0
}

// emit 监听器可能在回调中清空自身
func (d *Dispatcher) emit(ev types.MouseEvent) {
	if d.mouseListener != nil {
		d.mouseListener(ev)
	}
}

// updateHover 跟踪指针下方的物品/怪物并切换高亮
func (d *Dispatcher) updateHover(x, y int) {
	hit, ok := d.host.Raycaster.Raycast(x, y, config.RaycastMaxDistance, hoverMask)
	if !ok {
		d.clearTarget()
		return
	}

	if hit.Entity == d.state.HoverTarget {
		return
	}
	d.clearTarget()

	d.state.HoverTarget = hit.Entity
	d.state.HoverLayer = hit.Layer

	switch hit.Layer {
	case types.LayerItem:
		d.showItemLabel(hit.Entity)
		d.setOutline(hit.Entity, true)
	case types.LayerMonster:
		d.setOutline(hit.Entity, true)
	}
}

// clearTarget 撤销当前悬停目标的效果；没有目标时什么也不做
func (d *Dispatcher) clearTarget() {
	if d.state.HoverTarget == 0 {
		return
	}

	switch d.state.HoverLayer {
	case types.LayerItem:
		d.label.Hide()
		d.setOutline(d.state.HoverTarget, false)
	case types.LayerMonster:
		d.setOutline(d.state.HoverTarget, false)
	}

	d.state.HoverTarget = 0
	d.state.HoverLayer = types.LayerDefault
}

func (d *Dispatcher) showItemLabel(target ecs.EntityID) {
	info, ok := ecs.GetComponent[*components.ItemInfoComponent](d.entityManager, target)
	if !ok {
		log.Printf("[InputDispatcher] Warning: item entity %d has no ItemInfoComponent", target)
		return
	}

	d.label.Show()
	d.label.SetTarget(target)
	d.label.SetText(info.Name)
	d.label.SetColor(utils.TierColor(info.Tier))
}

func (d *Dispatcher) setOutline(target ecs.EntityID, enabled bool) {
	outline, ok := ecs.GetComponent[*components.OutlineComponent](d.entityManager, target)
	if !ok {
		// 目标可能已在上一帧被销毁
		if d.entityManager.IsAlive(target) {
			log.Printf("[InputDispatcher] Warning: entity %d has no OutlineComponent", target)
		}
		return
	}
	outline.Enabled = enabled
}
