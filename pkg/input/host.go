package input

import (
	"image"
	"image/color"

	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// Pointer 宿主输入层每帧提供的指针/按键信号
type Pointer interface {
	// AnyKeyPressed 当前是否有任意按键（包括鼠标按键）处于按下状态
	AnyKeyPressed() bool
	// PrimaryPressed 主按键（鼠标左键或第一个触摸点）是否按住
	PrimaryPressed() bool
	// Position 指针的屏幕坐标
	Position() (x, y int)
}

// UIFocus 宿主 UI 系统的指针占用查询
type UIFocus interface {
	// IsPointerOverUI 指针是否位于阻挡输入的 UI 元素上方
	IsPointerOverUI(x, y int) bool
}

// Hit 射线检测的命中结果
type Hit struct {
	Entity   ecs.EntityID
	Layer    types.Layer
	Distance float64
	WorldX   float64 // 射线与地面交点（世界坐标）
	WorldY   float64
}

// Raycaster 从镜头穿过屏幕点发出射线，返回掩码内最近的命中对象
type Raycaster interface {
	Raycast(screenX, screenY int, maxDistance float64, mask types.LayerMask) (Hit, bool)
}

// Cursor 设置宿主光标外观
type Cursor interface {
	SetCursor(img *ebiten.Image, hotspot image.Point)
}

// Clock 游戏时间（秒）
type Clock interface {
	Now() float64
}

// NameLabel 悬浮名称标签
type NameLabel interface {
	Show()
	Hide()
	// SetTarget 标签每帧跟随目标实体的屏幕投影位置
	SetTarget(target ecs.EntityID)
	SetText(text string)
	SetColor(c color.Color)
}

// ResourceLoader 初始化时提供光标图片和预制的名称标签
type ResourceLoader interface {
	LoadImage(id string) (*ebiten.Image, error)
	InstantiateNameLabel() (NameLabel, error)
}

// Host 输入分发器依赖的宿主协作者
type Host struct {
	Pointer   Pointer
	UI        UIFocus
	Raycaster Raycaster
	Cursor    Cursor
	Clock     Clock
}
