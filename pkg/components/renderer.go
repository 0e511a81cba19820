package components

import (
	"image/color"

	"github.com/decker502/rpgproto/pkg/ecs"
)

// RendererComponent 实体的填充色渲染
// Color 是当前使用的颜色，BaseColor 用于着色效果结束后的还原
type RendererComponent struct {
	BaseColor color.RGBA
	Color     color.RGBA
	Visible   bool
	Width     float64 // 渲染尺寸（世界单位），为 0 时使用碰撞盒尺寸
	Height    float64
	OffsetX   float64 // 相对父实体位置的偏移（子节点使用）
	OffsetY   float64
}

// HierarchyComponent 父子关系
// 子实体没有自己的 PositionComponent 时跟随父实体绘制
type HierarchyComponent struct {
	Parent   ecs.EntityID
	Children []ecs.EntityID
}
