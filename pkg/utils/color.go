package utils

import (
	"image/color"
	"log"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/types"
)

// 稀有度标签颜色
var (
	TierColorNormal = color.RGBA{R: 255, G: 255, B: 255, A: 255} // 白
	TierColorRare   = color.RGBA{R: 0, G: 0, B: 255, A: 255}     // 蓝
	TierColorLegend = color.RGBA{R: 255, G: 235, B: 4, A: 255}   // 黄
)

// TierColor 返回稀有度对应的名称颜色，未知稀有度返回白色
func TierColor(tier types.ItemTier) color.RGBA {
	switch tier {
	case types.TierRare:
		return TierColorRare
	case types.TierLegend:
		return TierColorLegend
	default:
		return TierColorNormal
	}
}

// SetColorInChildren 把实体自身及所有子孙实体的 RendererComponent 设为同一颜色
// 返回被修改的渲染器数量；实体不存在或没有渲染器时记录日志并返回 0
func SetColorInChildren(em *ecs.EntityManager, id ecs.EntityID, c color.RGBA) int {
	if !em.IsAlive(id) {
		log.Printf("[Utils] SetColorInChildren: entity %d does not exist", id)
		return 0
	}

	renderers := collectRenderers(em, id, nil)
	if len(renderers) == 0 {
		log.Printf("[Utils] SetColorInChildren: entity %d has no renderers", id)
		return 0
	}

	for _, r := range renderers {
		r.Color = c
	}
	return len(renderers)
}

// ResetColorInChildren 把实体及子孙的渲染颜色还原为 BaseColor
func ResetColorInChildren(em *ecs.EntityManager, id ecs.EntityID) {
	for _, r := range collectRenderers(em, id, nil) {
		r.Color = r.BaseColor
	}
}

// BlendColorInChildren 把实体树上的渲染颜色设为 c 与各自 BaseColor 之间的插值
// t=0 为 c，t=1 为 BaseColor
func BlendColorInChildren(em *ecs.EntityManager, id ecs.EntityID, c color.RGBA, t float64) {
	for _, r := range collectRenderers(em, id, nil) {
		r.Color = color.RGBA{
			R: LerpColorChannel(c.R, r.BaseColor.R, t),
			G: LerpColorChannel(c.G, r.BaseColor.G, t),
			B: LerpColorChannel(c.B, r.BaseColor.B, t),
			A: LerpColorChannel(c.A, r.BaseColor.A, t),
		}
	}
}

// collectRenderers 深度优先收集实体树上的渲染器
func collectRenderers(em *ecs.EntityManager, id ecs.EntityID, out []*components.RendererComponent) []*components.RendererComponent {
	if r, ok := ecs.GetComponent[*components.RendererComponent](em, id); ok {
		out = append(out, r)
	}
	if h, ok := ecs.GetComponent[*components.HierarchyComponent](em, id); ok {
		for _, child := range h.Children {
			if child == id {
				continue
			}
			out = collectRenderers(em, child, out)
		}
	}
	return out
}

// AttachChild 建立父子关系（双方的 HierarchyComponent 按需创建）
func AttachChild(em *ecs.EntityManager, parent, child ecs.EntityID) {
	newHierarchy := func() *components.HierarchyComponent { return &components.HierarchyComponent{} }

	ph, ok := ecs.GetOrAddComponent(em, parent, newHierarchy)
	if !ok {
		return
	}
	ch, ok := ecs.GetOrAddComponent(em, child, newHierarchy)
	if !ok {
		return
	}
	ph.Children = append(ph.Children, child)
	ch.Parent = parent
}

// DestroyTree 标记实体及其所有子孙实体为待删除
func DestroyTree(em *ecs.EntityManager, id ecs.EntityID) {
	if h, ok := ecs.GetComponent[*components.HierarchyComponent](em, id); ok {
		for _, child := range h.Children {
			if child != id {
				DestroyTree(em, child)
			}
		}
	}
	em.DestroyEntity(id)
}
