package utils

import (
	"image/color"
	"testing"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/types"
)

func TestTierColor(t *testing.T) {
	tests := []struct {
		tier types.ItemTier
		want color.RGBA
	}{
		{types.TierNormal, TierColorNormal},
		{types.TierRare, TierColorRare},
		{types.TierLegend, TierColorLegend},
		{types.ItemTier(99), TierColorNormal},
	}
	for _, tt := range tests {
		if got := TierColor(tt.tier); got != tt.want {
			t.Errorf("TierColor(%v): got %v, want %v", tt.tier, got, tt.want)
		}
	}

	if TierColorRare != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("Rare should be pure blue, got %v", TierColorRare)
	}
}

func TestSetColorInChildren(t *testing.T) {
	em := ecs.NewEntityManager()
	base := color.RGBA{R: 10, G: 10, B: 10, A: 255}
	red := color.RGBA{R: 255, A: 255}

	root := em.CreateEntity()
	ecs.AddComponent(em, root, &components.RendererComponent{BaseColor: base, Color: base})

	child := em.CreateEntity()
	ecs.AddComponent(em, child, &components.RendererComponent{BaseColor: base, Color: base})
	AttachChild(em, root, child)

	// 孙节点没有渲染器，但它的子节点有
	mid := em.CreateEntity()
	AttachChild(em, child, mid)
	leaf := em.CreateEntity()
	ecs.AddComponent(em, leaf, &components.RendererComponent{BaseColor: base, Color: base})
	AttachChild(em, mid, leaf)

	if n := SetColorInChildren(em, root, red); n != 3 {
		t.Errorf("SetColorInChildren count: got %d, want 3", n)
	}
	for _, id := range []ecs.EntityID{root, child, leaf} {
		r, _ := ecs.GetComponent[*components.RendererComponent](em, id)
		if r.Color != red {
			t.Errorf("entity %d color: got %v, want %v", id, r.Color, red)
		}
	}

	ResetColorInChildren(em, root)
	r, _ := ecs.GetComponent[*components.RendererComponent](em, leaf)
	if r.Color != base {
		t.Errorf("after reset: got %v, want %v", r.Color, base)
	}
}

func TestSetColorInChildrenNoRenderers(t *testing.T) {
	em := ecs.NewEntityManager()
	empty := em.CreateEntity()

	if n := SetColorInChildren(em, empty, color.RGBA{}); n != 0 {
		t.Errorf("no renderers: got %d, want 0", n)
	}
	if n := SetColorInChildren(em, 0, color.RGBA{}); n != 0 {
		t.Errorf("missing entity: got %d, want 0", n)
	}
}

func TestDestroyTree(t *testing.T) {
	em := ecs.NewEntityManager()
	root := em.CreateEntity()
	child := em.CreateEntity()
	grandchild := em.CreateEntity()
	other := em.CreateEntity()
	AttachChild(em, root, child)
	AttachChild(em, child, grandchild)

	DestroyTree(em, root)
	em.RemoveMarkedEntities()

	for _, id := range []ecs.EntityID{root, child, grandchild} {
		if em.IsAlive(id) {
			t.Errorf("entity %d should be destroyed with its parent", id)
		}
	}
	if !em.IsAlive(other) {
		t.Error("unrelated entity should survive")
	}
}

func TestBlendColorInChildren(t *testing.T) {
	em := ecs.NewEntityManager()
	parent := em.CreateEntity()
	child := em.CreateEntity()
	ecs.AddComponent(em, parent, &components.RendererComponent{BaseColor: color.RGBA{R: 0, A: 255}})
	ecs.AddComponent(em, child, &components.RendererComponent{BaseColor: color.RGBA{R: 100, A: 255}})
	AttachChild(em, parent, child)

	red := color.RGBA{R: 200, A: 255}
	tests := []struct {
		t       float64
		parentR uint8
		childR  uint8
	}{
		{0, 200, 200},
		{0.5, 100, 150},
		{1, 0, 100},
	}
	for _, tt := range tests {
		BlendColorInChildren(em, parent, red, tt.t)
		pr, _ := ecs.GetComponent[*components.RendererComponent](em, parent)
		cr, _ := ecs.GetComponent[*components.RendererComponent](em, child)
		if pr.Color.R != tt.parentR || cr.Color.R != tt.childR {
			t.Errorf("t=%v: got parent R=%d child R=%d, want %d/%d", tt.t, pr.Color.R, cr.Color.R, tt.parentR, tt.childR)
		}
	}
}
