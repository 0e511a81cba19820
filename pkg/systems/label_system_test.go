package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/types"
)

func newLabelFixture(t *testing.T) (*ecs.EntityManager, *LabelSystem, ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	cam := addCamera(em, 100, 50)
	labelEntity := em.CreateEntity()
	ecs.AddComponent(em, labelEntity, components.NewNameLabelComponent())
	ecs.AddComponent(em, labelEntity, &components.FollowTargetComponent{OffsetY: -28})
	return em, NewLabelSystem(em, labelEntity, cam), labelEntity
}

func TestLabelSystemShowFollowsTarget(t *testing.T) {
	em, ls, labelEntity := newLabelFixture(t)
	sword := addCollidable(em, types.LayerItem, 300, 200, 20, 20, 40)

	ls.Show()
	ls.SetTarget(sword)
	ls.SetText("Sword")
	ls.SetColor(color.RGBA{B: 255, A: 255})

	label, _ := ecs.GetComponent[*components.NameLabelComponent](em, labelEntity)
	if !label.Visible || label.Text != "Sword" {
		t.Fatalf("label: got visible=%v text=%q", label.Visible, label.Text)
	}
	if label.ScreenX != 200 || label.ScreenY != 122 {
		t.Errorf("projected position: got (%v, %v), want (200, 122)", label.ScreenX, label.ScreenY)
	}

	// 目标移动后，Update 重新投影
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, sword)
	pos.X = 310
	ls.Update(1.0 / 60)
	if label.ScreenX != 210 {
		t.Errorf("after move: got ScreenX %v, want 210", label.ScreenX)
	}
}

func TestLabelSystemHidesWhenTargetGone(t *testing.T) {
	em, ls, labelEntity := newLabelFixture(t)
	sword := addCollidable(em, types.LayerItem, 300, 200, 20, 20, 40)

	ls.Show()
	ls.SetTarget(sword)

	em.DestroyEntity(sword)
	em.RemoveMarkedEntities()
	ls.Update(1.0 / 60)

	label, _ := ecs.GetComponent[*components.NameLabelComponent](em, labelEntity)
	if label.Visible {
		t.Error("label should hide once its target is destroyed")
	}
}

func TestLabelSystemHide(t *testing.T) {
	em, ls, labelEntity := newLabelFixture(t)

	ls.Show()
	ls.Hide()

	label, _ := ecs.GetComponent[*components.NameLabelComponent](em, labelEntity)
	if label.Visible {
		t.Error("Hide() should clear Visible")
	}
	if ls.LabelEntity() != labelEntity {
		t.Errorf("LabelEntity: got %d, want %d", ls.LabelEntity(), labelEntity)
	}
}

// 上一个目标被拾取销毁后，悬停下一个物品时标签仍然显示
func TestLabelSystemShowAfterPreviousTargetDestroyed(t *testing.T) {
	em, ls, labelEntity := newLabelFixture(t)
	sword := addCollidable(em, types.LayerItem, 300, 200, 20, 20, 40)
	shield := addCollidable(em, types.LayerItem, 500, 200, 20, 20, 40)

	ls.Show()
	ls.SetTarget(sword)
	ls.Hide()
	em.DestroyEntity(sword)
	em.RemoveMarkedEntities()

	ls.Show()
	ls.SetTarget(shield)
	ls.SetText("Shield")

	label, _ := ecs.GetComponent[*components.NameLabelComponent](em, labelEntity)
	if !label.Visible {
		t.Fatal("label stays hidden while hovering the next item")
	}
	if label.Text != "Shield" || label.ScreenX != 400 {
		t.Errorf("label: got text=%q screenX=%v, want Shield at 400", label.Text, label.ScreenX)
	}
}
