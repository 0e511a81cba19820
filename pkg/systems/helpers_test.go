package systems

import (
	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/types"
)

// addCollidable 创建带位置和碰撞盒的实体
func addCollidable(em *ecs.EntityManager, layer types.Layer, x, y, w, h, depth float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ColliderComponent{
		Layer:   layer,
		Width:   w,
		Height:  h,
		Depth:   depth,
		Enabled: true,
	})
	return id
}

// addCamera 创建镜头实体
func addCamera(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		X:           x,
		Y:           y,
		Zoom:        1,
		FollowSpeed: 6,
		WorldWidth:  1600,
		WorldHeight: 1200,
	})
	return id
}
