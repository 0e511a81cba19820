package systems

import (
	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/input"
	"github.com/decker502/rpgproto/pkg/types"
	"github.com/decker502/rpgproto/pkg/utils"
)

// RaycastSystem 俯视世界的射线检测
//
// 射线从镜头垂直穿过屏幕点射向地面：
//   - 屏幕点经镜头换算为世界坐标
//   - 碰撞盒包含该点、层在掩码内、深度不超过最大距离的实体都被命中
//   - 返回深度最小的实体，深度相同取 ID 最小者
type RaycastSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewRaycastSystem 创建射线检测系统，cameraEntity 为 0 时屏幕坐标即世界坐标
func NewRaycastSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *RaycastSystem {
	return &RaycastSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
	}
}

// Raycast 实现 input.Raycaster
func (s *RaycastSystem) Raycast(screenX, screenY int, maxDistance float64, mask types.LayerMask) (input.Hit, bool) {
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	worldX, worldY := utils.ScreenToWorld(cam, float64(screenX), float64(screenY))

	var best input.Hit
	found := false

	// GetEntitiesWith 按 ID 升序返回，严格小于保证平局时保留较小的 ID
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ColliderComponent](s.entityManager) {
		collider, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)
		if !collider.Enabled || !mask.Contains(collider.Layer) || collider.Depth > maxDistance {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !collider.Contains(pos, worldX, worldY) {
			continue
		}

		if !found || collider.Depth < best.Distance {
			best = input.Hit{
				Entity:   id,
				Layer:    collider.Layer,
				Distance: collider.Depth,
				WorldX:   worldX,
				WorldY:   worldY,
			}
			found = true
		}
	}

	return best, found
}
