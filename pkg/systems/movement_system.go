package systems

import (
	"math"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
)

// MovementSystem 把玩家移向点击的目标点
type MovementSystem struct {
	entityManager *ecs.EntityManager
	worldWidth    float64
	worldHeight   float64
}

// NewMovementSystem 创建移动系统，位置被限制在 [0, worldWidth] x [0, worldHeight]
func NewMovementSystem(em *ecs.EntityManager, worldWidth, worldHeight float64) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		worldWidth:    worldWidth,
		worldHeight:   worldHeight,
	}
}

// Update 按速度向目标点移动一步，到达后停止
func (s *MovementSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		if !player.Moving {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		dx := player.DestX - pos.X
		dy := player.DestY - pos.Y
		dist := math.Hypot(dx, dy)
		step := player.Speed * dt

		if dist <= config.PlayerArriveDistance || step >= dist {
			pos.X, pos.Y = player.DestX, player.DestY
			player.Moving = false
		} else {
			pos.X += dx / dist * step
			pos.Y += dy / dist * step
		}
		s.clamp(pos)
	}
}

// Translate 直接平移实体（键盘移动），并限制在世界范围内
func (s *MovementSystem) Translate(id ecs.EntityID, dx, dy float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos.X += dx
	pos.Y += dy
	s.clamp(pos)
}

func (s *MovementSystem) clamp(pos *components.PositionComponent) {
	pos.X = math.Max(0, math.Min(s.worldWidth, pos.X))
	pos.Y = math.Max(0, math.Min(s.worldHeight, pos.Y))
}
