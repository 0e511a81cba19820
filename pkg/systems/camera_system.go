package systems

import (
	"math"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/utils"
)

// CameraSystem 镜头平滑跟随目标，并限制在世界边界内
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	viewWidth     float64 // 视口尺寸（屏幕像素）
	viewHeight    float64
}

// NewCameraSystem 创建镜头系统，视口为游戏窗口大小
func NewCameraSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
		viewWidth:     config.GameWindowWidth,
		viewHeight:    config.GameWindowHeight,
	}
}

// Update 向目标插值一步
func (s *CameraSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	if !ok || cam.Target == 0 {
		return
	}

	targetX, targetY, ok := s.desiredPosition(cam)
	if !ok {
		return
	}

	t := utils.Clamp01(cam.FollowSpeed * dt)
	cam.X = utils.Lerp(cam.X, targetX, t)
	cam.Y = utils.Lerp(cam.Y, targetY, t)
	s.clamp(cam)
}

// SnapToTarget 立即把镜头移到目标位置（场景加载时使用）
func (s *CameraSystem) SnapToTarget() {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	if !ok {
		return
	}
	if x, y, ok := s.desiredPosition(cam); ok {
		cam.X, cam.Y = x, y
		s.clamp(cam)
	}
}

// desiredPosition 让目标位于视口中心的镜头位置
func (s *CameraSystem) desiredPosition(cam *components.CameraComponent) (float64, float64, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, cam.Target)
	if !ok {
		return 0, 0, false
	}
	zoom := zoomOrOne(cam.Zoom)
	return pos.X - s.viewWidth/(2*zoom), pos.Y - s.viewHeight/(2*zoom), true
}

// clamp 镜头范围限制（防止移出世界边界）；世界比视口小时贴住原点
func (s *CameraSystem) clamp(cam *components.CameraComponent) {
	zoom := zoomOrOne(cam.Zoom)
	maxX := math.Max(0, cam.WorldWidth-s.viewWidth/zoom)
	maxY := math.Max(0, cam.WorldHeight-s.viewHeight/zoom)
	cam.X = math.Max(0, math.Min(maxX, cam.X))
	cam.Y = math.Max(0, math.Min(maxY, cam.Y))
}

func zoomOrOne(zoom float64) float64 {
	if zoom <= 0 {
		return 1
	}
	return zoom
}
