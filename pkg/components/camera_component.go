package components

import "github.com/decker502/rpgproto/pkg/ecs"

// CameraComponent 俯视镜头
// X/Y 为屏幕左上角对应的世界坐标
type CameraComponent struct {
	X, Y float64
	Zoom float64

	// 跟随目标，0 表示静止镜头
	Target ecs.EntityID
	// FollowSpeed 插值系数（每秒），越大跟随越紧
	FollowSpeed float64

	// 世界边界（镜头不会移出此范围）
	WorldWidth  float64
	WorldHeight float64
}
