// Package utils 提供坐标、颜色、几何等通用工具函数
//
// # 坐标系统
//
//   - 世界坐标：俯视地面平面，原点在地图左上角
//   - 屏幕坐标：相对游戏窗口左上角，随镜头移动
//
// 转换公式：
//
//	screenX = (worldX - camera.X) * zoom
//	worldX  = screenX / zoom + camera.X
package utils

import (
	"math"

	"github.com/decker502/rpgproto/pkg/components"
)

// zoomOf 返回镜头缩放，未设置时为 1
func zoomOf(cam *components.CameraComponent) float64 {
	if cam == nil || cam.Zoom <= 0 {
		return 1
	}
	return cam.Zoom
}

// WorldToScreen 世界坐标 → 屏幕坐标；cam 为 nil 时视为原点镜头
func WorldToScreen(cam *components.CameraComponent, worldX, worldY float64) (float64, float64) {
	zoom := zoomOf(cam)
	if cam == nil {
		return worldX, worldY
	}
	return (worldX - cam.X) * zoom, (worldY - cam.Y) * zoom
}

// ScreenToWorld 屏幕坐标 → 世界坐标（即"从镜头穿过屏幕点的射线"与地面的交点）
func ScreenToWorld(cam *components.CameraComponent, screenX, screenY float64) (float64, float64) {
	zoom := zoomOf(cam)
	if cam == nil {
		return screenX, screenY
	}
	return screenX/zoom + cam.X, screenY/zoom + cam.Y
}

// Distance 两点间距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
