package utils

import (
	"math"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
)

// 范围圈参数
const (
	// CircleSegments 圆周分段数，顶点数为分段数 + 1（首尾闭合）
	CircleSegments = 360
	// CircleRadiusInset 绘制半径相对逻辑半径的内缩量，让线宽落在范围内侧
	CircleRadiusInset = 0.6
)

// CirclePoints 计算地面平面（XZ）上以原点为中心的圆周顶点
// 第 i 个顶点角度为 i*360/segments 度，坐标为 (sin θ·r, 0, cos θ·r)
// segments <= 0 时返回 nil
func CirclePoints(radius float64, segments int) []components.LinePoint {
	if segments <= 0 {
		return nil
	}

	points := make([]components.LinePoint, segments+1)
	for i := range points {
		radian := float64(i) * 360.0 / float64(segments) * math.Pi / 180.0
		points[i] = components.LinePoint{
			X: math.Sin(radian) * radius,
			Y: 0,
			Z: math.Cos(radian) * radius,
		}
	}
	return points
}

// DrawCircle 在实体上挂一个局部坐标系的圆形折线（范围圈）
// 实体没有 LineRendererComponent 时自动添加；返回该组件，实体不存在时返回 nil
func DrawCircle(em *ecs.EntityManager, id ecs.EntityID, radius, lineWidth float64) *components.LineRendererComponent {
	line, ok := ecs.GetOrAddComponent(em, id, components.NewLineRendererComponent)
	if !ok {
		return nil
	}

	line.UseWorldSpace = false
	line.StartWidth = lineWidth
	line.EndWidth = lineWidth
	line.Points = CirclePoints(radius-CircleRadiusInset, CircleSegments)
	return line
}
