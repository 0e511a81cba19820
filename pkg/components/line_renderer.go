package components

import "image/color"

// LinePoint 线段顶点
// 地面平面为 XZ，俯视渲染时 Z 映射到屏幕 Y
type LinePoint struct {
	X, Y, Z float64
}

// LineRendererComponent 折线渲染
type LineRendererComponent struct {
	Points        []LinePoint
	StartWidth    float64
	EndWidth      float64
	UseWorldSpace bool // false 时顶点相对实体位置
	Color         color.Color
	Visible       bool
}

// NewLineRendererComponent 创建空折线
func NewLineRendererComponent() *LineRendererComponent {
	return &LineRendererComponent{
		StartWidth:    1,
		EndWidth:      1,
		UseWorldSpace: true,
		Color:         color.White,
		Visible:       true,
	}
}
