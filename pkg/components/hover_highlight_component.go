package components

import "image/color"

// OutlineComponent 轮廓高亮组件
// 鼠标悬停在物品或怪物上时由输入分发器开启，移开时关闭
type OutlineComponent struct {
	Enabled   bool
	Color     color.Color
	Thickness float32 // 描边宽度（像素）
}

// NewOutlineComponent 创建默认关闭的白色描边
func NewOutlineComponent() *OutlineComponent {
	return &OutlineComponent{
		Enabled:   false,
		Color:     color.White,
		Thickness: 2,
	}
}
