package components

import (
	"image/color"

	"github.com/decker502/rpgproto/pkg/ecs"
)

// NameLabelComponent 悬浮名称标签
// 场景中只有一个实例，初始隐藏，悬停物品时显示在物品上方
type NameLabelComponent struct {
	Visible bool
	Text    string
	Color   color.Color

	// 屏幕坐标（标签中心），由 LabelSystem 每帧根据跟随目标更新
	ScreenX float64
	ScreenY float64

	// 样式
	BackgroundColor color.Color
	Padding         float64
}

// NewNameLabelComponent 创建隐藏状态的标签
func NewNameLabelComponent() *NameLabelComponent {
	return &NameLabelComponent{
		Visible:         false,
		Color:           color.White,
		BackgroundColor: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		Padding:         4,
	}
}

// FollowTargetComponent 让实体在屏幕上跟随另一个实体的投影位置
type FollowTargetComponent struct {
	Target  ecs.EntityID // 0 表示没有目标
	OffsetX float64      // 屏幕偏移（像素）
	OffsetY float64      // 屏幕偏移（像素），负值向上
}
