package components

// UIElementComponent 标记屏幕空间的 UI 元素
// BlocksPointer 为 true 时，指针位于该元素上方会让输入分发器跳过本帧的世界交互
type UIElementComponent struct {
	X, Y          float64 // 左上角屏幕坐标
	Width, Height float64
	Visible       bool
	BlocksPointer bool
}

// Contains 检查屏幕坐标是否在元素范围内
func (u *UIElementComponent) Contains(x, y float64) bool {
	return x >= u.X && x < u.X+u.Width && y >= u.Y && y < u.Y+u.Height
}
