// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// MouseEvent 输入分发器发出的语义鼠标事件
// Click 是派生事件：短按释放时在 PointerUp 之前发出
type MouseEvent int

const (
	// MousePress 主按键按住期间每帧发出（包括按下的那一帧）
	MousePress MouseEvent = iota
	// MousePointerDown 主按键从抬起变为按下的那一帧
	MousePointerDown
	// MousePointerUp 主按键释放的那一帧
	MousePointerUp
	// MouseClick 按住时长小于点击阈值的释放
	MouseClick
)

// String 返回鼠标事件的字符串表示
func (e MouseEvent) String() string {
	switch e {
	case MousePress:
		return "Press"
	case MousePointerDown:
		return "PointerDown"
	case MousePointerUp:
		return "PointerUp"
	case MouseClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// CursorType 当前应用的光标外观
type CursorType int

const (
	// CursorNone 尚未设置过光标
	CursorNone CursorType = iota
	// CursorAttack 指向可攻击目标
	CursorAttack
	// CursorHand 普通手形
	CursorHand
)

// String 返回光标类型的字符串表示
func (c CursorType) String() string {
	switch c {
	case CursorNone:
		return "None"
	case CursorAttack:
		return "Attack"
	case CursorHand:
		return "Hand"
	default:
		return "Unknown"
	}
}
