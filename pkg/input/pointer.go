package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// appendTouchIDs 触摸来源，测试中替换
var appendTouchIDs = ebiten.AppendTouchIDs

// EbitenPointer 基于 Ebitengine 的 Pointer 实现
// 同时支持鼠标和触摸，优先使用第一个触摸点
type EbitenPointer struct {
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
}

// NewEbitenPointer 创建指针输入源
func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{}
}

// AnyKeyPressed 任意触摸、键盘按键或鼠标按键按下
func (p *EbitenPointer) AnyKeyPressed() bool {
	if p.touching() {
		return true
	}
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	if len(p.keys) > 0 {
		return true
	}
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if ebiten.IsMouseButtonPressed(b) {
			return true
		}
	}
	return false
}

// PrimaryPressed 鼠标左键或任意触摸
func (p *EbitenPointer) PrimaryPressed() bool {
	if p.touching() {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Position 触摸位置（有触摸时）或鼠标位置
func (p *EbitenPointer) Position() (int, int) {
	if p.touching() {
		return ebiten.TouchPosition(p.touchIDs[0])
	}
	return ebiten.CursorPosition()
}

func (p *EbitenPointer) touching() bool {
	p.touchIDs = appendTouchIDs(p.touchIDs[:0])
	return len(p.touchIDs) > 0
}
