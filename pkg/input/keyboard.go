package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard 按键状态查询
type Keyboard interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenKeyboard 基于 Ebitengine 的 Keyboard 实现
type EbitenKeyboard struct{}

// IsKeyPressed 按键当前是否按住
func (EbitenKeyboard) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsKeyJustPressed 按键是否在本帧刚按下
func (EbitenKeyboard) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
