package input

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageCursor 自绘光标
// 隐藏系统光标，每帧在指针位置减去热点处绘制当前图片
type ImageCursor struct {
	image   *ebiten.Image
	hotspot image.Point
}

// NewImageCursor 创建自绘光标
func NewImageCursor() *ImageCursor {
	return &ImageCursor{}
}

// SetCursor 实现 Cursor
func (c *ImageCursor) SetCursor(img *ebiten.Image, hotspot image.Point) {
	c.image = img
	c.hotspot = hotspot
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

// Image 返回当前光标图片和热点
func (c *ImageCursor) Image() (*ebiten.Image, image.Point) {
	return c.image, c.hotspot
}

// Draw 在屏幕坐标 (x, y) 处绘制光标
func (c *ImageCursor) Draw(screen *ebiten.Image, x, y int) {
	if c.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x-c.hotspot.X), float64(y-c.hotspot.Y))
	screen.DrawImage(c.image, op)
}

// SystemCursor 把光标图片映射为系统光标形状（关闭自绘光标时使用）
type SystemCursor struct {
	shapes map[*ebiten.Image]ebiten.CursorShapeType
	last   ebiten.CursorShapeType
}

// NewSystemCursor 创建系统光标适配器
// shapes 指定每张光标图片对应的系统形状，未登记的图片使用默认箭头
func NewSystemCursor(shapes map[*ebiten.Image]ebiten.CursorShapeType) *SystemCursor {
	return &SystemCursor{shapes: shapes, last: ebiten.CursorShapeDefault}
}

// SetCursor 实现 Cursor，热点由系统决定
func (c *SystemCursor) SetCursor(img *ebiten.Image, _ image.Point) {
	shape, ok := c.shapes[img]
	if !ok {
		log.Printf("[SystemCursor] Unknown cursor image, using default shape")
		shape = ebiten.CursorShapeDefault
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetCursorShape(shape)
	c.last = shape
}

// Shape 返回最后设置的系统形状
func (c *SystemCursor) Shape() ebiten.CursorShapeType {
	return c.last
}

// SwitchCursor 在自绘光标和系统光标之间切换，切换后重新应用当前图片
type SwitchCursor struct {
	custom    *ImageCursor
	system    *SystemCursor
	useCustom bool

	img     *ebiten.Image
	hotspot image.Point
}

// NewSwitchCursor 创建可切换光标
func NewSwitchCursor(custom *ImageCursor, system *SystemCursor, useCustom bool) *SwitchCursor {
	return &SwitchCursor{custom: custom, system: system, useCustom: useCustom}
}

// SetCursor 实现 Cursor
func (c *SwitchCursor) SetCursor(img *ebiten.Image, hotspot image.Point) {
	c.img = img
	c.hotspot = hotspot
	c.active().SetCursor(img, hotspot)
}

// SetCustom 切换光标模式
func (c *SwitchCursor) SetCustom(enabled bool) {
	if c.useCustom == enabled {
		return
	}
	c.useCustom = enabled
	if !enabled {
		c.custom.image = nil
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	if c.img != nil {
		c.active().SetCursor(c.img, c.hotspot)
	}
}

// Custom 是否使用自绘光标
func (c *SwitchCursor) Custom() bool {
	return c.useCustom
}

// Draw 自绘模式下在 (x, y) 处绘制光标
func (c *SwitchCursor) Draw(screen *ebiten.Image, x, y int) {
	if c.useCustom {
		c.custom.Draw(screen, x, y)
	}
}

func (c *SwitchCursor) active() Cursor {
	if c.useCustom {
		return c.custom
	}
	return c.system
}
