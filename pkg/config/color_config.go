package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// 各种类对象的默认填充色
var (
	GroundColor     = color.RGBA{R: 86, G: 125, B: 70, A: 255}
	ObstacleColor   = color.RGBA{R: 110, G: 100, B: 90, A: 255}
	MonsterColor    = color.RGBA{R: 170, G: 60, B: 160, A: 255}
	ItemColor       = color.RGBA{R: 200, G: 170, B: 90, A: 255}
	PlayerColor     = color.RGBA{R: 70, G: 140, B: 220, A: 255}
	HitFlashColor   = color.RGBA{R: 255, G: 40, B: 40, A: 255}
	AttackRingColor = color.RGBA{R: 255, G: 255, B: 255, A: 120}
	HUDPanelColor   = color.RGBA{R: 20, G: 20, B: 28, A: 220}
)

// ParseHexColor 解析 "#RRGGBB" / "#RRGGBBAA"（"#" 可省略），无 alpha 时为 255
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
