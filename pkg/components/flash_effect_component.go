package components

import "image/color"

// FlashEffectComponent 受击着色效果
// 持续期间实体及其子节点使用 Color 着色，结束后还原为 BaseColor
type FlashEffectComponent struct {
	Duration float64 // 持续时间（秒）
	Elapsed  float64 // 已经过的时间（秒）
	Color    color.RGBA
	IsActive bool
}
