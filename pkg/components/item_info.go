package components

import "github.com/decker502/rpgproto/pkg/types"

// ItemInfoComponent 掉落物品的信息
type ItemInfoComponent struct {
	Name  string         // 显示名称（悬停标签文本）
	Tier  types.ItemTier // 稀有度，决定标签颜色
	Type  types.ItemType // 拾取方式
	Value int            // Immediate 物品的回复量
}
