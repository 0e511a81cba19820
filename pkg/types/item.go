package types

import (
	"fmt"
	"strings"
)

// ItemType 物品的拾取方式
type ItemType int

const (
	// ItemImmediate 拾取时立即生效（如回复药水）
	ItemImmediate ItemType = iota
	// ItemObtain 拾取后放入背包
	ItemObtain
)

// String 返回物品类型的字符串表示
func (t ItemType) String() string {
	switch t {
	case ItemImmediate:
		return "Immediate"
	case ItemObtain:
		return "Obtain"
	default:
		return "Unknown"
	}
}

// ParseItemType 解析配置中的物品类型
func ParseItemType(name string) (ItemType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "immediate":
		return ItemImmediate, nil
	case "obtain", "":
		return ItemObtain, nil
	}
	return ItemObtain, fmt.Errorf("unknown item type %q", name)
}

// ItemTier 物品稀有度，决定名称标签的颜色
type ItemTier int

const (
	// TierNormal 普通（白色）
	TierNormal ItemTier = iota
	// TierRare 稀有（蓝色）
	TierRare
	// TierLegend 传说（黄色）
	TierLegend
)

// String 返回稀有度的字符串表示
func (t ItemTier) String() string {
	switch t {
	case TierNormal:
		return "Normal"
	case TierRare:
		return "Rare"
	case TierLegend:
		return "Legend"
	default:
		return "Unknown"
	}
}

// ParseItemTier 解析配置中的稀有度，空字符串视为 Normal
func ParseItemTier(name string) (ItemTier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "":
		return TierNormal, nil
	case "rare":
		return TierRare, nil
	case "legend", "legendary":
		return TierLegend, nil
	}
	return TierNormal, fmt.Errorf("unknown item tier %q", name)
}
