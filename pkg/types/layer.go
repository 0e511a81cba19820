package types

import (
	"fmt"
	"strings"
)

// Layer 场景对象的粗分类，用于过滤射线检测结果并选择悬停效果
// 数值与编辑器中的层编号保持一致（0-5 为内置层）
type Layer int

const (
	// LayerDefault 未分类
	LayerDefault Layer = 0
	// LayerGround 可行走地面
	LayerGround Layer = 6
	// LayerObstacle 障碍物
	LayerObstacle Layer = 7
	// LayerMonster 怪物（可攻击）
	LayerMonster Layer = 8
	// LayerInteraction 可交互物件
	LayerInteraction Layer = 9
	// LayerItem 掉落物品
	LayerItem Layer = 10
)

// String 返回层的字符串表示
func (l Layer) String() string {
	switch l {
	case LayerDefault:
		return "Default"
	case LayerGround:
		return "Ground"
	case LayerObstacle:
		return "Obstacle"
	case LayerMonster:
		return "Monster"
	case LayerInteraction:
		return "Interaction"
	case LayerItem:
		return "Item"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// ParseLayer 把配置文件中的层名解析为 Layer（大小写不敏感）
func ParseLayer(name string) (Layer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "default", "":
		return LayerDefault, nil
	case "ground":
		return LayerGround, nil
	case "obstacle":
		return LayerObstacle, nil
	case "monster":
		return LayerMonster, nil
	case "interaction":
		return LayerInteraction, nil
	case "item":
		return LayerItem, nil
	}
	return LayerDefault, fmt.Errorf("unknown layer %q", name)
}

// LayerMask 层位掩码，第 n 位对应 Layer n
type LayerMask uint32

// MaskOf 返回包含给定层的掩码
func MaskOf(layers ...Layer) LayerMask {
	var mask LayerMask
	for _, l := range layers {
		if l < 0 || l > 31 {
			continue
		}
		mask |= 1 << uint(l)
	}
	return mask
}

// Contains 检查掩码是否包含指定层
func (m LayerMask) Contains(l Layer) bool {
	if l < 0 || l > 31 {
		return false
	}
	return m&(1<<uint(l)) != 0
}
