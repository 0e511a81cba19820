package components

// PlayerComponent 玩家角色状态
type PlayerComponent struct {
	HP    int
	MaxHP int
	Speed float64 // 移动速度（世界单位/秒）

	AttackRange  float64
	AttackDamage int

	// 点击移动目标点
	DestX, DestY float64
	Moving       bool

	// 背包中的物品名（Obtain 类物品）
	Inventory []string
}

// MonsterComponent 怪物状态
type MonsterComponent struct {
	Name  string
	HP    int
	MaxHP int
}
