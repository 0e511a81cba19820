package config

// 布局与输入配置常量

// 窗口
const (
	// GameWindowWidth 游戏逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 游戏逻辑屏幕高度
	GameWindowHeight = 600
	// TicksPerSecond 逻辑帧率
	TicksPerSecond = 60
)

// 输入分发器
const (
	// RaycastMaxDistance 光标/悬停射线的最大距离（世界单位）
	RaycastMaxDistance = 100.0

	// ClickThreshold 按下到释放的时长小于此值（秒）时额外发出 Click
	ClickThreshold = 0.1

	// AttackCursorHotspotDivisor 攻击光标热点 X = 图片宽度 / 5，Y = 0
	AttackCursorHotspotDivisor = 5
	// HandCursorHotspotDivisor 手形光标热点 X = 图片宽度 / 3，Y = 0
	HandCursorHotspotDivisor = 3
)

// 名称标签
const (
	// NameLabelOffsetY 标签相对目标投影点的垂直偏移（像素，负值向上）
	NameLabelOffsetY = -28.0
	// NameLabelPadding 标签文字四周的留白（像素）
	NameLabelPadding = 4.0
)

// 玩家
const (
	// PlayerDefaultSpeed 玩家移动速度（世界单位/秒）
	PlayerDefaultSpeed = 140.0
	// PlayerDefaultAttackRange 攻击范围半径（世界单位），同时用于绘制范围圈
	PlayerDefaultAttackRange = 90.0
	// PlayerDefaultAttackDamage 单次攻击伤害
	PlayerDefaultAttackDamage = 10
	// PlayerDefaultHP 初始生命值
	PlayerDefaultHP = 100
	// PlayerArriveDistance 判定到达目标点的距离
	PlayerArriveDistance = 2.0
	// AttackRingLineWidth 攻击范围圈线宽
	AttackRingLineWidth = 1.5
)

// 效果
const (
	// HitFlashDuration 怪物受击着色持续时间（秒）
	HitFlashDuration = 0.15
	// CameraFollowSpeed 镜头跟随插值系数（每秒）
	CameraFollowSpeed = 6.0
)

// HUD 面板（屏幕底部，阻挡世界交互）
const (
	HUDPanelHeight = 56.0
	HUDPanelY      = GameWindowHeight - HUDPanelHeight
)
