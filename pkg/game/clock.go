package game

// GameClock 游戏内时间，由场景每帧推进
// 暂停或失去焦点时不推进，点击判定因此不受真实时间影响
type GameClock struct {
	elapsed float64
}

// NewGameClock 创建从 0 开始计时的时钟
func NewGameClock() *GameClock {
	return &GameClock{}
}

// Advance 推进 deltaTime 秒，负值被忽略
func (c *GameClock) Advance(deltaTime float64) {
	if deltaTime > 0 {
		c.elapsed += deltaTime
	}
}

// Now 返回累计的游戏时间（秒）
func (c *GameClock) Now() float64 {
	return c.elapsed
}
