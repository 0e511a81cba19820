package utils

// 插值工具
// 所有缓动函数接受进度 t ∈ [0, 1]，越界时先截断

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutQuad 二次方缓出：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b（t 不截断）
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColorChannel 在两个颜色通道之间插值
func LerpColorChannel(a, b uint8, t float64) uint8 {
	return uint8(Lerp(float64(a), float64(b), Clamp01(t)) + 0.5)
}
