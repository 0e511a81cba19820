package components

import "github.com/decker502/rpgproto/pkg/types"

// PositionComponent 实体中心的世界坐标
type PositionComponent struct {
	X float64
	Y float64
}

// ColliderComponent 定义实体可被射线命中的区域
// 射线从镜头垂直射入地面，Depth 是命中点到镜头的距离，越小越靠前
type ColliderComponent struct {
	Layer   types.Layer // 所属层，用于射线掩码过滤
	Width   float64     // 碰撞盒宽度（世界单位）
	Height  float64     // 碰撞盒高度（世界单位）
	OffsetX float64     // 碰撞盒中心相对实体位置的X偏移量，正值向右
	OffsetY float64     // 碰撞盒中心相对实体位置的Y偏移量，正值向下
	Depth   float64     // 到镜头的距离
	Enabled bool        // 禁用后射线直接穿过
}

// Contains 检查世界坐标点是否落在碰撞盒内（边界包含在内）
func (c *ColliderComponent) Contains(pos *PositionComponent, worldX, worldY float64) bool {
	centerX := pos.X + c.OffsetX
	centerY := pos.Y + c.OffsetY
	halfW := c.Width / 2
	halfH := c.Height / 2
	return worldX >= centerX-halfW && worldX <= centerX+halfW &&
		worldY >= centerY-halfH && worldY <= centerY+halfH
}
