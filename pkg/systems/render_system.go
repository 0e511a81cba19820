package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 调试碰撞盒边框颜色
var colliderDebugColor = color.RGBA{R: 0, G: 255, B: 0, A: 180}

// 没有碰撞盒的实体的绘制深度
const defaultRenderDepth = 50.0

// RenderSystem 绘制俯视世界、名称标签和 HUD
//
// 绘制顺序：
//  1. 世界实体按深度从远到近（地面 → 障碍物 → 怪物 → 物品），子节点紧跟父节点
//  2. 折线（攻击范围圈）
//  3. UI 面板
//  4. 名称标签
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	face          text.Face
	showColliders bool

	// 每帧复用，避免重复分配
	drawList []renderItem
}

type renderItem struct {
	id    ecs.EntityID
	depth float64
}

// NewRenderSystem 创建渲染系统，文字使用 basicfont 7x13
func NewRenderSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetShowColliders 开关碰撞盒调试边框
func (s *RenderSystem) SetShowColliders(show bool) {
	s.showColliders = show
}

// Face 返回 HUD/标签使用的字体
func (s *RenderSystem) Face() text.Face {
	return s.face
}

// Draw 绘制世界、UI 面板和名称标签
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)

	for _, item := range s.sortedWorldEntities() {
		s.drawEntity(screen, cam, item.id)
	}
	s.drawLines(screen, cam)
	s.drawPanels(screen)
	s.drawLabels(screen)
}

// sortedWorldEntities 有位置和渲染器的根实体，按深度从远到近，深度相同按 ID
func (s *RenderSystem) sortedWorldEntities() []renderItem {
	s.drawList = s.drawList[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.RendererComponent](s.entityManager) {
		depth := defaultRenderDepth
		if collider, ok := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id); ok {
			depth = collider.Depth
		}
		s.drawList = append(s.drawList, renderItem{id: id, depth: depth})
	}
	sort.SliceStable(s.drawList, func(i, j int) bool {
		return s.drawList[i].depth > s.drawList[j].depth
	})
	return s.drawList
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, cam *components.CameraComponent, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	renderer, _ := ecs.GetComponent[*components.RendererComponent](s.entityManager, id)
	collider, hasCollider := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)

	w, h := renderer.Width, renderer.Height
	if hasCollider && w == 0 && h == 0 {
		w, h = collider.Width, collider.Height
	}
	x, y, sw, sh := s.screenRect(cam, pos.X+renderer.OffsetX, pos.Y+renderer.OffsetY, w, h)

	if renderer.Visible {
		vector.DrawFilledRect(screen, x, y, sw, sh, renderer.Color, false)
	}
	s.drawChildren(screen, cam, id, pos.X, pos.Y)

	if outline, ok := ecs.GetComponent[*components.OutlineComponent](s.entityManager, id); ok && outline.Enabled {
		t := outline.Thickness
		vector.StrokeRect(screen, x-t, y-t, sw+2*t, sh+2*t, t, outline.Color, false)
	}

	if s.showColliders && hasCollider && collider.Enabled {
		cx, cy, cw, ch := s.screenRect(cam, pos.X+collider.OffsetX, pos.Y+collider.OffsetY, collider.Width, collider.Height)
		vector.StrokeRect(screen, cx, cy, cw, ch, 1, colliderDebugColor, false)
	}
}

// drawChildren 没有自己位置的子节点相对父实体位置绘制
func (s *RenderSystem) drawChildren(screen *ebiten.Image, cam *components.CameraComponent, id ecs.EntityID, baseX, baseY float64) {
	hierarchy, ok := ecs.GetComponent[*components.HierarchyComponent](s.entityManager, id)
	if !ok {
		return
	}
	for _, child := range hierarchy.Children {
		if child == id || ecs.HasComponent[*components.PositionComponent](s.entityManager, child) {
			continue
		}
		renderer, ok := ecs.GetComponent[*components.RendererComponent](s.entityManager, child)
		if !ok {
			continue
		}
		cx, cy := baseX+renderer.OffsetX, baseY+renderer.OffsetY
		if renderer.Visible {
			x, y, w, h := s.screenRect(cam, cx, cy, renderer.Width, renderer.Height)
			vector.DrawFilledRect(screen, x, y, w, h, renderer.Color, false)
		}
		s.drawChildren(screen, cam, child, cx, cy)
	}
}

// screenRect 以 (centerX, centerY) 为中心的世界矩形 → 屏幕左上角和尺寸
func (s *RenderSystem) screenRect(cam *components.CameraComponent, centerX, centerY, w, h float64) (float32, float32, float32, float32) {
	zoom := 1.0
	if cam != nil && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	x, y := utils.WorldToScreen(cam, centerX-w/2, centerY-h/2)
	return float32(x), float32(y), float32(w * zoom), float32(h * zoom)
}

// drawLines 绘制折线；局部坐标的顶点 (X, Z) 相对实体位置
func (s *RenderSystem) drawLines(screen *ebiten.Image, cam *components.CameraComponent) {
	for _, id := range ecs.GetEntitiesWith1[*components.LineRendererComponent](s.entityManager) {
		line, _ := ecs.GetComponent[*components.LineRendererComponent](s.entityManager, id)
		if !line.Visible || len(line.Points) < 2 {
			continue
		}

		var baseX, baseY float64
		if !line.UseWorldSpace {
			pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
			if !ok {
				continue
			}
			baseX, baseY = pos.X, pos.Y
		}

		last := len(line.Points) - 1
		for i := 0; i < last; i++ {
			p0, p1 := line.Points[i], line.Points[i+1]
			x0, y0 := utils.WorldToScreen(cam, baseX+p0.X, baseY+p0.Z)
			x1, y1 := utils.WorldToScreen(cam, baseX+p1.X, baseY+p1.Z)
			width := utils.Lerp(line.StartWidth, line.EndWidth, float64(i)/float64(last))
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), line.Color, true)
		}
	}
}

func (s *RenderSystem) drawPanels(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.UIElementComponent](s.entityManager) {
		ui, _ := ecs.GetComponent[*components.UIElementComponent](s.entityManager, id)
		if !ui.Visible {
			continue
		}
		vector.DrawFilledRect(screen, float32(ui.X), float32(ui.Y), float32(ui.Width), float32(ui.Height), config.HUDPanelColor, false)
	}
}

// drawLabels 标签以 (ScreenX, ScreenY) 为中心绘制，带半透明底色
func (s *RenderSystem) drawLabels(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.NameLabelComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.NameLabelComponent](s.entityManager, id)
		if !label.Visible || label.Text == "" {
			continue
		}

		w, h := text.Measure(label.Text, s.face, 0)
		x := label.ScreenX - w/2
		y := label.ScreenY - h/2

		if label.BackgroundColor != nil {
			p := label.Padding
			vector.DrawFilledRect(screen, float32(x-p), float32(y-p), float32(w+2*p), float32(h+2*p), label.BackgroundColor, false)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		if label.Color != nil {
			op.ColorScale.ScaleWithColor(label.Color)
		}
		text.Draw(screen, label.Text, s.face, op)
	}
}

// DrawText 在屏幕坐标 (x, y) 处逐行绘制文字（HUD 使用）
func (s *RenderSystem) DrawText(screen *ebiten.Image, lines []string, x, y float64, clr color.Color) {
	lineHeight := s.face.Metrics().HAscent + s.face.Metrics().HDescent + 2
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, s.face, op)
	}
}
