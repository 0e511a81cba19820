package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/config"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// HUD 布局
const (
	hudPadding     = 8.0
	hudStatusX     = 260.0
	hudStatusWidth = 320.0
	hudHintX       = 600.0
)

var (
	hudTextColor   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	hudStatusColor = color.RGBA{R: 255, G: 220, B: 120, A: 255}
	hudHintColor   = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

// drawHUD 底部面板：生命/背包、最近一条提示、按键说明
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	y := config.HUDPanelY + hudPadding
	s.renderSystem.DrawText(screen, s.playerLines(), hudPadding, y, hudTextColor)

	if status := s.playerControlSystem.Status(); status != "" {
		lines := utils.WrapText(status, s.renderSystem.Face(), hudStatusWidth)
		s.renderSystem.DrawText(screen, lines, hudStatusX, y, hudStatusColor)
	}

	s.renderSystem.DrawText(screen, []string{"F1 colliders", "F2 cursor", "C  copy name"}, hudHintX, y, hudHintColor)
}

// playerLines 玩家状态文本
func (s *GameScene) playerLines() []string {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.world.Player)
	if !ok {
		return nil
	}

	bag := "(empty)"
	if len(player.Inventory) > 0 {
		bag = strings.Join(player.Inventory, ", ")
	}
	return []string{
		fmt.Sprintf("%s  HP %d/%d", s.sceneName, player.HP, player.MaxHP),
		"Bag: " + bag,
	}
}
