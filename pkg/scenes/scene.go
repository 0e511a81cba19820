package scenes

import (
	"github.com/decker502/rpgproto/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene
