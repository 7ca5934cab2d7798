package scenes

import (
	"github.com/decker502/arkick/pkg/game"
)

// Scene 是 game.Scene 的别名，本包中的场景都通过 game.SceneManager 切换
type Scene = game.Scene
