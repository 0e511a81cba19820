package config

import (
	"errors"
	"fmt"

	"github.com/decker502/rpgproto/pkg/embedded"
	"github.com/decker502/rpgproto/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene 场景配置未通过校验
var ErrInvalidScene = errors.New("invalid scene config")

// 场景对象种类
const (
	KindGround   = "ground"
	KindObstacle = "obstacle"
	KindMonster  = "monster"
	KindItem     = "item"
)

// SceneObject 场景中的一个对象
type SceneObject struct {
	Kind   string  `yaml:"kind"`   // ground / obstacle / monster / item
	Name   string  `yaml:"name"`   // 显示名称
	X      float64 `yaml:"x"`      // 中心世界坐标
	Y      float64 `yaml:"y"`      // 中心世界坐标
	Width  float64 `yaml:"width"`  // 碰撞盒宽度
	Height float64 `yaml:"height"` // 碰撞盒高度
	Depth  float64 `yaml:"depth"`  // 到镜头的距离，缺省按种类取值
	Color  string  `yaml:"color"`  // 填充色 #RRGGBB，可选

	// 物品
	Tier  string `yaml:"tier,omitempty"`
	Type  string `yaml:"type,omitempty"`
	Value int    `yaml:"value,omitempty"`

	// 怪物
	HP int `yaml:"hp,omitempty"`
}

// PlayerSpawn 玩家出生点
type PlayerSpawn struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
}

// SceneConfig 场景配置文件结构
//
// 示例：
//
//	name: meadow
//	world: {width: 1600, height: 1200}
//	player: {x: 400, y: 300}
//	objects:
//	  - {kind: monster, name: Slime, x: 520, y: 300, width: 40, height: 32, hp: 30}
//	  - {kind: item, name: Sword, x: 300, y: 360, width: 24, height: 24, tier: rare}
type SceneConfig struct {
	Name  string `yaml:"name"`
	World struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"world"`
	Player  PlayerSpawn   `yaml:"player"`
	Objects []SceneObject `yaml:"objects"`
}

// 各种类的默认深度：物品贴近镜头，地面最远
var defaultDepths = map[string]float64{
	KindItem:     40,
	KindMonster:  50,
	KindObstacle: 55,
	KindGround:   90,
}

// LoadSceneConfig 从嵌入资源加载场景配置
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig 解析并校验 YAML 场景数据，补齐缺省值
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	if err := validateSceneConfig(&cfg); err != nil {
		return nil, err
	}

	for i := range cfg.Objects {
		obj := &cfg.Objects[i]
		if obj.Depth == 0 {
			obj.Depth = defaultDepths[obj.Kind]
		}
	}
	if cfg.Player.Speed == 0 {
		cfg.Player.Speed = PlayerDefaultSpeed
	}

	return &cfg, nil
}

// validateSceneConfig 验证场景配置的完整性和合法性
func validateSceneConfig(cfg *SceneConfig) error {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive, got %.0fx%.0f",
			ErrInvalidScene, cfg.World.Width, cfg.World.Height)
	}

	for i, obj := range cfg.Objects {
		if _, ok := defaultDepths[obj.Kind]; !ok {
			return fmt.Errorf("%w: object %d: unknown kind %q", ErrInvalidScene, i, obj.Kind)
		}
		if obj.Width <= 0 || obj.Height <= 0 {
			return fmt.Errorf("%w: object %d (%s): size must be positive", ErrInvalidScene, i, obj.Name)
		}
		if obj.Depth < 0 {
			return fmt.Errorf("%w: object %d (%s): depth cannot be negative", ErrInvalidScene, i, obj.Name)
		}
		if _, err := ParseHexColor(obj.Color); obj.Color != "" && err != nil {
			return fmt.Errorf("%w: object %d (%s): %v", ErrInvalidScene, i, obj.Name, err)
		}

		switch obj.Kind {
		case KindItem:
			if obj.Name == "" {
				return fmt.Errorf("%w: object %d: item requires a name", ErrInvalidScene, i)
			}
			if _, err := types.ParseItemTier(obj.Tier); err != nil {
				return fmt.Errorf("%w: item %s: %v", ErrInvalidScene, obj.Name, err)
			}
			if _, err := types.ParseItemType(obj.Type); err != nil {
				return fmt.Errorf("%w: item %s: %v", ErrInvalidScene, obj.Name, err)
			}
		case KindMonster:
			if obj.HP <= 0 {
				return fmt.Errorf("%w: monster %s: hp must be positive, got %d", ErrInvalidScene, obj.Name, obj.HP)
			}
		}
	}

	return nil
}
