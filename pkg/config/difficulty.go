package config

import (
	"fmt"
	"sort"

	"github.com/gonewx/cosmicdef/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Difficulty 单个难度档位的倍率配置
// 倍率在会话开始时一次性应用到敌机属性和玩家伤害，核心内部不再读取难度
type Difficulty struct {
	Name             string  `yaml:"name"`             // 展示名称
	Order            int     `yaml:"order"`            // 菜单展示顺序（从易到难）
	EnemySpeedMult   float64 `yaml:"enemySpeedMult"`   // 敌机速度倍率
	EnemyHealthMult  float64 `yaml:"enemyHealthMult"`  // 敌机生命倍率
	SpawnRateMult    float64 `yaml:"spawnRateMult"`    // 生成速率倍率
	PlayerDamageMult float64 `yaml:"playerDamageMult"` // 玩家伤害倍率
	ScoreMult        float64 `yaml:"scoreMult"`        // 得分倍率
	BonusHealth      bool    `yaml:"bonusHealth"`      // 是否给予玩家 +20% 最大生命（低难度福利）
	Description      string  `yaml:"description"`      // 难度描述
}

// DifficultyConfig 难度配置文件结构
type DifficultyConfig struct {
	Difficulties map[string]Difficulty `yaml:"difficulties"` // 难度ID到配置的映射
	Default      string                `yaml:"default"`      // 默认难度ID
}

// LoadDifficulties 从嵌入的 YAML 文件加载难度配置
func LoadDifficulties(filepath string) (*DifficultyConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file %s: %w", filepath, err)
	}

	var config DifficultyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty YAML from %s: %w", filepath, err)
	}

	if err := validateDifficulties(&config); err != nil {
		return nil, fmt.Errorf("invalid difficulty config in %s: %w", filepath, err)
	}

	return &config, nil
}

// DefaultDifficulties 返回内置的五档难度配置
func DefaultDifficulties() *DifficultyConfig {
	return &DifficultyConfig{
		Default: "COMMANDER",
		Difficulties: map[string]Difficulty{
			"CADET": {
				Name: "Cadet", Order: 1, EnemySpeedMult: 0.7, EnemyHealthMult: 0.8,
				SpawnRateMult: 0.8, PlayerDamageMult: 1.5, ScoreMult: 1.0,
				BonusHealth: true, Description: "Perfect for beginners",
			},
			"PILOT": {
				Name: "Pilot", Order: 2, EnemySpeedMult: 0.85, EnemyHealthMult: 0.9,
				SpawnRateMult: 0.9, PlayerDamageMult: 1.2, ScoreMult: 1.2,
				BonusHealth: true, Description: "Slightly challenging",
			},
			"COMMANDER": {
				Name: "Commander", Order: 3, EnemySpeedMult: 1.0, EnemyHealthMult: 1.0,
				SpawnRateMult: 1.0, PlayerDamageMult: 1.0, ScoreMult: 1.5,
				Description: "Balanced experience",
			},
			"ACE": {
				Name: "Ace", Order: 4, EnemySpeedMult: 1.2, EnemyHealthMult: 1.3,
				SpawnRateMult: 1.2, PlayerDamageMult: 0.8, ScoreMult: 2.0,
				Description: "For experienced pilots",
			},
			"LEGEND": {
				Name: "Legend", Order: 5, EnemySpeedMult: 1.5, EnemyHealthMult: 1.5,
				SpawnRateMult: 1.4, PlayerDamageMult: 0.6, ScoreMult: 3.0,
				Description: "Ultimate challenge",
			},
		},
	}
}

// validateDifficulties 验证难度配置
func validateDifficulties(config *DifficultyConfig) error {
	if len(config.Difficulties) == 0 {
		return fmt.Errorf("at least one difficulty is required")
	}

	if config.Default == "" {
		return fmt.Errorf("default difficulty must be set")
	}
	if _, ok := config.Difficulties[config.Default]; !ok {
		return fmt.Errorf("default difficulty %q is not defined", config.Default)
	}

	for id, diff := range config.Difficulties {
		if diff.Name == "" {
			return fmt.Errorf("difficulty %s: name cannot be empty", id)
		}
		if diff.EnemySpeedMult <= 0 || diff.EnemyHealthMult <= 0 {
			return fmt.Errorf("difficulty %s: enemy multipliers must be positive", id)
		}
		if diff.PlayerDamageMult <= 0 {
			return fmt.Errorf("difficulty %s: playerDamageMult must be positive", id)
		}
		if diff.ScoreMult <= 0 {
			return fmt.Errorf("difficulty %s: scoreMult must be positive", id)
		}
	}

	return nil
}

// Get 获取指定难度，不存在时回退到默认难度
func (c *DifficultyConfig) Get(id string) Difficulty {
	if diff, ok := c.Difficulties[id]; ok {
		return diff
	}
	return c.Difficulties[c.Default]
}

// IDs 返回所有难度ID（按 Order 从易到难，供菜单稳定展示）
func (c *DifficultyConfig) IDs() []string {
	ids := make([]string, 0, len(c.Difficulties))
	for id := range c.Difficulties {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		di, dj := c.Difficulties[ids[i]], c.Difficulties[ids[j]]
		if di.Order != dj.Order {
			return di.Order < dj.Order
		}
		return ids[i] < ids[j]
	})
	return ids
}
