package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/cosmicdef/pkg/embedded"
)

// PowerUpConfig 强化道具配置
type PowerUpConfig struct {
	SpawnChance float64        `yaml:"spawnChance"` // 敌机被击毁时的掉落概率 [0,1]
	Duration    float64        `yaml:"duration"`    // 限时效果持续时间（秒）
	FallSpeed   float64        `yaml:"fallSpeed"`   // 道具下落速度
	MaxLifetime float64        `yaml:"maxLifetime"` // 未拾取道具的存活上限（秒）
	Weights     map[string]int `yaml:"weights"`     // 道具类型 -> 相对权重
}

// LoadPowerUpConfig 从嵌入资源加载强化道具配置
//
// 参数:
//   - filePath: 配置文件路径（如 "data/powerups.yaml"）
//
// 返回:
//   - *PowerUpConfig: 加载的配置
//   - error: 加载或验证失败时的错误
func LoadPowerUpConfig(filePath string) (*PowerUpConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read powerup config file: %w", err)
	}

	var config PowerUpConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse powerup YAML: %w", err)
	}

	if err := validatePowerUpConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid powerup config: %w", err)
	}

	return &config, nil
}

// DefaultPowerUpConfig 返回内置的默认强化道具配置
func DefaultPowerUpConfig() *PowerUpConfig {
	return &PowerUpConfig{
		SpawnChance: PowerUpSpawnChance,
		Duration:    PowerUpDuration,
		FallSpeed:   PowerUpFallSpeed,
		MaxLifetime: PowerUpMaxLifetime,
		Weights: map[string]int{
			"health":       25,
			"shield":       20,
			"rapid_fire":   20,
			"multi_shot":   15,
			"screen_clear": 10,
			"time_slow":    7,
			"homing":       3,
		},
	}
}

// validatePowerUpConfig 验证配置的有效性
func validatePowerUpConfig(config *PowerUpConfig) error {
	if config.SpawnChance < 0 || config.SpawnChance > 1 {
		return fmt.Errorf("spawnChance must be in [0,1], got %f", config.SpawnChance)
	}
	if config.Duration <= 0 {
		return fmt.Errorf("duration must be > 0, got %f", config.Duration)
	}
	if config.FallSpeed <= 0 {
		return fmt.Errorf("fallSpeed must be > 0, got %f", config.FallSpeed)
	}
	if config.MaxLifetime <= 0 {
		return fmt.Errorf("maxLifetime must be > 0, got %f", config.MaxLifetime)
	}

	if len(config.Weights) == 0 {
		return fmt.Errorf("weights cannot be empty")
	}
	total := 0
	for kind, weight := range config.Weights {
		if kind == "" {
			return fmt.Errorf("powerup type cannot be empty")
		}
		if weight < 0 {
			return fmt.Errorf("weight for %s must be >= 0, got %d", kind, weight)
		}
		total += weight
	}
	if total <= 0 {
		return fmt.Errorf("total weight must be > 0")
	}

	return nil
}
