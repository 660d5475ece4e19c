package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/cosmicdef/pkg/embedded"
)

// SpawnTier 一个波次区间内的敌机类型权重表
type SpawnTier struct {
	MaxWave int            `yaml:"maxWave"` // 该权重表适用的最大波次（0 表示不设上限）
	Weights map[string]int `yaml:"weights"` // 敌机类型 -> 相对权重
}

// SpawnRulesConfig 敌机生成规则配置
type SpawnRulesConfig struct {
	Tiers []SpawnTier `yaml:"tiers"` // 按 maxWave 升序排列的权重表列表
}

// LoadSpawnRules 从嵌入资源加载敌机生成规则配置
//
// 参数:
//   - filePath: 配置文件路径（如 "data/spawn_rules.yaml"）
//
// 返回:
//   - *SpawnRulesConfig: 加载的配置
//   - error: 加载或验证失败时的错误
func LoadSpawnRules(filePath string) (*SpawnRulesConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn rules file: %w", err)
	}

	var config SpawnRulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spawn rules YAML: %w", err)
	}

	if err := validateSpawnRules(&config); err != nil {
		return nil, fmt.Errorf("invalid spawn rules config: %w", err)
	}

	return &config, nil
}

// DefaultSpawnRules 返回内置的默认生成规则
//
// 低波次只出现基础敌机，随波次推进逐步解锁更强的类型。
func DefaultSpawnRules() *SpawnRulesConfig {
	return &SpawnRulesConfig{
		Tiers: []SpawnTier{
			{MaxWave: 2, Weights: map[string]int{"basic": 100}},
			{MaxWave: 5, Weights: map[string]int{"basic": 70, "fast": 30}},
			{MaxWave: 10, Weights: map[string]int{"basic": 50, "fast": 30, "heavy": 20}},
			{MaxWave: 0, Weights: map[string]int{"basic": 40, "fast": 30, "heavy": 20, "zigzag": 10}},
		},
	}
}

// WeightsForWave 返回指定波次适用的权重表
//
// 依次匹配 maxWave >= wave 的第一个权重表；没有匹配项时落到
// 不设上限（maxWave == 0）的权重表。
func (c *SpawnRulesConfig) WeightsForWave(wave int) map[string]int {
	var fallback map[string]int
	for _, tier := range c.Tiers {
		if tier.MaxWave == 0 {
			fallback = tier.Weights
			continue
		}
		if wave <= tier.MaxWave {
			return tier.Weights
		}
	}
	return fallback
}

// SortedTypes 返回权重表中的敌机类型（按字典序，供确定性抽样）
func SortedTypes(weights map[string]int) []string {
	types := make([]string, 0, len(weights))
	for t := range weights {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// validateSpawnRules 验证配置的有效性
func validateSpawnRules(config *SpawnRulesConfig) error {
	if len(config.Tiers) == 0 {
		return fmt.Errorf("tiers cannot be empty")
	}

	hasUnbounded := false
	prevMax := 0
	for i, tier := range config.Tiers {
		if len(tier.Weights) == 0 {
			return fmt.Errorf("tier %d: weights cannot be empty", i)
		}
		total := 0
		for enemyType, weight := range tier.Weights {
			if enemyType == "" {
				return fmt.Errorf("tier %d: enemy type cannot be empty", i)
			}
			if weight < 0 {
				return fmt.Errorf("tier %d: weight for %s must be >= 0, got %d", i, enemyType, weight)
			}
			total += weight
		}
		if total <= 0 {
			return fmt.Errorf("tier %d: total weight must be > 0", i)
		}
		if tier.MaxWave == 0 {
			hasUnbounded = true
			continue
		}
		if tier.MaxWave <= prevMax {
			return fmt.Errorf("tier %d: maxWave must be increasing, got %d after %d", i, tier.MaxWave, prevMax)
		}
		prevMax = tier.MaxWave
	}

	if !hasUnbounded {
		return fmt.Errorf("spawn rules must include an unbounded tier (maxWave: 0)")
	}

	return nil
}
