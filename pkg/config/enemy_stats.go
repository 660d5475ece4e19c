package config

import (
	"fmt"

	"github.com/gonewx/cosmicdef/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌机类型的属性配置
type EnemyStats struct {
	Speed    float64 `yaml:"speed"`    // 基础速度（像素/归一帧）
	Health   int     `yaml:"health"`   // 基础生命值
	Score    int     `yaml:"score"`    // 击毁得分
	Width    float64 `yaml:"width"`    // 碰撞盒宽度（像素）
	Height   float64 `yaml:"height"`   // 碰撞盒高度（像素）
	FireRate float64 `yaml:"fireRate"` // 射速（发/秒）
}

// EnemyStatsConfig 敌机属性配置文件结构
type EnemyStatsConfig struct {
	Enemies map[string]EnemyStats `yaml:"enemies"` // 敌机类型到属性的映射
}

// LoadEnemyStats 从嵌入的 YAML 文件加载敌机属性配置
// 参数：
//
//	filepath - 配置文件路径（如 "data/enemy_stats.yaml"）
//
// 返回：
//
//	*EnemyStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadEnemyStats(filepath string) (*EnemyStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", filepath, err)
	}

	var config EnemyStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML from %s: %w", filepath, err)
	}

	if err := validateEnemyStats(&config); err != nil {
		return nil, fmt.Errorf("invalid enemy stats in %s: %w", filepath, err)
	}

	return &config, nil
}

// DefaultEnemyStats 返回内置的敌机属性配置
// 数值来自原版 Cosmic Defenders 的平衡数据，测试和降级模式使用
func DefaultEnemyStats() *EnemyStatsConfig {
	return &EnemyStatsConfig{
		Enemies: map[string]EnemyStats{
			"basic":  {Speed: 2, Health: 1, Score: 100, Width: 30, Height: 30, FireRate: 1.0},
			"fast":   {Speed: 4, Health: 1, Score: 150, Width: 25, Height: 25, FireRate: 1.5},
			"heavy":  {Speed: 1, Health: 5, Score: 300, Width: 45, Height: 45, FireRate: 0.5},
			"zigzag": {Speed: 3, Health: 2, Score: 200, Width: 35, Height: 35, FireRate: 0.8},
			"boss":   {Speed: 1.5, Health: 50, Score: 1000, Width: 80, Height: 80, FireRate: 3.0},
		},
	}
}

// validateEnemyStats 验证敌机属性配置的完整性和合法性
func validateEnemyStats(config *EnemyStatsConfig) error {
	if len(config.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}

	// 五种敌机类型都必须存在，行为引擎按类型分发
	required := []string{"basic", "fast", "heavy", "zigzag", "boss"}
	for _, name := range required {
		if _, ok := config.Enemies[name]; !ok {
			return fmt.Errorf("missing required enemy type %q", name)
		}
	}

	for enemyType, stats := range config.Enemies {
		if stats.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be positive, got %g", enemyType, stats.Speed)
		}
		if stats.Health < 1 {
			return fmt.Errorf("enemy %s: health must be at least 1, got %d", enemyType, stats.Health)
		}
		if stats.Score < 0 {
			return fmt.Errorf("enemy %s: score cannot be negative, got %d", enemyType, stats.Score)
		}
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("enemy %s: size must be positive, got %gx%g", enemyType, stats.Width, stats.Height)
		}
		if stats.FireRate < 0 {
			return fmt.Errorf("enemy %s: fireRate cannot be negative, got %g", enemyType, stats.FireRate)
		}
	}

	return nil
}

// GetStats 获取指定敌机类型的完整属性
// 如果类型不存在，返回 nil 和 false
func (c *EnemyStatsConfig) GetStats(enemyType string) (*EnemyStats, bool) {
	stats, ok := c.Enemies[enemyType]
	if !ok {
		return nil, false
	}
	return &stats, true
}
