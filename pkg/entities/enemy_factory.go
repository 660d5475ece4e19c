package entities

import (
	"log"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// NewEnemyEntity 创建敌机实体
//
// 速度与生命在创建时一次性应用难度倍率，
// 模拟推进过程中不再读取难度配置。
//
// 参数:
//   - em: 实体管理器
//   - enemyType: 敌机变体类型
//   - stats: 该变体的基础属性表
//   - x, y: 初始位置（波次生成器通常放在屏幕上方之外）
//   - difficulty: 本局难度配置
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID
func NewEnemyEntity(em *ecs.EntityManager, enemyType components.EnemyType, stats config.EnemyStats, x, y float64, difficulty config.Difficulty) ecs.EntityID {
	speed := stats.Speed * difficulty.EnemySpeedMult
	health := float64(stats.Health) * difficulty.EnemyHealthMult

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VY: speed})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  stats.Width,
		Height: stats.Height,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: health,
		MaxHealth:     health,
	})
	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		Type:     enemyType,
		Speed:    speed,
		Score:    stats.Score,
		FireRate: stats.FireRate,
		TargetX:  x,
	})

	if enemyType == components.EnemyBoss {
		log.Printf("[EntityFactory] 创建首领实体 %d (生命 %.1f)", entityID, health)
	}
	return entityID
}
