package entities

import (
	"log"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// PlayerSpawnOffsetY 玩家初始位置距屏幕底边的距离
const PlayerSpawnOffsetY = 100.0

// NewPlayerEntity 创建玩家飞船实体
//
// 难度影响两项：低难度给予 +20% 最大生命，
// 子弹伤害输出按难度倍率缩放（低难度打得更痛）。
//
// 参数:
//   - em: 实体管理器
//   - difficulty: 本局难度配置
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID
func NewPlayerEntity(em *ecs.EntityManager, difficulty config.Difficulty) ecs.EntityID {
	maxHealth := float64(config.PlayerMaxHealth)
	if difficulty.BonusHealth {
		maxHealth = float64(int(maxHealth * 1.2))
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: config.ScreenWidth / 2,
		Y: config.ScreenHeight - PlayerSpawnOffsetY,
	})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: maxHealth,
		MaxHealth:     maxHealth,
	})
	ecs.AddComponent(em, entityID, &components.InputComponent{})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		BulletDamage: float64(config.BulletDamage) * difficulty.PlayerDamageMult,
	})
	ecs.AddComponent(em, entityID, &components.ActiveEffectsComponent{})

	log.Printf("[EntityFactory] 创建玩家实体 %d (难度 %s, 生命 %.0f)", entityID, difficulty.Name, maxHealth)
	return entityID
}
