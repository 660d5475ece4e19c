package entities

import (
	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// NewPowerUpEntity 创建下落中的强化道具实体
//
// 道具以固定速度垂直下落，超过存活上限或飘出屏幕后
// 由生命周期系统清理。
//
// 参数:
//   - em: 实体管理器
//   - kind: 道具种类
//   - x, y: 掉落起点（通常为被击毁敌机的位置）
//   - cfg: 道具配置（下落速度与存活上限）
func NewPowerUpEntity(em *ecs.EntityManager, kind components.PowerUpKind, x, y float64, cfg *config.PowerUpConfig) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VY: cfg.FallSpeed})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  config.PowerUpSize,
		Height: config.PowerUpSize,
	})
	ecs.AddComponent(em, entityID, &components.PowerUpComponent{Kind: kind})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: cfg.MaxLifetime,
	})

	return entityID
}
