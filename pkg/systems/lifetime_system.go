package systems

import (
	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// LifetimeSystem 实体的到期与屏外清理
//
// 两类清理规则：
//   - 存活时间超过上限的实体（子弹、道具、粒子）到期销毁；
//   - 飘出可见区域外固定边距的实体销毁。子弹四边都判定，
//     敌机与道具只判下方与两侧（生成点在屏幕上方之外）。
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 推进所有实体的生命周期一帧
func (s *LifetimeSystem) Update(deltaTime float64) {
	s.tickLifetimes(deltaTime)
	s.pruneOffscreen()
}

// tickLifetimes 推进存活计时并销毁到期实体
func (s *LifetimeSystem) tickLifetimes(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)
	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.MaxLifetime > 0 && lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// pruneOffscreen 清理飘出屏幕的实体
func (s *LifetimeSystem) pruneOffscreen() {
	margin := float64(config.OffscreenMargin)

	// 子弹：四边判定
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.entityManager)
	for _, id := range bullets {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos == nil {
			continue
		}
		if pos.X < -margin || pos.X > config.ScreenWidth+margin ||
			pos.Y < -margin || pos.Y > config.ScreenHeight+margin {
			s.entityManager.DestroyEntity(id)
		}
	}

	// 敌机：掉出下边界或被推出两侧
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)
	for _, id := range enemies {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos == nil {
			continue
		}
		if pos.Y > config.ScreenHeight+margin || pos.X < -margin || pos.X > config.ScreenWidth+margin {
			s.entityManager.DestroyEntity(id)
		}
	}

	// 道具：掉出下边界
	powerups := ecs.GetEntitiesWith2[*components.PowerUpComponent, *components.PositionComponent](s.entityManager)
	for _, id := range powerups {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos == nil {
			continue
		}
		if pos.Y > config.ScreenHeight+margin {
			s.entityManager.DestroyEntity(id)
		}
	}
}
