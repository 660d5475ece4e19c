package systems

import (
	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// PowerUpSystem 限时强化效果的计时器推进
//
// 每帧把各激活效果的剩余时间减去 dt，归零即失效。
// 效果的应用与重置在战斗结算（拾取）时完成，本系统只负责到期。
type PowerUpSystem struct {
	em *ecs.EntityManager
}

// NewPowerUpSystem 创建强化效果计时系统
func NewPowerUpSystem(em *ecs.EntityManager) *PowerUpSystem {
	return &PowerUpSystem{em: em}
}

// Update 推进所有玩家的效果计时器一帧
func (s *PowerUpSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith1[*components.ActiveEffectsComponent](s.em)
	for _, id := range players {
		effects, ok := ecs.GetComponent[*components.ActiveEffectsComponent](s.em, id)
		if !ok {
			continue
		}

		effects.ShieldTimer = tickDown(effects.ShieldTimer, deltaTime)
		effects.RapidFireTimer = tickDown(effects.RapidFireTimer, deltaTime)
		effects.MultiShotTimer = tickDown(effects.MultiShotTimer, deltaTime)
		effects.TimeSlowTimer = tickDown(effects.TimeSlowTimer, deltaTime)
		effects.HomingTimer = tickDown(effects.HomingTimer, deltaTime)
	}
}

// tickDown 计时器递减，到期归零
func tickDown(timer, dt float64) float64 {
	if timer <= 0 {
		return 0
	}
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
