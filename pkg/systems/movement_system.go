package systems

import (
	"math"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// MovementSystem 通用位置积分器
//
// 对所有带速度的实体执行 pos += vel * dt * 60 归一化积分。
// 玩家不在此积分（由玩家控制系统处理，因为限时效果会临时
// 缩放其速度）；敌方阵营实体使用缩放后的时间步长，时间冻结
// 期间原地停滞。敌机横向被约束在屏幕内。
type MovementSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, gs *game.GameState) *MovementSystem {
	return &MovementSystem{em: em, gs: gs}
}

// Update 积分所有实体的位置一帧
func (s *MovementSystem) Update(deltaTime float64) {
	enemyDT := deltaTime * s.gs.EnemyTimeScale(timeSlowActive(s.em))

	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em)
	for _, id := range entities {
		if ecs.HasComponent[*components.PlayerComponent](s.em, id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if pos == nil || vel == nil {
			continue
		}

		dt := deltaTime
		isEnemy := ecs.HasComponent[*components.EnemyComponent](s.em, id)
		if isEnemy {
			dt = enemyDT
		} else if bullet, ok := ecs.GetComponent[*components.BulletComponent](s.em, id); ok &&
			bullet.Faction == components.BulletFactionEnemy {
			dt = enemyDT
		}

		pos.X += vel.VX * dt * config.FrameRateNormalization
		pos.Y += vel.VY * dt * config.FrameRateNormalization

		// 敌机不允许飘出屏幕两侧
		if isEnemy {
			if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
				halfW := col.Width / 2
				pos.X = math.Max(halfW, math.Min(config.ScreenWidth-halfW, pos.X))
			}
		}
	}
}
