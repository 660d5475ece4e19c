package systems

import (
	"math"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// HomingSystem 追踪子弹的目标锁定与转向
//
// 目标引用是弱引用：只保存实体ID，每帧校验存活。
// 目标消失时清除引用，下一帧重新在追踪范围内扫描最近目标。
// 每帧转向量被钳制在 turnRate*dt*60 以内，转向保持速率不变。
type HomingSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewHomingSystem 创建追踪系统
func NewHomingSystem(em *ecs.EntityManager, gs *game.GameState) *HomingSystem {
	return &HomingSystem{em: em, gs: gs}
}

// Update 推进所有追踪子弹一帧
func (s *HomingSystem) Update(deltaTime float64) {
	enemyDT := deltaTime * s.gs.EnemyTimeScale(timeSlowActive(s.em))

	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.em)
	for _, id := range bullets {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, id)
		if bullet == nil || bullet.Kind != components.BulletHoming {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if pos == nil || !ok {
			continue
		}

		dt := deltaTime
		if bullet.Faction == components.BulletFactionEnemy {
			dt = enemyDT
			if dt == 0 {
				continue
			}
		}

		// 目标失效则清除引用，本帧重新锁定
		if bullet.TargetID != 0 && !s.targetValid(bullet.TargetID) {
			bullet.TargetID = 0
		}
		if bullet.TargetID == 0 {
			bullet.TargetID = s.acquireTarget(bullet.Faction, pos)
		}
		if bullet.TargetID == 0 {
			continue
		}

		targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.em, bullet.TargetID)
		if !ok {
			bullet.TargetID = 0
			continue
		}

		s.steerTowards(bullet, pos, vel, targetPos, dt)
	}
}

// targetValid 目标仍然存活且有位置
func (s *HomingSystem) targetValid(id ecs.EntityID) bool {
	return s.em.IsAlive(id) && ecs.HasComponent[*components.PositionComponent](s.em, id)
}

// acquireTarget 在追踪范围内扫描最近的敌对实体
//
// 玩家子弹以敌机为目标，敌方子弹以玩家为目标。
// 范围内没有候选时返回 0。
func (s *HomingSystem) acquireTarget(faction components.BulletFaction, pos *components.PositionComponent) ecs.EntityID {
	var candidates []ecs.EntityID
	if faction == components.BulletFactionPlayer {
		candidates = ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em)
	} else {
		candidates = ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em)
	}

	closest := ecs.EntityID(0)
	closestDistance := math.Inf(1)
	for _, id := range candidates {
		targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		distance := math.Hypot(targetPos.X-pos.X, targetPos.Y-pos.Y)
		if distance < closestDistance && distance < config.HomingRange {
			closestDistance = distance
			closest = id
		}
	}
	return closest
}

// steerTowards 朝目标转向：角差归一化到 (-π, π]，
// 单帧转向量钳制在 turnRate*dt*60，速率保持不变
func (s *HomingSystem) steerTowards(
	bullet *components.BulletComponent,
	pos *components.PositionComponent,
	vel *components.VelocityComponent,
	targetPos *components.PositionComponent,
	dt float64,
) {
	targetAngle := math.Atan2(targetPos.Y-pos.Y, targetPos.X-pos.X)
	currentAngle := math.Atan2(vel.VY, vel.VX)

	angleDiff := targetAngle - currentAngle
	for angleDiff > math.Pi {
		angleDiff -= 2 * math.Pi
	}
	for angleDiff < -math.Pi {
		angleDiff += 2 * math.Pi
	}

	maxTurn := config.HomingTurnRate * dt * config.FrameRateNormalization
	turnAmount := math.Max(-maxTurn, math.Min(maxTurn, angleDiff))
	newAngle := currentAngle + turnAmount

	speed := math.Hypot(vel.VX, vel.VY)
	vel.VX = math.Cos(newAngle) * speed
	vel.VY = math.Sin(newAngle) * speed
}
