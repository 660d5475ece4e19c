package systems

import (
	"math"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// CollisionKind 碰撞事件类别，同时约定结算顺序
type CollisionKind int

const (
	// CollisionPlayerBulletEnemy 玩家子弹命中敌机
	CollisionPlayerBulletEnemy CollisionKind = iota
	// CollisionEnemyBulletPlayer 敌方子弹命中玩家
	CollisionEnemyBulletPlayer
	// CollisionPlayerEnemy 玩家与敌机相撞
	CollisionPlayerEnemy
	// CollisionPlayerPowerUp 玩家拾取道具
	CollisionPlayerPowerUp
)

// CollisionEvent 一次检出的碰撞
// A 为主动方（子弹/玩家），B 为被动方（敌机/玩家/道具）
type CollisionEvent struct {
	Kind CollisionKind
	A    ecs.EntityID
	B    ecs.EntityID
}

// CollisionSystem 碰撞检测
//
// 只做检测不做结算：每帧按固定类别顺序扫描（玩家子弹对敌机、
// 敌方子弹对玩家、玩家对敌机、玩家对道具），同类别内按实体ID
// 升序遍历，产生确定性的事件序列供战斗结算系统消费。
type CollisionSystem struct {
	em     *ecs.EntityManager
	events []CollisionEvent
}

// NewCollisionSystem 创建碰撞检测系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{em: em}
}

// Update 重新检测本帧的所有碰撞
func (s *CollisionSystem) Update(deltaTime float64) {
	s.events = s.events[:0]

	bullets := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	players := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	powerups := ecs.GetEntitiesWith3[*components.PowerUpComponent, *components.PositionComponent, *components.CollisionComponent](s.em)

	// 玩家子弹 × 敌机
	for _, bulletID := range bullets {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, bulletID)
		if bullet == nil || bullet.Faction != components.BulletFactionPlayer {
			continue
		}
		for _, enemyID := range enemies {
			if s.overlaps(bulletID, enemyID) {
				s.events = append(s.events, CollisionEvent{CollisionPlayerBulletEnemy, bulletID, enemyID})
			}
		}
	}

	// 敌方子弹 × 玩家
	for _, bulletID := range bullets {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, bulletID)
		if bullet == nil || bullet.Faction != components.BulletFactionEnemy {
			continue
		}
		for _, playerID := range players {
			if s.overlaps(bulletID, playerID) {
				s.events = append(s.events, CollisionEvent{CollisionEnemyBulletPlayer, bulletID, playerID})
			}
		}
	}

	// 玩家 × 敌机（接触伤害）
	for _, playerID := range players {
		for _, enemyID := range enemies {
			if s.overlaps(playerID, enemyID) {
				s.events = append(s.events, CollisionEvent{CollisionPlayerEnemy, playerID, enemyID})
			}
		}
	}

	// 玩家 × 道具
	for _, playerID := range players {
		for _, powerupID := range powerups {
			if s.overlaps(playerID, powerupID) {
				s.events = append(s.events, CollisionEvent{CollisionPlayerPowerUp, playerID, powerupID})
			}
		}
	}
}

// Events 返回本帧检出的碰撞事件（按结算顺序）
func (s *CollisionSystem) Events() []CollisionEvent {
	return s.events
}

// overlaps 判断两个实体的碰撞盒是否重叠
// 中心距判定：|x1-x2| < (w1+w2)/2 且 |y1-y2| < (h1+h2)/2
func (s *CollisionSystem) overlaps(a, b ecs.EntityID) bool {
	posA, okA := ecs.GetComponent[*components.PositionComponent](s.em, a)
	colA, okB := ecs.GetComponent[*components.CollisionComponent](s.em, a)
	posB, okC := ecs.GetComponent[*components.PositionComponent](s.em, b)
	colB, okD := ecs.GetComponent[*components.CollisionComponent](s.em, b)
	if !okA || !okB || !okC || !okD {
		return false
	}

	return math.Abs(posA.X-posB.X) < (colA.Width+colB.Width)/2 &&
		math.Abs(posA.Y-posB.Y) < (colA.Height+colB.Height)/2
}
