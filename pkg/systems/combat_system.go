package systems

import (
	"log"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// 爆炸粒子规模
const (
	hitExplosionParticles  = 10                        // 子弹命中未击毁
	ramExplosionParticles  = 15                        // 撞击
	killExplosionParticles = config.ExplosionParticles // 击毁
)

// CombatSystem 战斗结算
//
// 消费碰撞检测产出的事件序列，按固定顺序结算：
// 玩家子弹对敌机、敌方子弹对玩家、玩家与敌机相撞、道具拾取。
// 一发子弹最多命中一个目标；已在本帧被击毁的实体不再参与
// 后续结算。所有对外表现（得分、爆炸、受伤）以事件形式写入
// 会话事件队列。
type CombatSystem struct {
	em         *ecs.EntityManager
	gs         *game.GameState
	collisions *CollisionSystem
	powerupCfg *config.PowerUpConfig

	// 本帧已消耗的子弹与已击毁的实体
	spentBullets map[ecs.EntityID]bool
	destroyed    map[ecs.EntityID]bool
}

// NewCombatSystem 创建战斗结算系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 会话状态（得分、事件队列、随机数发生器）
//   - collisions: 碰撞检测系统（消费其事件）
//   - powerupCfg: 道具配置（掉落概率与权重）
func NewCombatSystem(em *ecs.EntityManager, gs *game.GameState, collisions *CollisionSystem, powerupCfg *config.PowerUpConfig) *CombatSystem {
	return &CombatSystem{
		em:         em,
		gs:         gs,
		collisions: collisions,
		powerupCfg: powerupCfg,
	}
}

// Update 结算本帧所有碰撞
func (s *CombatSystem) Update(deltaTime float64) {
	s.spentBullets = make(map[ecs.EntityID]bool)
	s.destroyed = make(map[ecs.EntityID]bool)

	for _, event := range s.collisions.Events() {
		switch event.Kind {
		case CollisionPlayerBulletEnemy:
			s.resolveBulletHitEnemy(event.A, event.B)
		case CollisionEnemyBulletPlayer:
			s.resolveBulletHitPlayer(event.A, event.B)
		case CollisionPlayerEnemy:
			s.resolveContact(event.A, event.B)
		case CollisionPlayerPowerUp:
			s.resolvePickup(event.A, event.B)
		}
	}
}

// resolveBulletHitEnemy 玩家子弹命中敌机
func (s *CombatSystem) resolveBulletHitEnemy(bulletID, enemyID ecs.EntityID) {
	if s.spentBullets[bulletID] || s.destroyed[enemyID] {
		return
	}

	bullet, okB := ecs.GetComponent[*components.BulletComponent](s.em, bulletID)
	health, okH := ecs.GetComponent[*components.HealthComponent](s.em, enemyID)
	pos, okP := ecs.GetComponent[*components.PositionComponent](s.em, enemyID)
	if !okB || !okH || !okP {
		return
	}

	s.spentBullets[bulletID] = true
	s.em.DestroyEntity(bulletID)

	// 每次命中只发一次爆炸事件，击毁时放大规模
	health.CurrentHealth -= bullet.Damage
	amount := hitExplosionParticles
	if health.CurrentHealth <= 0 {
		amount = killExplosionParticles
	}
	s.gs.Events.Push(game.Event{
		Type: game.EventExplosionRequested,
		X:    pos.X, Y: pos.Y,
		Amount: amount,
	})

	if health.CurrentHealth <= 0 {
		s.destroyEnemy(enemyID, pos, true)
	}
}

// resolveBulletHitPlayer 敌方子弹命中玩家
// 无敌或护盾期间子弹穿过玩家，不消耗也不造成伤害
func (s *CombatSystem) resolveBulletHitPlayer(bulletID, playerID ecs.EntityID) {
	if s.spentBullets[bulletID] || s.destroyed[playerID] {
		return
	}

	bullet, ok := ecs.GetComponent[*components.BulletComponent](s.em, bulletID)
	if !ok {
		return
	}

	if !s.damagePlayer(playerID, bullet.Damage) {
		return
	}

	s.spentBullets[bulletID] = true
	s.em.DestroyEntity(bulletID)
}

// resolveContact 玩家与敌机相撞：
// 玩家受固定接触伤害，敌机被强制摧毁（无得分无掉落）
func (s *CombatSystem) resolveContact(playerID, enemyID ecs.EntityID) {
	if s.destroyed[enemyID] || s.destroyed[playerID] {
		return
	}

	if !s.damagePlayer(playerID, config.ContactDamage) {
		return
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, enemyID); ok {
		s.gs.Events.Push(game.Event{
			Type: game.EventExplosionRequested,
			X:    pos.X, Y: pos.Y,
			Amount: ramExplosionParticles,
		})
		s.destroyEnemy(enemyID, pos, false)
	}
}

// resolvePickup 玩家拾取道具
func (s *CombatSystem) resolvePickup(playerID, powerupID ecs.EntityID) {
	if s.destroyed[powerupID] {
		return
	}

	powerup, okP := ecs.GetComponent[*components.PowerUpComponent](s.em, powerupID)
	if !okP {
		return
	}

	if !s.applyPowerUp(playerID, powerup.Kind) {
		// 未知道具种类：拒绝生效但照常移除，避免反复触发
		log.Printf("[CombatSystem] 忽略未知道具种类: %s", powerup.Kind)
	}

	s.destroyed[powerupID] = true
	s.em.DestroyEntity(powerupID)
	s.gs.Events.Push(game.Event{
		Type: game.EventPowerUpCollected,
		Kind: string(powerup.Kind),
	})
}

// damagePlayer 对玩家结算伤害
// 返回是否实际造成了伤害（无敌或护盾期间返回 false）
func (s *CombatSystem) damagePlayer(playerID ecs.EntityID, damage float64) bool {
	player, okP := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
	health, okH := ecs.GetComponent[*components.HealthComponent](s.em, playerID)
	effects, okE := ecs.GetComponent[*components.ActiveEffectsComponent](s.em, playerID)
	if !okP || !okH || !okE {
		return false
	}

	if player.InvulnerableTimer > 0 || effects.ShieldTimer > 0 {
		return false
	}

	health.CurrentHealth -= damage
	if health.CurrentHealth < 0 {
		health.CurrentHealth = 0
	}
	player.InvulnerableTimer = config.PlayerInvulnerableTime

	s.gs.Events.Push(game.Event{
		Type:      game.EventPlayerDamaged,
		EntityID:  playerID,
		Amount:    int(damage),
		Remaining: int(health.CurrentHealth),
	})

	if health.CurrentHealth <= 0 {
		s.destroyed[playerID] = true
		s.gs.GameOver = true
		s.gs.Events.Push(game.Event{Type: game.EventGameOver, Amount: s.gs.Score})
		log.Printf("[CombatSystem] 玩家阵亡，会话结束 (得分 %d, 波次 %d)", s.gs.Score, s.gs.Wave)
	}
	return true
}

// destroyEnemy 击毁敌机：计分、掉落判定、事件发射
//
// 爆炸事件由各碰撞结算处发出，这里不再追加。撞击摧毁
// （awardScore 为 false）不计分不掉落，也不发击毁事件，
// 对外表现只有碰撞处的那一次爆炸。
func (s *CombatSystem) destroyEnemy(enemyID ecs.EntityID, pos *components.PositionComponent, awardScore bool) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, enemyID)
	if !ok {
		return
	}

	s.destroyed[enemyID] = true
	s.em.DestroyEntity(enemyID)

	if !awardScore {
		return
	}

	awarded := s.gs.AddScore(enemy.Score)
	s.gs.EnemiesKilled++

	s.gs.Events.Push(game.Event{
		Type:     game.EventEnemyDestroyed,
		EntityID: enemyID,
		X:        pos.X, Y: pos.Y,
		Amount: awarded,
	})

	// 掉落判定
	if s.gs.Rand.Float64() < s.powerupCfg.SpawnChance {
		kind := s.rollPowerUpKind()
		entities.NewPowerUpEntity(s.em, kind, pos.X, pos.Y, s.powerupCfg)
	}
}

// rollPowerUpKind 按权重表抽取道具种类
// 候选按字典序遍历，保证同种子回放结果一致
func (s *CombatSystem) rollPowerUpKind() components.PowerUpKind {
	total := 0
	kinds := config.SortedTypes(s.powerupCfg.Weights)
	for _, kind := range kinds {
		total += s.powerupCfg.Weights[kind]
	}

	roll := s.gs.Rand.Intn(total)
	for _, kind := range kinds {
		roll -= s.powerupCfg.Weights[kind]
		if roll < 0 {
			return components.PowerUpKind(kind)
		}
	}
	return components.PowerUpKind(kinds[len(kinds)-1])
}

// applyPowerUp 将道具效果应用到玩家
// 同类限时效果重置计时器而非叠加；返回是否识别该种类
func (s *CombatSystem) applyPowerUp(playerID ecs.EntityID, kind components.PowerUpKind) bool {
	health, okH := ecs.GetComponent[*components.HealthComponent](s.em, playerID)
	effects, okE := ecs.GetComponent[*components.ActiveEffectsComponent](s.em, playerID)
	if !okH || !okE {
		return false
	}

	duration := s.powerupCfg.Duration

	switch kind {
	case components.PowerUpHealth:
		health.CurrentHealth += config.HealthRestore
		if health.CurrentHealth > health.MaxHealth {
			health.CurrentHealth = health.MaxHealth
		}
	case components.PowerUpShield:
		effects.ShieldTimer = duration
	case components.PowerUpRapidFire:
		effects.RapidFireTimer = duration
	case components.PowerUpMultiShot:
		effects.MultiShotTimer = duration
	case components.PowerUpTimeSlow:
		effects.TimeSlowTimer = duration
	case components.PowerUpHoming:
		effects.HomingTimer = duration
	case components.PowerUpScreenClear:
		s.screenClear()
	default:
		return false
	}
	return true
}

// screenClear 立即摧毁所有存活敌机，每架各发一个爆炸事件
// 这是唯一直接改写敌机集合的道具
func (s *CombatSystem) screenClear() {
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em)
	for _, id := range enemies {
		if s.destroyed[id] {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		s.destroyed[id] = true
		s.em.DestroyEntity(id)
		s.gs.Events.Push(game.Event{
			Type: game.EventExplosionRequested,
			X:    pos.X, Y: pos.Y,
			Amount: killExplosionParticles,
		})
	}
	log.Printf("[CombatSystem] 清屏道具生效，摧毁 %d 架敌机", len(enemies))
}
