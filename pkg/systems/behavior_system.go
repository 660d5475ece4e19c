package systems

import (
	"math"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// 敌机行为常量
const (
	basicAimThreshold  = 50.0  // 基础敌机：与玩家横向距离超过该值才横向修正
	basicAimSpeed      = 0.5   // 基础敌机横向修正速度
	fastRetargetPeriod = 0.5   // 快速敌机重选横向目标的周期（秒）
	fastSteerGain      = 0.1   // 快速敌机横向比例系数
	heavySpeedFactor   = 0.8   // 重型敌机垂直速度系数
	heavySwayGain      = 0.5   // 重型敌机摆动幅度
	zigzagFrequency    = 3.0   // 之字敌机正弦频率
	zigzagAmplitude    = 2.0   // 之字敌机横向幅度
	bossPatternPeriod  = 5.0   // 首领切换模式的周期（秒）
	bossSweepFrequency = 2.0   // 首领横扫正弦频率
	bossSweepAmplitude = 3.0   // 首领横扫幅度
	bossSweepDescent   = 0.5   // 首领横扫时的垂直速度
	bossOrbitCenterY   = 150.0 // 首领环绕中心的纵坐标
	bossOrbitRadius    = 100.0 // 首领环绕半径
	bossOrbitGain      = 0.05  // 首领环绕的比例追踪系数
	bossPursuitRange   = 200.0 // 首领追击距离门限
	bossPursuitSpeed   = 2.0   // 首领追击速度
	bossRetreatGain    = 0.01  // 首领近身回撤比例系数
)

// BehaviorSystem 按变体规律计算每架敌机的速度并处理开火
//
// 各变体的运动都以 AITimer 为相位基准；时间冻结或减速期间
// 敌方时间被缩放，相位与开火冷却随之停滞。
type BehaviorSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewBehaviorSystem 创建敌机行为系统
func NewBehaviorSystem(em *ecs.EntityManager, gs *game.GameState) *BehaviorSystem {
	return &BehaviorSystem{em: em, gs: gs}
}

// Update 推进所有敌机的行为一帧
func (s *BehaviorSystem) Update(deltaTime float64) {
	playerX, playerY, playerAlive := playerPosition(s.em)
	edt := deltaTime * s.gs.EnemyTimeScale(timeSlowActive(s.em))
	if edt == 0 {
		return
	}

	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em)
	for _, id := range enemies {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if enemy == nil || pos == nil || !ok {
			continue
		}

		enemy.AITimer += edt

		switch enemy.Type {
		case components.EnemyBasic:
			s.updateBasic(enemy, pos, vel, playerX)
		case components.EnemyFast:
			s.updateFast(enemy, pos, vel)
		case components.EnemyHeavy:
			s.updateHeavy(enemy, vel)
		case components.EnemyZigzag:
			s.updateZigzag(enemy, vel)
		case components.EnemyBoss:
			s.updateBoss(enemy, pos, vel, playerX, playerY, edt)
		}

		if playerAlive {
			s.handleShooting(id, enemy, pos, playerX, playerY, edt)
		}
	}
}

// updateBasic 基础敌机：垂直下落，离玩家较远时缓慢横向修正
func (s *BehaviorSystem) updateBasic(enemy *components.EnemyComponent, pos *components.PositionComponent, vel *components.VelocityComponent, playerX float64) {
	vel.VX = 0
	vel.VY = enemy.Speed

	if math.Abs(playerX-pos.X) > basicAimThreshold {
		if playerX > pos.X {
			vel.VX = basicAimSpeed
		} else {
			vel.VX = -basicAimSpeed
		}
	}
}

// updateFast 快速敌机：周期性随机重选横向目标并按比例趋近
func (s *BehaviorSystem) updateFast(enemy *components.EnemyComponent, pos *components.PositionComponent, vel *components.VelocityComponent) {
	if enemy.AITimer > fastRetargetPeriod {
		min := int(config.EnemySpawnMarginX)
		max := int(config.ScreenWidth - config.EnemySpawnMarginX)
		enemy.TargetX = float64(min + s.gs.Rand.Intn(max-min+1))
		enemy.AITimer = 0
	}

	vel.VX = (enemy.TargetX - pos.X) * fastSteerGain
	vel.VY = enemy.Speed
}

// updateHeavy 重型敌机：降速下落，间歇性正弦摆动
func (s *BehaviorSystem) updateHeavy(enemy *components.EnemyComponent, vel *components.VelocityComponent) {
	vel.VX = 0
	vel.VY = enemy.Speed * heavySpeedFactor

	if int(enemy.AITimer*2)%4 == 0 {
		vel.VX = math.Sin(enemy.AITimer) * heavySwayGain
	}
}

// updateZigzag 之字敌机：正弦横向运动
func (s *BehaviorSystem) updateZigzag(enemy *components.EnemyComponent, vel *components.VelocityComponent) {
	vel.VX = math.Sin(enemy.AITimer*zigzagFrequency) * zigzagAmplitude
	vel.VY = enemy.Speed
}

// updateBoss 首领：每5秒循环切换三种模式
// (0) 横向扫摆 (1) 环绕屏幕上方定点 (2) 远距追击/近身回撤
func (s *BehaviorSystem) updateBoss(enemy *components.EnemyComponent, pos *components.PositionComponent, vel *components.VelocityComponent, playerX, playerY, edt float64) {
	enemy.PatternTimer += edt
	if enemy.PatternTimer > bossPatternPeriod {
		enemy.PatternIndex = (enemy.PatternIndex + 1) % 3
		enemy.PatternTimer = 0
	}

	switch enemy.PatternIndex {
	case 0:
		vel.VX = math.Sin(enemy.AITimer*bossSweepFrequency) * bossSweepAmplitude
		vel.VY = bossSweepDescent
	case 1:
		angle := enemy.AITimer * bossSweepFrequency
		targetX := config.ScreenWidth/2 + math.Cos(angle)*bossOrbitRadius
		targetY := bossOrbitCenterY + math.Sin(angle)*bossOrbitRadius*0.5
		vel.VX = (targetX - pos.X) * bossOrbitGain
		vel.VY = (targetY - pos.Y) * bossOrbitGain
	default:
		dx := playerX - pos.X
		dy := playerY - pos.Y
		distance := math.Hypot(dx, dy)

		if distance > bossPursuitRange {
			vel.VX = (dx / distance) * bossPursuitSpeed
			vel.VY = (dy / distance) * bossPursuitSpeed
		} else {
			vel.VX = -dx * bossRetreatGain
			vel.VY = -dy * bossRetreatGain
		}
	}
}

// handleShooting 敌机开火：冷却就绪且玩家在射程内才射击
//
// 射程门限避免屏幕外的敌机白白产生子弹。
func (s *BehaviorSystem) handleShooting(id ecs.EntityID, enemy *components.EnemyComponent, pos *components.PositionComponent, playerX, playerY, edt float64) {
	if enemy.FireCooldown > 0 {
		enemy.FireCooldown -= edt
		return
	}

	if math.Hypot(playerX-pos.X, playerY-pos.Y) > config.EnemyFireRange {
		return
	}

	enemy.FireCooldown = 1.0 / enemy.FireRate

	muzzleY := pos.Y
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		muzzleY = pos.Y + col.Height/2
	}

	if enemy.Type == components.EnemyBoss {
		s.bossShootingPattern(enemy, pos, muzzleY)
		return
	}

	// 普通敌机：朝玩家方向直射
	dx := playerX - pos.X
	dy := playerY - muzzleY
	distance := math.Hypot(dx, dy)
	if distance <= 0 {
		return
	}

	speed := float64(config.EnemyBulletSpeed)
	entities.NewBulletEntity(s.em, components.BulletFactionEnemy,
		pos.X, muzzleY, dx/distance*speed, dy/distance*speed, float64(config.BulletDamage))
}

// bossShootingPattern 首领按当前模式发射对应弹幕：
// 扇形散射 / 环形弹幕 / 双追踪导弹
func (s *BehaviorSystem) bossShootingPattern(enemy *components.EnemyComponent, pos *components.PositionComponent, muzzleY float64) {
	damage := float64(config.BulletDamage)

	switch enemy.PatternIndex {
	case 0:
		entities.NewBulletSpread(s.em, components.BulletFactionEnemy,
			pos.X, muzzleY, config.BossSpreadBullets, config.BossSpreadAngle,
			config.BulletSpeed*0.6, damage)
	case 1:
		entities.NewCircularPattern(s.em, components.BulletFactionEnemy,
			pos.X, muzzleY, config.BossCircleBullets, config.BulletSpeed*0.5, damage)
	default:
		for i := 0; i < config.BossHomingMissiles; i++ {
			offsetX := float64(s.gs.Rand.Intn(41) - 20)
			entities.NewHomingMissileEntity(s.em, components.BulletFactionEnemy,
				pos.X+offsetX, muzzleY, damage*2)
		}
	}
}

// playerPosition 返回玩家当前位置；玩家不存在时返回屏幕中心
func playerPosition(em *ecs.EntityManager) (x, y float64, alive bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	if len(players) == 0 {
		return config.ScreenWidth / 2, config.ScreenHeight / 2, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, players[0])
	if !ok {
		return config.ScreenWidth / 2, config.ScreenHeight / 2, false
	}
	return pos.X, pos.Y, true
}

// timeSlowActive 玩家的时间减速效果是否生效
func timeSlowActive(em *ecs.EntityManager) bool {
	players := ecs.GetEntitiesWith1[*components.ActiveEffectsComponent](em)
	for _, id := range players {
		effects, ok := ecs.GetComponent[*components.ActiveEffectsComponent](em, id)
		if ok && effects.TimeSlowTimer > 0 {
			return true
		}
	}
	return false
}
