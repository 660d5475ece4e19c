package systems

import (
	"log"
	"math"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// diagonalFactor 对角移动归一化系数 (1/sqrt2)
const diagonalFactor = 0.707

// multiShotLateralSpeed 多重射击侧向速度系数
const multiShotLateralSpeed = 20.0

// PlayerControlSystem 处理玩家的移动、开火与特殊能力
//
// 玩家移动使用平滑插值：每tick速度向输入目标速度靠近一定
// 比例再乘摩擦系数，因此松开按键后飞船会滑行减速。
// 位置积分与屏幕边界约束也在本系统内完成（玩家不走通用
// 移动系统，因为限时效果会临时缩放其移动速度）。
type PlayerControlSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, gs *game.GameState) *PlayerControlSystem {
	return &PlayerControlSystem{em: em, gs: gs}
}

// Update 推进玩家状态一帧
func (s *PlayerControlSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.InputComponent](s.em)

	for _, id := range players {
		player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		if !ok {
			continue
		}
		input, _ := ecs.GetComponent[*components.InputComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		effects, _ := ecs.GetComponent[*components.ActiveEffectsComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if input == nil || pos == nil || vel == nil || effects == nil || col == nil {
			continue
		}

		s.updateTimers(player, deltaTime)
		s.updateMovement(player, input, pos, vel, col, effects, deltaTime)
		s.handleSpecial(player, input)
		s.handleFire(player, input, pos, effects)
	}
}

// updateTimers 推进玩家各计时器
func (s *PlayerControlSystem) updateTimers(player *components.PlayerComponent, dt float64) {
	if player.FireCooldown > 0 {
		player.FireCooldown -= dt
	}
	if player.InvulnerableTimer > 0 {
		player.InvulnerableTimer -= dt
	}
	if player.SpecialCooldown > 0 {
		player.SpecialCooldown -= dt
	}
	if s.gs.FreezeTimer > 0 {
		s.gs.FreezeTimer -= dt
	}
}

// updateMovement 平滑加速、摩擦、积分与边界约束
func (s *PlayerControlSystem) updateMovement(
	player *components.PlayerComponent,
	input *components.InputComponent,
	pos *components.PositionComponent,
	vel *components.VelocityComponent,
	col *components.CollisionComponent,
	effects *components.ActiveEffectsComponent,
	dt float64,
) {
	targetVX := 0.0
	targetVY := 0.0
	if input.MoveLeft {
		targetVX = -config.PlayerSpeed
	}
	if input.MoveRight {
		targetVX = config.PlayerSpeed
	}
	if input.MoveUp {
		targetVY = -config.PlayerSpeed
	}
	if input.MoveDown {
		targetVY = config.PlayerSpeed
	}

	// 对角移动归一化
	if targetVX != 0 && targetVY != 0 {
		targetVX *= diagonalFactor
		targetVY *= diagonalFactor
	}

	vel.VX += (targetVX - vel.VX) * config.PlayerAcceleration
	vel.VY += (targetVY - vel.VY) * config.PlayerAcceleration
	vel.VX *= config.PlayerFriction
	vel.VY *= config.PlayerFriction

	// 限时效果的速度修正：急速射击加快机动，护盾变沉
	speedMult := 1.0
	if effects.RapidFireTimer > 0 {
		speedMult *= 1.2
	}
	if effects.ShieldTimer > 0 {
		speedMult *= 0.8
	}

	pos.X += vel.VX * speedMult * dt * config.FrameRateNormalization
	pos.Y += vel.VY * speedMult * dt * config.FrameRateNormalization

	halfW := col.Width / 2
	halfH := col.Height / 2
	pos.X = math.Max(halfW, math.Min(config.ScreenWidth-halfW, pos.X))
	pos.Y = math.Max(halfH, math.Min(config.ScreenHeight-halfH, pos.Y))
}

// handleSpecial 触发特殊能力：时间冻结
func (s *PlayerControlSystem) handleSpecial(player *components.PlayerComponent, input *components.InputComponent) {
	if !input.Special || player.SpecialCooldown > 0 {
		return
	}

	player.SpecialCooldown = config.SpecialAbilityCooldown
	s.gs.FreezeTimer = config.TimeFreezeDuration
	log.Printf("[PlayerControlSystem] 时间冻结激活 (%.1f秒)", float64(config.TimeFreezeDuration))
}

// handleFire 按住开火时按射速生成子弹
//
// 急速射击让射速翻倍，多重射击改为三发散射，
// 追踪效果激活时生成的子弹带追踪属性。
func (s *PlayerControlSystem) handleFire(
	player *components.PlayerComponent,
	input *components.InputComponent,
	pos *components.PositionComponent,
	effects *components.ActiveEffectsComponent,
) {
	if !input.Fire || player.FireCooldown > 0 {
		return
	}

	fireRate := float64(config.PlayerFireRate)
	if effects.RapidFireTimer > 0 {
		fireRate *= config.RapidFireMult
	}
	player.FireCooldown = 1.0 / fireRate

	spawnY := pos.Y - config.PlayerBulletSpawnOffset
	homing := effects.HomingTimer > 0

	if effects.MultiShotTimer > 0 {
		for _, angle := range []float64{-config.MultiShotSpreadVelocity, 0, config.MultiShotSpreadVelocity} {
			vx := math.Sin(angle) * multiShotLateralSpeed
			id := entities.NewBulletEntity(s.em, components.BulletFactionPlayer,
				pos.X+vx, spawnY, vx, -config.BulletSpeed, player.BulletDamage)
			if homing {
				markHoming(s.em, id)
			}
		}
		return
	}

	id := entities.NewBulletEntity(s.em, components.BulletFactionPlayer,
		pos.X, spawnY, 0, -config.BulletSpeed, player.BulletDamage)
	if homing {
		markHoming(s.em, id)
	}
}

// markHoming 把普通子弹转为追踪子弹，保持当前速率
func markHoming(em *ecs.EntityManager, id ecs.EntityID) {
	bullet, ok := ecs.GetComponent[*components.BulletComponent](em, id)
	if !ok {
		return
	}
	bullet.Kind = components.BulletHoming
}
