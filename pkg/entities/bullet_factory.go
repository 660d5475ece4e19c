package entities

import (
	"math"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// NewBulletEntity 创建普通子弹实体
//
// 每个阵营的子弹数量受 MaxBulletsPerSide 约束：达到上限时
// 先淘汰该阵营最早创建的子弹（ID最小），再创建新子弹。
// 这是背压策略而非错误，调用方无需感知。
//
// 参数:
//   - em: 实体管理器
//   - faction: 所属阵营
//   - x, y: 初始位置
//   - vx, vy: 初始速度（像素/归一帧）
//   - damage: 命中伤害
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID
func NewBulletEntity(em *ecs.EntityManager, faction components.BulletFaction, x, y, vx, vy, damage float64) ecs.EntityID {
	evictOldestBullet(em, faction)

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  config.BulletWidth,
		Height: config.BulletHeight,
	})
	ecs.AddComponent(em, entityID, &components.BulletComponent{
		Faction: faction,
		Damage:  damage,
		Speed:   math.Hypot(vx, vy),
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: config.BulletMaxLifetime,
	})

	return entityID
}

// NewHomingMissileEntity 创建追踪导弹实体
//
// 初始速度朝向对方阵营（玩家导弹向上，敌方导弹向下），
// 目标锁定由行为系统在每帧扫描时完成。
func NewHomingMissileEntity(em *ecs.EntityManager, faction components.BulletFaction, x, y, damage float64) ecs.EntityID {
	vy := config.HomingBulletSpeed
	if faction == components.BulletFactionPlayer {
		vy = -config.HomingBulletSpeed
	}

	entityID := NewBulletEntity(em, faction, x, y, 0, vy, damage)

	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, entityID)
	bullet.Kind = components.BulletHoming
	bullet.Speed = config.HomingBulletSpeed

	return entityID
}

// NewBulletSpread 创建扇形弹幕
//
// 以阵营朝向为中轴，在 [-spreadAngle, +spreadAngle] 间均匀分布
// count 发子弹。count 为 1 时退化为单发直射。
func NewBulletSpread(em *ecs.EntityManager, faction components.BulletFaction, x, y float64, count int, spreadAngle, speed, damage float64) []ecs.EntityID {
	baseVX := 0.0
	baseVY := speed
	if faction == components.BulletFactionPlayer {
		baseVY = -speed
	}

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		angle := 0.0
		if count > 1 {
			angle = -spreadAngle + 2*spreadAngle*float64(i)/float64(count-1)
		}

		vx := baseVX*math.Cos(angle) - baseVY*math.Sin(angle)
		vy := baseVX*math.Sin(angle) + baseVY*math.Cos(angle)

		ids = append(ids, NewBulletEntity(em, faction, x, y, vx, vy, damage))
	}
	return ids
}

// NewCircularPattern 创建环形弹幕：count 发子弹沿圆周均匀发射
func NewCircularPattern(em *ecs.EntityManager, faction components.BulletFaction, x, y float64, count int, speed, damage float64) []ecs.EntityID {
	angleStep := 2 * math.Pi / float64(count)

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) * angleStep
		vx := math.Cos(angle) * speed
		vy := math.Sin(angle) * speed

		ids = append(ids, NewBulletEntity(em, faction, x, y, vx, vy, damage))
	}
	return ids
}

// evictOldestBullet 在阵营子弹达到上限时淘汰最早创建的一发
// 查询结果按ID升序，首个即最早创建的子弹（FIFO）
func evictOldestBullet(em *ecs.EntityManager, faction components.BulletFaction) {
	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](em)

	count := 0
	oldest := ecs.EntityID(0)
	for _, id := range bullets {
		bullet, ok := ecs.GetComponent[*components.BulletComponent](em, id)
		if !ok || bullet.Faction != faction {
			continue
		}
		count++
		if oldest == 0 {
			oldest = id
		}
	}

	if count >= config.MaxBulletsPerSide && oldest != 0 {
		em.DestroyEntityNow(oldest)
	}
}
