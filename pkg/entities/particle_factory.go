package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// NewExplosionBurst 在 (x,y) 创建一组爆炸粒子实体
//
// 粒子总数受 MaxParticles 约束，达到上限时逐个淘汰最早
// 创建的粒子。粒子的速度、颜色、尺寸与寿命都从传入的
// 随机数发生器采样，粒子只影响视觉，不参与碰撞。
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数发生器（粒子属于表现层，用哪个发生器不影响逻辑回放）
//   - x, y: 爆炸中心
//   - count: 粒子数量
func NewExplosionBurst(em *ecs.EntityManager, rng *rand.Rand, x, y float64, count int) {
	for i := 0; i < count; i++ {
		evictOldestParticle(em)

		angle := rng.Float64() * 2 * math.Pi
		speed := (50 + rng.Float64()*150) / config.FrameRateNormalization

		entityID := em.CreateEntity()

		ecs.AddComponent(em, entityID, &components.PositionComponent{
			X: x + (rng.Float64()*10 - 5),
			Y: y + (rng.Float64()*10 - 5),
		})
		ecs.AddComponent(em, entityID, &components.VelocityComponent{
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		})
		ecs.AddComponent(em, entityID, &components.ParticleComponent{
			Size:  2 + rng.Float64()*4,
			Decay: 3 + rng.Float64()*3,
			R:     clampColor(255 + rng.Intn(101) - 50),
			G:     clampColor(200 + rng.Intn(101) - 50),
			B:     clampColor(100 + rng.Intn(101) - 50),
		})
		ecs.AddComponent(em, entityID, &components.LifetimeComponent{
			MaxLifetime: 0.5 + rng.Float64(),
		})
	}
}

// evictOldestParticle 粒子总数达到上限时立即淘汰最早创建的一个
func evictOldestParticle(em *ecs.EntityManager) {
	particles := ecs.GetEntitiesWith1[*components.ParticleComponent](em)
	if len(particles) >= config.MaxParticles {
		em.DestroyEntityNow(particles[0])
	}
}

// clampColor 将颜色分量限制在 [0,255]
func clampColor(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
