package systems

import (
	"math/rand"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
)

// ParticleSystem 爆炸粒子的生成与衰减
//
// 粒子是纯表现层：由战斗结算发出的爆炸事件驱动生成，
// 随时间缩小直至消失，不参与碰撞与逻辑回放。
type ParticleSystem struct {
	em  *ecs.EntityManager
	rng *rand.Rand
}

// NewParticleSystem 创建粒子系统
//
// rng 与逻辑随机数发生器分开，粒子表现不影响逻辑回放。
func NewParticleSystem(em *ecs.EntityManager, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{em: em, rng: rng}
}

// SpawnExplosion 在 (x,y) 生成一组爆炸粒子
func (s *ParticleSystem) SpawnExplosion(x, y float64, count int) {
	entities.NewExplosionBurst(s.em, s.rng, x, y, count)
}

// 粒子物理常数
const (
	particleGravity  = 0.05 // 每帧向下的速度增量
	particleFriction = 0.98 // 每帧速度衰减系数
)

// Update 推进粒子衰减一帧
//
// 速度受重力与摩擦影响（位置积分由移动系统统一处理），
// 尺寸随时间缩小，缩到零后销毁。
func (s *ParticleSystem) Update(deltaTime float64) {
	particles := ecs.GetEntitiesWith1[*components.ParticleComponent](s.em)
	for _, id := range particles {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](s.em, id)
		if !ok {
			continue
		}

		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			vel.VY += particleGravity
			vel.VX *= particleFriction
			vel.VY *= particleFriction
		}

		particle.Size -= particle.Decay * deltaTime
		if particle.Size <= 0 {
			s.em.DestroyEntity(id)
		}
	}
}
