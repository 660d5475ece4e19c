package systems

import (
	"math"
	"testing"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
)

func TestHomingAcquiresNearestTargetInRange(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewHomingSystem(em, gs)

	near := spawnTestEnemy(em, gs, 450, 300)
	spawnTestEnemy(em, gs, 550, 300) // 更远的候选
	spawnTestEnemy(em, gs, 900, 900) // 超出追踪范围

	missileID := entities.NewHomingMissileEntity(em, components.BulletFactionPlayer, 400, 300, 1)
	system.Update(config.FixedDeltaTime)

	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, missileID)
	if bullet.TargetID != near {
		t.Errorf("Expected nearest enemy %d locked, got %d", near, bullet.TargetID)
	}
}

func TestHomingIgnoresTargetsOutOfRange(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewHomingSystem(em, gs)

	spawnTestEnemy(em, gs, 400, 300+config.HomingRange+50)

	missileID := entities.NewHomingMissileEntity(em, components.BulletFactionPlayer, 400, 300, 1)
	system.Update(config.FixedDeltaTime)

	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, missileID)
	if bullet.TargetID != 0 {
		t.Errorf("No lock expected beyond homing range, got target %d", bullet.TargetID)
	}
}

func TestHomingTurnIsClamped(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewHomingSystem(em, gs)

	// 目标在导弹正后方，角差最大（π）
	spawnTestEnemy(em, gs, 400, 450)
	missileID := entities.NewHomingMissileEntity(em, components.BulletFactionPlayer, 400, 300, 1)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, missileID)
	before := math.Atan2(vel.VY, vel.VX)

	system.Update(config.FixedDeltaTime)

	after := math.Atan2(vel.VY, vel.VX)
	turned := math.Abs(after - before)
	maxTurn := config.HomingTurnRate*config.FixedDeltaTime*config.FrameRateNormalization + 1e-9
	if turned > maxTurn {
		t.Errorf("Turn %g exceeds per-frame clamp %g", turned, maxTurn)
	}
}

func TestHomingPreservesSpeed(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewHomingSystem(em, gs)

	spawnTestEnemy(em, gs, 500, 350)
	missileID := entities.NewHomingMissileEntity(em, components.BulletFactionPlayer, 400, 300, 1)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, missileID)
	speedBefore := math.Hypot(vel.VX, vel.VY)

	for i := 0; i < 60; i++ {
		system.Update(config.FixedDeltaTime)
	}

	speedAfter := math.Hypot(vel.VX, vel.VY)
	if math.Abs(speedAfter-speedBefore) > 1e-9 {
		t.Errorf("Steering should preserve speed: before %g after %g", speedBefore, speedAfter)
	}
}

func TestHomingReacquiresAfterTargetDies(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewHomingSystem(em, gs)

	first := spawnTestEnemy(em, gs, 450, 300)
	second := spawnTestEnemy(em, gs, 400, 400)

	missileID := entities.NewHomingMissileEntity(em, components.BulletFactionPlayer, 400, 300, 1)
	system.Update(config.FixedDeltaTime)

	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, missileID)
	if bullet.TargetID != first {
		t.Fatalf("Expected first lock on %d, got %d", first, bullet.TargetID)
	}

	em.DestroyEntityNow(first)
	system.Update(config.FixedDeltaTime)

	if bullet.TargetID != second {
		t.Errorf("Expected reacquire of %d after target death, got %d", second, bullet.TargetID)
	}
}

func TestEnemyHomingFrozenDuringTimeFreeze(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewHomingSystem(em, gs)

	spawnTestPlayer(em, gs)
	missileID := entities.NewHomingMissileEntity(em, components.BulletFactionEnemy, 600, 650, 1)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, missileID)
	vx, vy := vel.VX, vel.VY

	gs.FreezeTimer = 1.0
	system.Update(config.FixedDeltaTime)

	if vel.VX != vx || vel.VY != vy {
		t.Error("Enemy missile should not steer while time is frozen")
	}
}
