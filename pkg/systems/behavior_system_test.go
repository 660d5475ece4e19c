package systems

import (
	"testing"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
	"github.com/gonewx/cosmicdef/pkg/game"
)

func spawnVariant(em *ecs.EntityManager, gs *game.GameState, variant components.EnemyType, x, y float64) ecs.EntityID {
	stats, _ := config.DefaultEnemyStats().GetStats(string(variant))
	return entities.NewEnemyEntity(em, variant, *stats, x, y, gs.Difficulty)
}

func TestBasicEnemySteersTowardDistantPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	playerID := spawnTestPlayer(em, gs) // (600, 700)
	_ = playerID
	enemyID := spawnVariant(em, gs, components.EnemyBasic, 200, 100)

	system.Update(config.FixedDeltaTime)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemyID)
	if vel.VX <= 0 {
		t.Errorf("Enemy far left of player should steer right, got VX=%g", vel.VX)
	}
	if vel.VY <= 0 {
		t.Errorf("Enemy should descend, got VY=%g", vel.VY)
	}
}

func TestBasicEnemyFallsStraightWhenAligned(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	spawnTestPlayer(em, gs) // (600, 700)
	enemyID := spawnVariant(em, gs, components.EnemyBasic, 620, 100)

	system.Update(config.FixedDeltaTime)

	// 横向偏差 20 < 50 的阈值，不做横向修正
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemyID)
	if vel.VX != 0 {
		t.Errorf("Nearly aligned enemy should not steer, got VX=%g", vel.VX)
	}
}

func TestFastEnemyRetargetsPeriodically(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	spawnTestPlayer(em, gs)
	enemyID := spawnVariant(em, gs, components.EnemyFast, 400, 100)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, enemyID)
	initialTarget := enemy.TargetX

	// 半秒周期内保持原目标，行为相位计时器随帧推进
	for i := 0; i < 29; i++ {
		system.Update(config.FixedDeltaTime)
	}
	if enemy.TargetX != initialTarget {
		t.Errorf("Target should hold within the retarget period, got %g", enemy.TargetX)
	}

	// 跨过周期后重选目标并重置相位计时器
	for i := 0; i < 5; i++ {
		system.Update(config.FixedDeltaTime)
	}
	if enemy.AITimer > 0.5 {
		t.Errorf("Phase timer should reset on retarget, got %g", enemy.AITimer)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, enemyID)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemyID)
	want := (enemy.TargetX - pos.X) * 0.1
	if vel.VX != want {
		t.Errorf("Lateral speed should be proportional to target offset: expected %g, got %g", want, vel.VX)
	}
}

func TestZigzagEnemyOscillates(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	spawnTestPlayer(em, gs)
	enemyID := spawnVariant(em, gs, components.EnemyZigzag, 400, 100)

	sawLeft, sawRight := false, false
	for i := 0; i < 240; i++ {
		system.Update(config.FixedDeltaTime)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemyID)
		if vel.VX < -0.5 {
			sawLeft = true
		}
		if vel.VX > 0.5 {
			sawRight = true
		}
	}

	if !sawLeft || !sawRight {
		t.Errorf("Zigzag enemy should oscillate both ways: left=%v right=%v", sawLeft, sawRight)
	}
}

func TestHeavyEnemyDescendsSlower(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	spawnTestPlayer(em, gs)
	enemyID := spawnVariant(em, gs, components.EnemyHeavy, 400, 100)

	system.Update(config.FixedDeltaTime)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, enemyID)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemyID)
	if vel.VY >= enemy.Speed {
		t.Errorf("Heavy enemy should descend slower than base speed %g, got %g", enemy.Speed, vel.VY)
	}
}

func TestBossCyclesPatterns(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	spawnTestPlayer(em, gs)
	bossID := spawnVariant(em, gs, components.EnemyBoss, 600, 150)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, bossID)
	if enemy.PatternIndex != 0 {
		t.Fatalf("Boss should start at pattern 0, got %d", enemy.PatternIndex)
	}

	// 推进略超一个模式周期
	ticks := int(5.2 / config.FixedDeltaTime)
	for i := 0; i < ticks; i++ {
		system.Update(config.FixedDeltaTime)
	}
	if enemy.PatternIndex != 1 {
		t.Errorf("Boss should switch to pattern 1 after one period, got %d", enemy.PatternIndex)
	}

	for i := 0; i < 2*ticks; i++ {
		system.Update(config.FixedDeltaTime)
	}
	if enemy.PatternIndex != 0 {
		t.Errorf("Boss pattern should wrap back to 0, got %d", enemy.PatternIndex)
	}
}

func TestEnemyFiresOnlyWithinRange(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	spawnTestPlayer(em, gs) // (600, 700)

	// 远处敌机不开火
	farID := spawnVariant(em, gs, components.EnemyBasic, 600, 100)
	system.Update(config.FixedDeltaTime)
	if got := len(ecs.GetEntitiesWith1[*components.BulletComponent](em)); got != 0 {
		t.Errorf("Enemy beyond fire range should not shoot, got %d bullets", got)
	}
	em.DestroyEntityNow(farID)

	// 近处敌机开火
	spawnVariant(em, gs, components.EnemyBasic, 600, 400)
	system.Update(config.FixedDeltaTime)

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](em)
	if len(bullets) != 1 {
		t.Fatalf("Enemy within range should shoot once, got %d bullets", len(bullets))
	}
	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, bullets[0])
	if bullet.Faction != components.BulletFactionEnemy {
		t.Error("Enemy bullet should carry the enemy faction")
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, bullets[0])
	if vel.VY <= 0 {
		t.Errorf("Bullet should head down toward the player, got VY=%g", vel.VY)
	}
}

func TestTimeFreezeStopsEnemyBehavior(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	spawnTestPlayer(em, gs)
	enemyID := spawnVariant(em, gs, components.EnemyBasic, 600, 400)

	gs.FreezeTimer = 1.0
	for i := 0; i < 60; i++ {
		system.Update(config.FixedDeltaTime)
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, enemyID)
	if enemy.AITimer != 0 {
		t.Errorf("Frozen enemy AI phase should not advance, got %g", enemy.AITimer)
	}
	if got := len(ecs.GetEntitiesWith1[*components.BulletComponent](em)); got != 0 {
		t.Errorf("Frozen enemy should not shoot, got %d bullets", got)
	}
}

func TestTimeSlowHalvesEnemyPhase(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewBehaviorSystem(em, gs)

	playerID := spawnTestPlayer(em, gs)
	playerEffects(em, playerID).TimeSlowTimer = 60.0

	// 放远避免开火影响
	enemyID := spawnVariant(em, gs, components.EnemyZigzag, 600, 100)

	for i := 0; i < 60; i++ {
		system.Update(config.FixedDeltaTime)
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, enemyID)
	want := 1.0 * config.TimeSlowFactor
	if diff := enemy.AITimer - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Slowed enemy phase should advance at half speed: expected %g, got %g", want, enemy.AITimer)
	}
}
