package systems

import (
	"testing"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

func newPlayerRig(seed int64) (*ecs.EntityManager, *PlayerControlSystem, ecs.EntityID, *components.InputComponent) {
	em := ecs.NewEntityManager()
	gs := newTestState(seed)
	system := NewPlayerControlSystem(em, gs)
	playerID := spawnTestPlayer(em, gs)
	input, _ := ecs.GetComponent[*components.InputComponent](em, playerID)
	return em, system, playerID, input
}

func TestPlayerMovesTowardInput(t *testing.T) {
	em, system, playerID, input := newPlayerRig(1)
	start := playerPos(em, playerID).X

	input.MoveRight = true
	for i := 0; i < 30; i++ {
		system.Update(config.FixedDeltaTime)
	}

	if got := playerPos(em, playerID).X; got <= start {
		t.Errorf("Player should move right, start %g end %g", start, got)
	}
}

func TestPlayerDecelerationAfterRelease(t *testing.T) {
	em, system, playerID, input := newPlayerRig(1)

	input.MoveRight = true
	for i := 0; i < 30; i++ {
		system.Update(config.FixedDeltaTime)
	}
	input.MoveRight = false

	// 松开按键后速度因摩擦衰减趋近于零
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, playerID)
	for i := 0; i < 120; i++ {
		system.Update(config.FixedDeltaTime)
	}
	if vel.VX > 0.01 {
		t.Errorf("Velocity should decay to near zero, got %g", vel.VX)
	}
}

func TestPlayerClampedToScreen(t *testing.T) {
	em, system, playerID, input := newPlayerRig(1)

	input.MoveLeft = true
	input.MoveUp = true
	for i := 0; i < 1200; i++ {
		system.Update(config.FixedDeltaTime)
	}

	pos := playerPos(em, playerID)
	halfW := config.PlayerWidth / 2.0
	halfH := config.PlayerHeight / 2.0
	if pos.X < halfW || pos.Y < halfH {
		t.Errorf("Player escaped top-left bound: (%g, %g)", pos.X, pos.Y)
	}

	input.MoveLeft = false
	input.MoveUp = false
	input.MoveRight = true
	input.MoveDown = true
	for i := 0; i < 2400; i++ {
		system.Update(config.FixedDeltaTime)
	}

	if pos.X > config.ScreenWidth-halfW || pos.Y > config.ScreenHeight-halfH {
		t.Errorf("Player escaped bottom-right bound: (%g, %g)", pos.X, pos.Y)
	}
}

func TestFireCreatesBulletAndSetsCooldown(t *testing.T) {
	em, system, playerID, input := newPlayerRig(1)

	input.Fire = true
	system.Update(config.FixedDeltaTime)

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](em)
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(bullets))
	}

	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, bullets[0])
	if bullet.Faction != components.BulletFactionPlayer {
		t.Error("Player fire should create a player faction bullet")
	}

	// 冷却期间按住开火不再出弹
	system.Update(config.FixedDeltaTime)
	if got := len(ecs.GetEntitiesWith1[*components.BulletComponent](em)); got != 1 {
		t.Errorf("Cooldown should block firing, got %d bullets", got)
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if player.BulletDamage != bullet.Damage {
		t.Errorf("Bullet damage should equal player output damage %g, got %g", player.BulletDamage, bullet.Damage)
	}
}

func TestFireRateOverTime(t *testing.T) {
	em, system, _, input := newPlayerRig(1)

	input.Fire = true
	// 1 秒内 10 发/秒的射速应产生接近 10 颗子弹
	// （冷却按整帧粒度推进，实际略低于理论值）
	for i := 0; i < 60; i++ {
		system.Update(config.FixedDeltaTime)
	}

	got := len(ecs.GetEntitiesWith1[*components.BulletComponent](em))
	if got < 8 || got > 11 {
		t.Errorf("Expected about 10 bullets in one second, got %d", got)
	}
}

func TestMultiShotFiresThreeBullets(t *testing.T) {
	em, system, playerID, input := newPlayerRig(1)
	playerEffects(em, playerID).MultiShotTimer = 5.0

	input.Fire = true
	system.Update(config.FixedDeltaTime)

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](em)
	if len(bullets) != 3 {
		t.Fatalf("Multi-shot should fire 3 bullets, got %d", len(bullets))
	}

	// 左中右三发的横向速度各不相同
	var vxs []float64
	for _, id := range bullets {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		vxs = append(vxs, vel.VX)
	}
	if !(vxs[0] < 0 && vxs[1] == 0 && vxs[2] > 0) {
		t.Errorf("Expected spread velocities (neg, zero, pos), got %v", vxs)
	}
}

func TestRapidFireDoublesRate(t *testing.T) {
	countShots := func(rapid bool) int {
		em, system, playerID, input := newPlayerRig(1)
		if rapid {
			playerEffects(em, playerID).RapidFireTimer = 60.0
		}
		input.Fire = true
		for i := 0; i < 60; i++ {
			system.Update(config.FixedDeltaTime)
		}
		return len(ecs.GetEntitiesWith1[*components.BulletComponent](em))
	}

	normal := countShots(false)
	rapid := countShots(true)
	if rapid < normal*3/2 {
		t.Errorf("Rapid fire should shoot much faster: normal=%d rapid=%d", normal, rapid)
	}
}

func TestHomingEffectMarksBullets(t *testing.T) {
	em, system, playerID, input := newPlayerRig(1)
	playerEffects(em, playerID).HomingTimer = 5.0

	input.Fire = true
	system.Update(config.FixedDeltaTime)

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](em)
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(bullets))
	}
	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, bullets[0])
	if bullet.Kind != components.BulletHoming {
		t.Error("Bullets fired under the homing effect should home")
	}
}

func TestSpecialTriggersTimeFreeze(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewPlayerControlSystem(em, gs)
	playerID := spawnTestPlayer(em, gs)
	input, _ := ecs.GetComponent[*components.InputComponent](em, playerID)

	input.Special = true
	system.Update(config.FixedDeltaTime)

	if gs.FreezeTimer <= 0 {
		t.Error("Special should start the freeze timer")
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if player.SpecialCooldown <= 0 {
		t.Error("Special should start its cooldown")
	}

	// 冷却期间再次触发无效
	frozen := gs.FreezeTimer
	cooldown := player.SpecialCooldown
	system.Update(config.FixedDeltaTime)
	if gs.FreezeTimer > frozen || player.SpecialCooldown > cooldown {
		t.Error("Special should not re-trigger during cooldown")
	}
}
