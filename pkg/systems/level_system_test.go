package systems

import (
	"testing"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/game"
)

func newLevelRig(seed int64) (*ecs.EntityManager, *game.GameState, *WaveSpawnSystem, *LevelSystem) {
	em := ecs.NewEntityManager()
	gs := newTestState(seed)
	spawner := NewWaveSpawnSystem(em, gs, config.DefaultEnemyStats(), config.DefaultSpawnRules())
	level := NewLevelSystem(em, gs, spawner)
	return em, gs, spawner, level
}

func clearEnemies(em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		em.DestroyEntityNow(id)
	}
}

func TestLevelStartsFirstWave(t *testing.T) {
	_, gs, spawner, level := newLevelRig(1)

	level.Update(config.FixedDeltaTime)

	if !spawner.IsSpawning() {
		t.Error("First update should start wave 1")
	}
	if spawner.Wave() != 1 || gs.Wave != 1 {
		t.Errorf("Expected wave 1, spawner=%d state=%d", spawner.Wave(), gs.Wave)
	}
}

func TestWaveAdvancesWhenFieldCleared(t *testing.T) {
	em, gs, spawner, level := newLevelRig(1)

	level.Update(config.FixedDeltaTime)
	for spawner.IsSpawning() {
		spawner.Update(config.FixedDeltaTime)
	}

	// 生成完但场上还有敌机：不推进
	level.Update(config.FixedDeltaTime)
	if gs.Wave != 1 {
		t.Errorf("Wave should not advance with enemies alive, got %d", gs.Wave)
	}

	clearEnemies(em)
	level.Update(config.FixedDeltaTime)

	if gs.Wave != 2 {
		t.Errorf("Wave should advance to 2 after field clear, got %d", gs.Wave)
	}
	if !spawner.IsSpawning() {
		t.Error("Next wave should start spawning")
	}
	if countEvents(gs.Events.Drain(), game.EventWaveCompleted) != 1 {
		t.Error("Expected a wave completed event")
	}
}

func TestWaveDoesNotAdvanceWhileSpawning(t *testing.T) {
	em, gs, _, level := newLevelRig(1)

	level.Update(config.FixedDeltaTime)
	clearEnemies(em)

	// 生成器仍在出怪，即使场上清空也不结束本波
	level.Update(config.FixedDeltaTime)
	if gs.Wave != 1 {
		t.Errorf("Wave should not advance while spawning, got %d", gs.Wave)
	}
}

func TestNoProgressionAfterGameOver(t *testing.T) {
	em, gs, spawner, level := newLevelRig(1)

	level.Update(config.FixedDeltaTime)
	for spawner.IsSpawning() {
		spawner.Update(config.FixedDeltaTime)
	}
	clearEnemies(em)

	gs.GameOver = true
	level.Update(config.FixedDeltaTime)

	if gs.Wave != 1 {
		t.Errorf("Wave should freeze after game over, got %d", gs.Wave)
	}
}

func TestBossWaveReachedAtInterval(t *testing.T) {
	em, gs, spawner, level := newLevelRig(1)

	level.Update(config.FixedDeltaTime)
	// 快进到第 5 波
	for gs.Wave < config.BossWaveInterval {
		for spawner.IsSpawning() {
			spawner.Update(config.FixedDeltaTime)
		}
		clearEnemies(em)
		level.Update(config.FixedDeltaTime)
	}

	events := gs.Events.Drain()
	if countEvents(events, game.EventBossWaveStarted) != 1 {
		t.Error("Expected boss wave start event at wave 5")
	}
}
