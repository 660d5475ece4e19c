package systems

import (
	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// 测试共用的会话与实体构造函数

func newTestState(seed int64) *game.GameState {
	difficulty := config.DefaultDifficulties().Get("COMMANDER")
	return game.NewGameState(difficulty, seed)
}

func spawnTestPlayer(em *ecs.EntityManager, gs *game.GameState) ecs.EntityID {
	return entities.NewPlayerEntity(em, gs.Difficulty)
}

// spawnTestEnemy 在指定位置创建一架基础敌机
func spawnTestEnemy(em *ecs.EntityManager, gs *game.GameState, x, y float64) ecs.EntityID {
	stats := config.EnemyStats{Speed: 2, Health: 1, Score: 100, Width: 30, Height: 30, FireRate: 1.0}
	return entities.NewEnemyEntity(em, components.EnemyBasic, stats, x, y, gs.Difficulty)
}

// spawnTestEnemyWithHealth 创建一架指定生命值的基础敌机
func spawnTestEnemyWithHealth(em *ecs.EntityManager, gs *game.GameState, x, y float64, health int) ecs.EntityID {
	stats := config.EnemyStats{Speed: 2, Health: health, Score: 100, Width: 30, Height: 30, FireRate: 1.0}
	return entities.NewEnemyEntity(em, components.EnemyBasic, stats, x, y, gs.Difficulty)
}

func playerPos(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos
}

func playerEffects(em *ecs.EntityManager, id ecs.EntityID) *components.ActiveEffectsComponent {
	effects, _ := ecs.GetComponent[*components.ActiveEffectsComponent](em, id)
	return effects
}

func playerHealth(em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	return health
}

// countEvents 统计指定类型的事件数量
func countEvents(events []game.Event, eventType game.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}
