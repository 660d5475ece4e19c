package systems

import (
	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// LevelSystem 波次推进编排
//
// 观察"场上无存活敌机且生成器空闲"判定一波结束，
// 发出完成事件并让生成器开始下一波。会话结束后不再推进。
type LevelSystem struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	spawner *WaveSpawnSystem
	started bool
}

// NewLevelSystem 创建波次编排系统
func NewLevelSystem(em *ecs.EntityManager, gs *game.GameState, spawner *WaveSpawnSystem) *LevelSystem {
	return &LevelSystem{em: em, gs: gs, spawner: spawner}
}

// Update 检查波次进度
func (s *LevelSystem) Update(deltaTime float64) {
	if s.gs.GameOver {
		return
	}

	if !s.started {
		s.spawner.StartWave(s.gs.Wave)
		s.started = true
		return
	}

	if s.spawner.IsSpawning() {
		return
	}

	if len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.em)) > 0 {
		return
	}

	s.gs.Events.Push(game.Event{Type: game.EventWaveCompleted, Wave: s.gs.Wave})
	s.gs.Wave++
	s.spawner.StartWave(s.gs.Wave)
}
