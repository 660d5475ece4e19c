// verify_sim 无头仿真验证程序
//
// 不依赖窗口与渲染，以固定时间步长驱动完整的仿真系统流水线，
// 用脚本化输入代替键盘，逐帧打印仿真输出事件。
// 相同 -seed 与相同帧数必然产生相同的事件序列，用于回放验证。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
	"github.com/gonewx/cosmicdef/pkg/game"
	"github.com/gonewx/cosmicdef/pkg/systems"
)

var (
	seed       = flag.Int64("seed", 12345, "随机数种子（相同种子产生相同事件序列）")
	ticks      = flag.Int("ticks", 3600, "仿真推进的帧数（60 帧 = 1 秒）")
	difficulty = flag.String("difficulty", "COMMANDER", "难度 ID（CADET/PILOT/COMMANDER/ACE/LEGEND）")
	verbose    = flag.Bool("verbose", false, "逐帧打印所有事件（默认只打印关键事件与最终摘要）")
)

// headlessSim 持有一次无头仿真会话的全部系统
type headlessSim struct {
	em        *ecs.EntityManager
	gameState *game.GameState
	playerID  ecs.EntityID

	playerControlSystem *systems.PlayerControlSystem
	behaviorSystem      *systems.BehaviorSystem
	homingSystem        *systems.HomingSystem
	movementSystem      *systems.MovementSystem
	collisionSystem     *systems.CollisionSystem
	combatSystem        *systems.CombatSystem
	powerupSystem       *systems.PowerUpSystem
	waveSpawnSystem     *systems.WaveSpawnSystem
	levelSystem         *systems.LevelSystem
	lifetimeSystem      *systems.LifetimeSystem
}

func newHeadlessSim(diff config.Difficulty, seed int64) *headlessSim {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(diff, seed)

	stats := config.DefaultEnemyStats()
	rules := config.DefaultSpawnRules()
	powerups := config.DefaultPowerUpConfig()

	collisionSystem := systems.NewCollisionSystem(em)
	waveSpawnSystem := systems.NewWaveSpawnSystem(em, gs, stats, rules)

	s := &headlessSim{
		em:                  em,
		gameState:           gs,
		playerID:            entities.NewPlayerEntity(em, diff),
		playerControlSystem: systems.NewPlayerControlSystem(em, gs),
		behaviorSystem:      systems.NewBehaviorSystem(em, gs),
		homingSystem:        systems.NewHomingSystem(em, gs),
		movementSystem:      systems.NewMovementSystem(em, gs),
		collisionSystem:     collisionSystem,
		combatSystem:        systems.NewCombatSystem(em, gs, collisionSystem, powerups),
		powerupSystem:       systems.NewPowerUpSystem(em),
		waveSpawnSystem:     waveSpawnSystem,
		levelSystem:         systems.NewLevelSystem(em, gs, waveSpawnSystem),
		lifetimeSystem:      systems.NewLifetimeSystem(em),
	}
	return s
}

// scriptInput 写入本帧的脚本化玩家操作：持续开火并左右往返移动
func (s *headlessSim) scriptInput(tick int) {
	input, ok := ecs.GetComponent[*components.InputComponent](s.em, s.playerID)
	if !ok {
		return
	}
	// 每 2 秒换一次方向
	goLeft := (tick/120)%2 == 0
	input.MoveLeft = goLeft
	input.MoveRight = !goLeft
	input.MoveUp = false
	input.MoveDown = false
	input.Fire = true
	input.Special = false
}

// step 以固定步长推进一帧，返回本帧产生的事件
func (s *headlessSim) step(tick int) []game.Event {
	dt := config.FixedDeltaTime

	s.scriptInput(tick)
	s.playerControlSystem.Update(dt)
	s.behaviorSystem.Update(dt)
	s.homingSystem.Update(dt)
	s.movementSystem.Update(dt)
	s.collisionSystem.Update(dt)
	s.combatSystem.Update(dt)
	s.powerupSystem.Update(dt)
	s.waveSpawnSystem.Update(dt)
	s.levelSystem.Update(dt)
	s.lifetimeSystem.Update(dt)
	s.em.RemoveMarkedEntities()

	return s.gameState.Events.Drain()
}

func eventName(t game.EventType) string {
	switch t {
	case game.EventEnemyDestroyed:
		return "ENEMY_DESTROYED"
	case game.EventPlayerDamaged:
		return "PLAYER_DAMAGED"
	case game.EventPowerUpCollected:
		return "POWERUP_COLLECTED"
	case game.EventExplosionRequested:
		return "EXPLOSION"
	case game.EventWaveCompleted:
		return "WAVE_COMPLETED"
	case game.EventBossWaveStarted:
		return "BOSS_WAVE_STARTED"
	case game.EventGameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", t)
	}
}

// keyEvent 返回事件是否属于关键事件（非 verbose 模式下仍打印）
func keyEvent(t game.EventType) bool {
	switch t {
	case game.EventWaveCompleted, game.EventBossWaveStarted, game.EventGameOver:
		return true
	}
	return false
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	difficulties := config.DefaultDifficulties()
	diff := difficulties.Get(*difficulty)
	fmt.Printf("verify_sim: seed=%d ticks=%d difficulty=%s (%s)\n", *seed, *ticks, *difficulty, diff.Name)

	sim := newHeadlessSim(diff, *seed)

	counts := make(map[game.EventType]int)
	for tick := 0; tick < *ticks; tick++ {
		events := sim.step(tick)
		for _, e := range events {
			counts[e.Type]++
			if *verbose || keyEvent(e.Type) {
				fmt.Printf("tick=%5d %-18s entity=%d pos=(%.1f,%.1f) amount=%d kind=%q wave=%d\n",
					tick, eventName(e.Type), e.EntityID, e.X, e.Y, e.Amount, e.Kind, e.Wave)
			}
		}
		if sim.gameState.GameOver {
			fmt.Printf("tick=%5d 仿真结束：玩家被击毁\n", tick)
			break
		}
	}

	gs := sim.gameState
	fmt.Println("---")
	fmt.Printf("score=%d wave=%d kills=%d entities=%d gameOver=%v\n",
		gs.Score, gs.Wave, gs.EnemiesKilled, sim.em.EntityCount(), gs.GameOver)
	for _, t := range []game.EventType{
		game.EventEnemyDestroyed, game.EventPlayerDamaged, game.EventPowerUpCollected,
		game.EventExplosionRequested, game.EventWaveCompleted, game.EventBossWaveStarted,
	} {
		fmt.Printf("  %-18s %d\n", eventName(t), counts[t])
	}

	if gs.GameOver {
		os.Exit(1)
	}
}
