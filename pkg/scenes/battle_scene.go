package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
	"github.com/gonewx/cosmicdef/pkg/game"
	"github.com/gonewx/cosmicdef/pkg/systems"
)

// backgroundColor 深空背景色
var backgroundColor = color.RGBA{8, 8, 24, 255}

// BattleScene 战斗场景
//
// 持有本局会话的全部状态：实体管理器、会话状态与系统管线。
// 系统按固定顺序推进，保证同种子同输入序列的回放一致：
// 输入 → 玩家控制 → 敌机行为 → 追踪 → 移动 → 碰撞检测 →
// 战斗结算 → 效果计时 → 波次生成 → 波次编排 → 生命周期 → 粒子。
type BattleScene struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	leaderboard  *game.LeaderboardManager
	difficultyID string

	em *ecs.EntityManager
	gs *game.GameState

	inputSystem         *systems.InputSystem
	playerControlSystem *systems.PlayerControlSystem
	behaviorSystem      *systems.BehaviorSystem
	homingSystem        *systems.HomingSystem
	movementSystem      *systems.MovementSystem
	collisionSystem     *systems.CollisionSystem
	combatSystem        *systems.CombatSystem
	powerUpSystem       *systems.PowerUpSystem
	waveSpawnSystem     *systems.WaveSpawnSystem
	levelSystem         *systems.LevelSystem
	lifetimeSystem      *systems.LifetimeSystem
	particleSystem      *systems.ParticleSystem

	renderSystem *systems.RenderSystem
	hudSystem    *systems.HUDSystem

	scoreSubmitted bool
}

// NewBattleScene 创建并初始化战斗场景
//
// 配置表从嵌入资源加载，加载失败时退回内置默认值（降级而非中止）。
func NewBattleScene(sceneManager *game.SceneManager, settings *game.SettingsManager, leaderboard *game.LeaderboardManager, difficultyID string) *BattleScene {
	difficulties := loadDifficulties()
	difficulty := difficulties.Get(difficultyID)

	stats := loadEnemyStats()
	rules := loadSpawnRules()
	powerupCfg := loadPowerUpConfig()

	em := ecs.NewEntityManager()
	gs := game.NewGameState(difficulty, time.Now().UnixNano())

	scene := &BattleScene{
		sceneManager: sceneManager,
		settings:     settings,
		leaderboard:  leaderboard,
		difficultyID: difficultyID,
		em:           em,
		gs:           gs,
	}

	scene.inputSystem = systems.NewInputSystem(em)
	scene.playerControlSystem = systems.NewPlayerControlSystem(em, gs)
	scene.behaviorSystem = systems.NewBehaviorSystem(em, gs)
	scene.homingSystem = systems.NewHomingSystem(em, gs)
	scene.movementSystem = systems.NewMovementSystem(em, gs)
	scene.collisionSystem = systems.NewCollisionSystem(em)
	scene.combatSystem = systems.NewCombatSystem(em, gs, scene.collisionSystem, powerupCfg)
	scene.powerUpSystem = systems.NewPowerUpSystem(em)
	scene.waveSpawnSystem = systems.NewWaveSpawnSystem(em, gs, stats, rules)
	scene.levelSystem = systems.NewLevelSystem(em, gs, scene.waveSpawnSystem)
	scene.lifetimeSystem = systems.NewLifetimeSystem(em)
	scene.particleSystem = systems.NewParticleSystem(em, rand.New(rand.NewSource(time.Now().UnixNano())))

	scene.renderSystem = systems.NewRenderSystem(em)
	scene.hudSystem = systems.NewHUDSystem(em, gs)

	entities.NewPlayerEntity(em, difficulty)

	log.Printf("[BattleScene] 战斗开始 (难度 %s)", difficulty.Name)
	return scene
}

// Update 推进战斗一帧
func (s *BattleScene) Update(deltaTime float64) {
	if !s.gs.GameOver {
		s.inputSystem.Update(deltaTime)
		s.playerControlSystem.Update(deltaTime)
		s.behaviorSystem.Update(deltaTime)
		s.homingSystem.Update(deltaTime)
		s.movementSystem.Update(deltaTime)
		s.collisionSystem.Update(deltaTime)
		s.combatSystem.Update(deltaTime)
		s.powerUpSystem.Update(deltaTime)
		s.waveSpawnSystem.Update(deltaTime)
		s.levelSystem.Update(deltaTime)
		s.lifetimeSystem.Update(deltaTime)
	}
	s.particleSystem.Update(deltaTime)

	s.em.RemoveMarkedEntities()
	s.consumeEvents()
	s.handleSceneInput()
}

// consumeEvents 消费本帧的仿真输出事件
// 爆炸事件驱动粒子生成，会话结束时提交排行榜
func (s *BattleScene) consumeEvents() {
	for _, event := range s.gs.Events.Drain() {
		switch event.Type {
		case game.EventExplosionRequested:
			s.particleSystem.SpawnExplosion(event.X, event.Y, event.Amount)
		case game.EventBossWaveStarted:
			log.Printf("[BattleScene] 首领波来袭: 第 %d 波", event.Wave)
		case game.EventGameOver:
			s.submitScore()
		}
	}
}

// submitScore 会话结束时提交一次成绩
func (s *BattleScene) submitScore() {
	if s.scoreSubmitted || s.leaderboard == nil {
		return
	}
	s.scoreSubmitted = true

	rank := s.leaderboard.Submit("PLAYER", s.gs.Score, s.gs.Wave, s.difficultyID)
	if rank > 0 {
		log.Printf("[BattleScene] 成绩上榜: 第 %d 名 (得分 %d)", rank, s.gs.Score)
	}
}

// handleSceneInput 场景级输入：结束后重开或返回标题
func (s *BattleScene) handleSceneInput() {
	if s.gs.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sceneManager.StartBattle(s.difficultyID)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sceneManager.SwitchTo(NewTitleScene(s.sceneManager, s.settings, s.leaderboard))
	}
}

// Draw 绘制战斗画面
func (s *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	s.hudSystem.Draw(screen)
}

// 配置加载辅助：失败时退回内置默认值

func loadDifficulties() *config.DifficultyConfig {
	cfg, err := config.LoadDifficulties("data/difficulty.yaml")
	if err != nil {
		log.Printf("[BattleScene] 难度配置加载失败: %v (使用默认值)", err)
		return config.DefaultDifficulties()
	}
	return cfg
}

func loadEnemyStats() *config.EnemyStatsConfig {
	cfg, err := config.LoadEnemyStats("data/enemy_stats.yaml")
	if err != nil {
		log.Printf("[BattleScene] 敌机属性加载失败: %v (使用默认值)", err)
		return config.DefaultEnemyStats()
	}
	return cfg
}

func loadSpawnRules() *config.SpawnRulesConfig {
	cfg, err := config.LoadSpawnRules("data/spawn_rules.yaml")
	if err != nil {
		log.Printf("[BattleScene] 生成规则加载失败: %v (使用默认值)", err)
		return config.DefaultSpawnRules()
	}
	return cfg
}

func loadPowerUpConfig() *config.PowerUpConfig {
	cfg, err := config.LoadPowerUpConfig("data/powerups.yaml")
	if err != nil {
		log.Printf("[BattleScene] 道具配置加载失败: %v (使用默认值)", err)
		return config.DefaultPowerUpConfig()
	}
	return cfg
}
