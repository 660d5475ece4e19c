package systems

import (
	"log"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
	"github.com/gonewx/cosmicdef/pkg/game"
)

// WaveSpawnState 波次生成器状态
type WaveSpawnState int

const (
	// WaveIdle 空闲：本波敌机已全部生成
	WaveIdle WaveSpawnState = iota
	// WaveSpawning 生成中：按固定间隔逐架生成
	WaveSpawning
)

// WaveSpawnSystem 波次生成器
//
// 状态机 Idle → Spawning → Idle：StartWave 设定本波敌机数并进入
// Spawning，之后每隔固定延迟生成一架，计数归零回到 Idle。
// 敌机类型按波次对应的权重表抽取；首领波只生成一架首领。
type WaveSpawnSystem struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	stats *config.EnemyStatsConfig
	rules *config.SpawnRulesConfig

	state          WaveSpawnState
	wave           int
	enemiesToSpawn int
	spawnTimer     float64
	spawnDelay     float64
}

// NewWaveSpawnSystem 创建波次生成系统
//
// 生成间隔由难度的生成速率倍率缩放：倍率越高生成越快。
func NewWaveSpawnSystem(em *ecs.EntityManager, gs *game.GameState, stats *config.EnemyStatsConfig, rules *config.SpawnRulesConfig) *WaveSpawnSystem {
	delay := float64(config.WaveSpawnDelay)
	if gs.Difficulty.SpawnRateMult > 0 {
		delay /= gs.Difficulty.SpawnRateMult
	}

	return &WaveSpawnSystem{
		em:         em,
		gs:         gs,
		stats:      stats,
		rules:      rules,
		spawnDelay: delay,
	}
}

// StartWave 开始第 n 波
//
// 敌机数为 base + (n-1)*step；首领波（n 被间隔整除）只生成一架首领。
// 重复对同一波次调用会重置计数，总生成数不变。
func (s *WaveSpawnSystem) StartWave(waveNumber int) {
	s.wave = waveNumber
	s.state = WaveSpawning
	s.spawnTimer = 0
	s.enemiesToSpawn = config.EnemiesPerWaveBase + (waveNumber-1)*config.EnemiesPerWaveStep

	if s.isBossWave() {
		s.enemiesToSpawn = 1
		s.gs.Events.Push(game.Event{Type: game.EventBossWaveStarted, Wave: waveNumber})
	}

	// 空波直接回到空闲，避免卡在生成态
	if s.enemiesToSpawn <= 0 {
		s.state = WaveIdle
		return
	}

	log.Printf("[WaveSpawnSystem] 开始第 %d 波，共 %d 架敌机", waveNumber, s.enemiesToSpawn)
}

// Update 推进生成计时
func (s *WaveSpawnSystem) Update(deltaTime float64) {
	if s.state != WaveSpawning {
		return
	}

	s.spawnTimer += deltaTime
	if s.spawnTimer < s.spawnDelay || s.enemiesToSpawn <= 0 {
		return
	}

	s.spawnOne()
	s.enemiesToSpawn--
	s.spawnTimer = 0

	if s.enemiesToSpawn <= 0 {
		s.state = WaveIdle
	}
}

// IsSpawning 本波是否仍在生成中
func (s *WaveSpawnSystem) IsSpawning() bool {
	return s.state == WaveSpawning
}

// Wave 当前波次号
func (s *WaveSpawnSystem) Wave() int {
	return s.wave
}

// isBossWave 当前波是否为首领波
func (s *WaveSpawnSystem) isBossWave() bool {
	return s.wave%config.BossWaveInterval == 0
}

// spawnOne 生成一架敌机
func (s *WaveSpawnSystem) spawnOne() {
	if s.isBossWave() {
		stats, ok := s.stats.GetStats(string(components.EnemyBoss))
		if !ok {
			log.Printf("[WaveSpawnSystem] 缺少首领属性配置，跳过生成")
			return
		}
		entities.NewEnemyEntity(s.em, components.EnemyBoss, *stats,
			config.ScreenWidth/2, config.BossSpawnY, s.gs.Difficulty)
		return
	}

	enemyType := s.chooseEnemyType()
	stats, ok := s.stats.GetStats(string(enemyType))
	if !ok {
		log.Printf("[WaveSpawnSystem] 缺少敌机 %s 的属性配置，跳过生成", enemyType)
		return
	}

	minX := int(config.EnemySpawnMarginX)
	maxX := int(config.ScreenWidth - config.EnemySpawnMarginX)
	x := float64(minX + s.gs.Rand.Intn(maxX-minX+1))
	y := config.EnemySpawnMinY + s.gs.Rand.Float64()*(config.EnemySpawnMaxY-config.EnemySpawnMinY)

	entities.NewEnemyEntity(s.em, enemyType, *stats, x, y, s.gs.Difficulty)
}

// chooseEnemyType 按当前波次的权重表抽取敌机类型
//
// 波次超出所有有界权重表时落到兜底表；候选按字典序
// 累积权重抽取，保证同种子回放一致。
func (s *WaveSpawnSystem) chooseEnemyType() components.EnemyType {
	weights := s.rules.WeightsForWave(s.wave)
	if len(weights) == 0 {
		log.Printf("[WaveSpawnSystem] 波次 %d 无可用权重表，使用基础敌机", s.wave)
		return components.EnemyBasic
	}

	total := 0
	kinds := config.SortedTypes(weights)
	for _, kind := range kinds {
		total += weights[kind]
	}

	roll := s.gs.Rand.Intn(total) + 1
	cumulative := 0
	for _, kind := range kinds {
		cumulative += weights[kind]
		if roll <= cumulative {
			return components.EnemyType(kind)
		}
	}
	return components.EnemyBasic
}
