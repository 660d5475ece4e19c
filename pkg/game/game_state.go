package game

import (
	"math/rand"

	"github.com/gonewx/cosmicdef/pkg/config"
)

// GameState 单次战斗会话的全局状态
// 每个会话持有独立实例（支持并行运行多个互不干扰的会话），
// 随机数发生器由外部注入种子，保证同种子同输入序列的回放一致。
type GameState struct {
	Score         int  // 当前得分（已应用难度得分倍率）
	Wave          int  // 当前波次号（从 1 开始）
	EnemiesKilled int  // 累计击毁敌机数
	GameOver      bool // 玩家生命归零后置位，仿真停止推进

	Difficulty config.Difficulty // 会话难度（开始时一次性确定）
	Rand       *rand.Rand        // 会话专用随机数发生器
	Events     *EventQueue       // 仿真输出事件队列

	// 特殊能力：时间冻结
	FreezeTimer float64 // 敌方时间冻结剩余时间（秒）
}

// NewGameState 创建新的战斗会话状态
//
// 参数:
//   - difficulty: 本局难度配置
//   - seed: 随机数种子（相同种子产生相同的掉落与生成序列）
func NewGameState(difficulty config.Difficulty, seed int64) *GameState {
	return &GameState{
		Wave:       1,
		Difficulty: difficulty,
		Rand:       rand.New(rand.NewSource(seed)),
		Events:     &EventQueue{},
	}
}

// AddScore 按难度得分倍率累加得分，返回实际计入的分值
func (gs *GameState) AddScore(base int) int {
	awarded := int(float64(base) * gs.Difficulty.ScoreMult)
	gs.Score += awarded
	return awarded
}

// EnemyTimeScale 返回敌方阵营的时间缩放系数
//
// 时间冻结期间为 0，时间减速效果期间为减速系数，否则为 1。
// 冻结优先于减速。
func (gs *GameState) EnemyTimeScale(timeSlowActive bool) float64 {
	if gs.FreezeTimer > 0 {
		return 0
	}
	if timeSlowActive {
		return config.TimeSlowFactor
	}
	return 1
}
