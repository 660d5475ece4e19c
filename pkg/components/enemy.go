package components

// EnemyType 敌机变体类型
type EnemyType string

const (
	EnemyBasic  EnemyType = "basic"  // 基础敌机：直线下落，偶尔偏向玩家
	EnemyFast   EnemyType = "fast"   // 快速敌机：周期性随机选取横向目标
	EnemyHeavy  EnemyType = "heavy"  // 重型敌机：缓慢下落，间歇摆动
	EnemyZigzag EnemyType = "zigzag" // 之字敌机：正弦横向运动
	EnemyBoss   EnemyType = "boss"   // 首领：循环切换三种移动模式
)

// EnemyComponent 敌机的行为与战斗状态
// AITimer 随每帧推进，各变体的行为规律都以它为相位基准。
type EnemyComponent struct {
	Type         EnemyType // 变体类型
	Speed        float64   // 基准移动速度（已应用难度倍率）
	Score        int       // 击毁基础得分（难度得分倍率在结算时应用）
	FireRate     float64   // 每秒开火次数
	FireCooldown float64   // 距下次可开火的剩余时间（秒）
	AITimer      float64   // 行为相位计时器（秒）

	// 快速敌机的横向目标
	TargetX float64 // 当前追踪的横向目标位置

	// 首领的模式循环
	PatternIndex int     // 当前移动模式索引（0..2）
	PatternTimer float64 // 当前模式已持续时间（秒）
}
