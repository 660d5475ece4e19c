package game

import "github.com/gonewx/cosmicdef/pkg/ecs"

// EventType 仿真输出事件类型
type EventType int

const (
	// EventEnemyDestroyed 敌机被击毁（Amount 为得分）
	EventEnemyDestroyed EventType = iota
	// EventPlayerDamaged 玩家受到伤害（Amount 为实际扣血量）
	EventPlayerDamaged
	// EventPowerUpCollected 玩家拾取强化道具（Kind 为道具种类）
	EventPowerUpCollected
	// EventExplosionRequested 请求在 (X,Y) 播放爆炸效果
	EventExplosionRequested
	// EventWaveCompleted 一波敌机全部清除（Wave 为完成的波次号）
	EventWaveCompleted
	// EventBossWaveStarted 首领波次开始（Wave 为波次号）
	EventBossWaveStarted
	// EventGameOver 玩家生命归零，会话结束
	EventGameOver
)

// Event 单条仿真输出事件
// 各字段按事件类型选择性填写，未用字段保持零值。
type Event struct {
	Type      EventType
	EntityID  ecs.EntityID // 相关实体（如被击毁的敌机）
	X, Y      float64      // 事件发生位置
	Amount    int          // 数值载荷（得分、伤害量等）
	Remaining int          // 玩家受伤事件中的剩余生命
	Kind      string       // 字符串载荷（道具种类等）
	Wave      int          // 相关波次号
}

// EventQueue 仿真输出事件队列
// 各系统在更新期间追加事件，外层（渲染、音效、HUD）每帧
// 通过 Drain 消费。事件顺序即产生顺序。
type EventQueue struct {
	events []Event
}

// Push 追加一条事件
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain 取出并清空当前所有事件
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len 返回待消费事件数量
func (q *EventQueue) Len() int {
	return len(q.events)
}
