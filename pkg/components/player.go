package components

// InputComponent 一帧内的玩家操作意图
// 由输入系统（或无头驱动程序）在每帧开始时写入，
// 玩家控制系统只读取意图，不直接访问键盘。
type InputComponent struct {
	MoveLeft  bool // 向左移动
	MoveRight bool // 向右移动
	MoveUp    bool // 向上移动
	MoveDown  bool // 向下移动
	Fire      bool // 按住开火
	Special   bool // 触发特殊能力（时间冻结）
}

// PlayerComponent 玩家飞船的战斗状态
type PlayerComponent struct {
	FireCooldown      float64 // 距下次可开火的剩余时间（秒）
	InvulnerableTimer float64 // 无敌剩余时间（秒），>0 时不受任何伤害
	SpecialCooldown   float64 // 特殊能力冷却剩余时间（秒）
	BulletDamage      float64 // 子弹伤害输出（已应用难度输出倍率）
}

// ActiveEffectsComponent 玩家身上的限时强化效果
// 拾取同类道具时重置对应计时器而非叠加。
type ActiveEffectsComponent struct {
	ShieldTimer    float64 // 护盾剩余时间（秒），期间免疫所有伤害
	RapidFireTimer float64 // 射速翻倍剩余时间（秒）
	MultiShotTimer float64 // 三发散射剩余时间（秒）
	TimeSlowTimer  float64 // 敌方时间减速剩余时间（秒）
	HomingTimer    float64 // 子弹追踪剩余时间（秒）
}
