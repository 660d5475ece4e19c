package components

// HealthComponent 存储实体的生命值信息
// 用于玩家与敌机等可被攻击的实体。
// 生命值使用浮点：难度倍率会让子弹伤害出现小数（如 0.6），
// 取整会改变实际需要的命中次数。
type HealthComponent struct {
	CurrentHealth float64 // 当前生命值
	MaxHealth     float64 // 最大生命值
}
