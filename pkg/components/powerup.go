package components

// PowerUpKind 强化道具种类
type PowerUpKind string

const (
	PowerUpHealth      PowerUpKind = "health"       // 立即恢复生命
	PowerUpShield      PowerUpKind = "shield"       // 护盾：抵挡下一次伤害
	PowerUpRapidFire   PowerUpKind = "rapid_fire"   // 限时射速翻倍
	PowerUpMultiShot   PowerUpKind = "multi_shot"   // 限时三发散射
	PowerUpScreenClear PowerUpKind = "screen_clear" // 立即清除所有敌机
	PowerUpTimeSlow    PowerUpKind = "time_slow"    // 限时敌方时间减速
	PowerUpHoming      PowerUpKind = "homing"       // 限时子弹追踪
)

// PowerUpComponent 掉落中的强化道具
type PowerUpComponent struct {
	Kind PowerUpKind // 道具种类
}
