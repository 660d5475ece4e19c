package components

import "github.com/gonewx/cosmicdef/pkg/ecs"

// BulletFaction 子弹所属阵营，决定它能命中哪一方
type BulletFaction int

const (
	// BulletFactionPlayer 玩家子弹，只命中敌机
	BulletFactionPlayer BulletFaction = iota
	// BulletFactionEnemy 敌方子弹，只命中玩家
	BulletFactionEnemy
)

// BulletKind 子弹种类，各种类由独立的结算分支处理
type BulletKind int

const (
	// BulletNormal 普通子弹：直线飞行
	BulletNormal BulletKind = iota
	// BulletHoming 追踪子弹：受追踪系统转向
	BulletHoming
	// BulletExplosive 爆破子弹：命中时产生范围爆炸
	BulletExplosive
)

// BulletComponent 子弹的战斗属性
type BulletComponent struct {
	Faction  BulletFaction // 所属阵营
	Kind     BulletKind    // 子弹种类
	Damage   float64       // 命中伤害（玩家子弹已应用难度输出倍率，可为小数）
	Speed    float64       // 速率（追踪转向时保持不变）
	TargetID ecs.EntityID  // 追踪目标实体，0 表示尚未锁定
}
