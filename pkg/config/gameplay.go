package config

// 本文件集中定义模拟核心的游戏性常量。
// 这些值来自原版 Cosmic Defenders 的平衡数据，除非明确标注，
// 否则不随难度或关卡缩放。

// 屏幕与时间步长
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 1200.0
	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 800.0

	// FixedDeltaTime 固定时间步长（秒），模拟以 60 tick/秒推进
	FixedDeltaTime = 1.0 / 60.0

	// FrameRateNormalization 速度归一化系数。
	// 所有实体速度按"像素/归一帧"定义，位置积分为
	// pos += vel * dt * FrameRateNormalization，
	// 使同一速度值在任意帧率下表现一致（参考 60 tick/秒）。
	FrameRateNormalization = 60.0

	// OffscreenMargin 屏外清理边距（像素）。
	// 实体位置超出可见区域该距离后每帧被清理，与波次状态无关
	OffscreenMargin = 50.0
)

// 玩家参数
const (
	PlayerSpeed             = 5.0   // 玩家基础速度（像素/归一帧）
	PlayerMaxHealth         = 100   // 玩家最大生命值
	PlayerFireRate          = 10.0  // 玩家射速（发/秒）
	PlayerWidth             = 40.0  // 玩家碰撞盒宽度
	PlayerHeight            = 40.0  // 玩家碰撞盒高度
	PlayerInvulnerableTime  = 2.0   // 受击后的无敌时间（秒）
	PlayerAcceleration      = 0.5   // 速度插值系数（每tick向目标速度靠近的比例）
	PlayerFriction          = 0.8   // 每tick速度衰减系数
	SpecialAbilityCooldown  = 15.0  // 特殊能力冷却（秒）
	TimeFreezeDuration      = 3.0   // 时间冻结持续时间（秒）
	PlayerBulletSpawnOffset = 20.0  // 子弹生成点相对玩家中心的向上偏移
	MultiShotSpreadVelocity = 0.3   // 多重射击的散射角（弧度）
)

// 子弹参数
const (
	BulletSpeed        = 8.0 // 普通子弹速度（像素/归一帧）
	BulletWidth        = 4.0 // 子弹碰撞盒宽度
	BulletHeight       = 10.0
	BulletDamage       = 1   // 普通子弹基础伤害
	BulletMaxLifetime  = 5.0 // 子弹最大存活时间（秒）
	HomingBulletSpeed  = 6.0 // 追踪导弹速度（像素/归一帧）
	HomingTurnRate     = 0.1 // 追踪导弹每归一帧最大转向（弧度）
	HomingRange        = 200.0
	EnemyBulletSpeed   = BulletSpeed * 0.8 // 普通敌机子弹速度
	EnemyFireRange     = 400.0             // 敌机开火距离门限：超出则不射击
	MaxBulletsPerSide  = 100               // 每阵营子弹数量上限（FIFO 淘汰）
	ContactDamage      = 10                // 玩家与敌机相撞的固定接触伤害
	BossSpreadBullets  = 5                 // Boss 扇形弹幕子弹数
	BossSpreadAngle    = 0.8               // Boss 扇形弹幕半角（弧度）
	BossCircleBullets  = 8                 // Boss 环形弹幕子弹数
	BossHomingMissiles = 2                 // Boss 追踪导弹齐射数量
)

// 道具参数
const (
	PowerUpSpawnChance = 0.15 // 击毁敌机掉落道具的概率
	PowerUpDuration    = 10.0 // 限时道具持续时间（秒）
	PowerUpFallSpeed   = 2.0  // 道具下落速度（像素/归一帧）
	PowerUpSize        = 24.0 // 道具碰撞盒边长
	PowerUpMaxLifetime = 15.0 // 道具最大存活时间（秒）
	HealthRestore      = 25   // 生命道具恢复量
	RapidFireMult      = 2.0  // 急速射击的射速倍率
	TimeSlowFactor     = 0.5  // 时间减缓时敌方实体的时间缩放
)

// 波次参数
const (
	EnemiesPerWaveBase = 5   // 每波基础敌机数
	EnemiesPerWaveStep = 2   // 每波递增敌机数
	BossWaveInterval   = 5   // Boss 波间隔（波次号整除该值时为 Boss 波）
	WaveSpawnDelay     = 1.0 // 同一波内相邻敌机的生成间隔（秒）
	EnemySpawnMarginX  = 50.0
	EnemySpawnMinY     = -100.0
	EnemySpawnMaxY     = -50.0
	BossSpawnY         = -50.0
)

// 粒子参数（渲染侧，由战斗结算的爆炸事件驱动）
const (
	MaxParticles       = 500 // 粒子数量上限（FIFO 淘汰）
	ExplosionParticles = 20  // 每次爆炸生成的粒子数
	StarCount          = 200 // 背景星空粒子数
)
