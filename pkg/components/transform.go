package components

// PositionComponent 实体在屏幕坐标系中的中心位置
type PositionComponent struct {
	X float64 // 水平坐标（像素）
	Y float64 // 垂直坐标（像素，向下为正）
}

// VelocityComponent 实体的速度
// 速度单位为"每基准帧像素"，移动系统按 dt*60 归一化，
// 保证不同帧率下位移一致。
type VelocityComponent struct {
	VX float64 // 水平速度
	VY float64 // 垂直速度
}
