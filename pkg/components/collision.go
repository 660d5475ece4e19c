package components

// CollisionComponent 轴对齐碰撞盒
// 碰撞盒以实体位置为中心，判定使用中心距离与半宽/半高之和比较。
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度
	Height float64 // 碰撞盒高度
}
