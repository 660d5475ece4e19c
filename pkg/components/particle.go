package components

// ParticleComponent 爆炸与尾焰粒子的表现属性
// 粒子只做视觉效果，不参与碰撞。
type ParticleComponent struct {
	Size  float64 // 当前尺寸（像素）
	Decay float64 // 每秒尺寸衰减量
	R     uint8   // 颜色分量
	G     uint8
	B     uint8
}
