package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/ecs"
)

// InputSystem 读取键盘状态并写入玩家的操作意图
//
// 方向键/WASD 移动，空格开火，X 或左Shift 触发特殊能力。
// 仿真核心只消费 InputComponent，不直接访问键盘，
// 无头驱动程序可以绕过本系统直接写意图。
type InputSystem struct {
	em *ecs.EntityManager
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager) *InputSystem {
	return &InputSystem{em: em}
}

// Update 采样本帧输入
func (s *InputSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith1[*components.InputComponent](s.em)
	for _, id := range players {
		input, ok := ecs.GetComponent[*components.InputComponent](s.em, id)
		if !ok {
			continue
		}

		input.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
		input.MoveRight = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
		input.MoveUp = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
		input.MoveDown = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
		input.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
		input.Special = inpututil.IsKeyJustPressed(ebiten.KeyX) ||
			inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	}
}
