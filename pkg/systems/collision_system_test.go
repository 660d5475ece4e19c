package systems

import (
	"testing"

	"github.com/gonewx/cosmicdef/pkg/components"
	"github.com/gonewx/cosmicdef/pkg/config"
	"github.com/gonewx/cosmicdef/pkg/ecs"
	"github.com/gonewx/cosmicdef/pkg/entities"
)

func TestOverlapDetection(t *testing.T) {
	tests := []struct {
		name    string
		ax, ay  float64
		bx, by  float64
		overlap bool
	}{
		{"同一位置", 100, 100, 100, 100, true},
		{"横向部分重叠", 100, 100, 115, 100, true},
		{"横向刚好接触", 100, 100, 100 + (30+30)/2, 100, false},
		{"纵向刚好接触", 100, 100, 100, 100 + (30+30)/2, false},
		{"远离", 100, 100, 500, 500, false},
		{"对角接近", 100, 100, 125, 125, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewCollisionSystem(em)

			a := em.CreateEntity()
			ecs.AddComponent(em, a, &components.PositionComponent{X: tt.ax, Y: tt.ay})
			ecs.AddComponent(em, a, &components.CollisionComponent{Width: 30, Height: 30})

			b := em.CreateEntity()
			ecs.AddComponent(em, b, &components.PositionComponent{X: tt.bx, Y: tt.by})
			ecs.AddComponent(em, b, &components.CollisionComponent{Width: 30, Height: 30})

			if got := system.overlaps(a, b); got != tt.overlap {
				t.Errorf("overlaps(%v,%v): expected %v, got %v", a, b, tt.overlap, got)
			}
			// 对称性
			if got := system.overlaps(b, a); got != tt.overlap {
				t.Errorf("overlaps should be symmetric")
			}
		})
	}
}

func TestCollisionEventCategories(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewCollisionSystem(em)

	playerID := spawnTestPlayer(em, gs)
	pos := playerPos(em, playerID)

	// 玩家位置放一架敌机、一颗敌方子弹和一个道具，全部重叠
	enemyID := spawnTestEnemy(em, gs, pos.X, pos.Y)
	bulletID := entities.NewBulletEntity(em, components.BulletFactionEnemy, pos.X, pos.Y, 0, 1, 1)
	powerupID := entities.NewPowerUpEntity(em, components.PowerUpShield, pos.X, pos.Y, config.DefaultPowerUpConfig())

	// 远处一颗玩家子弹压着另一架敌机
	farEnemyID := spawnTestEnemy(em, gs, 600, 300)
	playerBulletID := entities.NewBulletEntity(em, components.BulletFactionPlayer, 600, 300, 0, -8, 1)

	system.Update(config.FixedDeltaTime)
	events := system.Events()

	// 固定类别顺序：玩家子弹对敌机 → 敌方子弹对玩家 → 玩家对敌机 → 玩家对道具
	wantKinds := []CollisionKind{
		CollisionPlayerBulletEnemy,
		CollisionEnemyBulletPlayer,
		CollisionPlayerEnemy,
		CollisionPlayerPowerUp,
	}
	if len(events) != len(wantKinds) {
		t.Fatalf("Expected %d collision events, got %d: %+v", len(wantKinds), len(events), events)
	}
	for i, want := range wantKinds {
		if events[i].Kind != want {
			t.Errorf("Event %d: expected kind %d, got %d", i, want, events[i].Kind)
		}
	}

	// 配对正确性
	if events[0].A != playerBulletID || events[0].B != farEnemyID {
		t.Error("Player bullet should pair with the far enemy")
	}
	if events[1].A != bulletID || events[1].B != playerID {
		t.Error("Enemy bullet should pair with the player")
	}
	if events[2].A != playerID || events[2].B != enemyID {
		t.Error("Player should pair with the overlapping enemy")
	}
	if events[3].A != playerID || events[3].B != powerupID {
		t.Error("Player should pair with the powerup")
	}
}

func TestCollisionEventsRebuiltEachFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	system := NewCollisionSystem(em)

	playerID := spawnTestPlayer(em, gs)
	pos := playerPos(em, playerID)
	spawnTestEnemy(em, gs, pos.X, pos.Y)

	system.Update(config.FixedDeltaTime)
	if len(system.Events()) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(system.Events()))
	}

	// 敌机移走后事件消失
	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
	enemyPos, _ := ecs.GetComponent[*components.PositionComponent](em, enemies[0])
	enemyPos.X = 900

	system.Update(config.FixedDeltaTime)
	if len(system.Events()) != 0 {
		t.Errorf("Expected no events after separation, got %d", len(system.Events()))
	}
}
