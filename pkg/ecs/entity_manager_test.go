package ecs

import (
	"reflect"
	"testing"
)

type testPosition struct {
	X, Y float64
}

type testVelocity struct {
	VX, VY float64
}

func TestCreateEntityAssignsUniqueAscendingIDs(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	b := em.CreateEntity()
	c := em.CreateEntity()

	if a == 0 {
		t.Error("Entity ID 0 is reserved as invalid")
	}
	if !(a < b && b < c) {
		t.Errorf("Expected ascending IDs, got %d, %d, %d", a, b, c)
	}
}

func TestAddGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPosition{X: 10, Y: 20})

	comp, ok := em.GetComponent(id, reflect.TypeOf(&testPosition{}))
	if !ok {
		t.Fatal("Expected component to be found")
	}
	pos := comp.(*testPosition)
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("Expected (10, 20), got (%g, %g)", pos.X, pos.Y)
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{})

	em.DestroyEntity(id)

	// 帧内仍视为存活，帧末清理后消失
	if !em.IsAlive(id) {
		t.Error("Marked entity should stay alive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
}

func TestDestroyEntityNowIsImmediate(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{})

	em.DestroyEntityNow(id)

	if em.IsAlive(id) {
		t.Error("DestroyEntityNow should remove the entity immediately")
	}
}

func TestGetEntitiesWithReturnsAscendingOrder(t *testing.T) {
	em := NewEntityManager()

	// 乱序添加组件，查询必须按ID升序返回
	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPosition{})
		ids = append(ids, id)
	}

	result := em.GetEntitiesWith(reflect.TypeOf(&testPosition{}))
	if len(result) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(result))
	}
	for i := 1; i < len(result); i++ {
		if result[i-1] >= result[i] {
			t.Fatalf("Query order not ascending at index %d: %d >= %d", i, result[i-1], result[i])
		}
	}
}

func TestGetEntitiesWithFiltersByAllTypes(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &testPosition{})
	em.AddComponent(both, &testVelocity{})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &testPosition{})

	result := em.GetEntitiesWith(
		reflect.TypeOf(&testPosition{}),
		reflect.TypeOf(&testVelocity{}),
	)
	if len(result) != 1 || result[0] != both {
		t.Errorf("Expected only entity %d, got %v", both, result)
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPosition{X: 5})

	if !HasComponent[*testPosition](em, id) {
		t.Error("HasComponent should report true")
	}

	pos, ok := GetComponent[*testPosition](em, id)
	if !ok || pos.X != 5 {
		t.Errorf("Expected X=5, got ok=%v pos=%+v", ok, pos)
	}

	RemoveComponent[*testPosition](em, id)
	if HasComponent[*testPosition](em, id) {
		t.Error("Component should be removed")
	}

	if got := len(GetEntitiesWith1[*testPosition](em)); got != 0 {
		t.Errorf("Expected no entities after removal, got %d", got)
	}
}
