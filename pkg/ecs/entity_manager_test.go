package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if id1 == InvalidEntity {
		t.Error("Entity ID must never equal InvalidEntity")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 组件以指针保存，修改对后续查询可见
	pos.X = 150
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 150 {
		t.Errorf("Expected mutation to be visible, got X=%f", again.X)
	}

	if _, found := GetComponent[*testVelocityComponent](em, id); found {
		t.Error("Velocity component should not be found")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testPositionComponent{})

	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	em.RemoveComponent(id, TypeOf[*testPositionComponent]())
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 标记后组件仍可读取，但不再算作存活实体
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should still be readable before RemoveMarkedEntities")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}
	if !em.IsMarked(id) {
		t.Error("Entity should be marked")
	}

	// 重复标记不会重复清理
	em.DestroyEntity(id)
	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should be gone after RemoveMarkedEntities")
	}
	if em.IsMarked(id) {
		t.Error("Removed entity should no longer be marked")
	}
	if em.Count() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.Count())
	}

	// 已删除实体的ID不会复用
	next := em.CreateEntity()
	if next == id {
		t.Errorf("Destroyed entity ID %d must not be reused", id)
	}
}

func TestDestroyUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.DestroyEntity(42)

	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Expected 0 removed entities, got %d", removed)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	moving := make([]EntityID, 0)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocityComponent{VX: 1})
			moving = append(moving, id)
		}
	}

	result := em.GetEntitiesWith(
		TypeOf[*testPositionComponent](),
		TypeOf[*testVelocityComponent](),
	)

	if len(result) != len(moving) {
		t.Fatalf("Expected %d entities, got %d", len(moving), len(result))
	}

	// 结果按ID升序
	for i := range result {
		if result[i] != moving[i] {
			t.Errorf("Expected entity %d at index %d, got %d", moving[i], i, result[i])
		}
	}

	// 标记删除的实体不出现在查询结果中
	em.DestroyEntity(moving[0])
	result = em.GetEntitiesWith(TypeOf[*testVelocityComponent]())
	if len(result) != len(moving)-1 {
		t.Errorf("Expected %d entities after destroy, got %d", len(moving)-1, len(result))
	}
	for _, id := range result {
		if id == moving[0] {
			t.Error("Marked entity should not be returned by query")
		}
	}
}

func BenchmarkGetEntitiesWith(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 64; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		em.AddComponent(id, &testVelocityComponent{})
	}

	posType := TypeOf[*testPositionComponent]()
	velType := TypeOf[*testVelocityComponent]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = em.GetEntitiesWith(posType, velType)
	}
}

func TestGetEntitiesWithGeneric(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	em.AddComponent(a, &testPositionComponent{})
	b := em.CreateEntity()
	em.AddComponent(b, &testPositionComponent{})
	em.AddComponent(b, &testVelocityComponent{})

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with position, got %d", len(got))
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != 1 || got[0] != b {
		t.Errorf("Expected only entity %d, got %v", b, got)
	}
}
