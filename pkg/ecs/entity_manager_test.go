package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBoundsComponent struct {
	X, Y, W, H int
}

type testLabelComponent struct {
	Text string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 || id2 != 2 {
		t.Errorf("IDs should start from 1, got %d and %d", id1, id2)
	}
	if !em.Exists(id1) || em.Exists(99) {
		t.Error("Exists mismatch")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBoundsComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testBoundsComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if b := comp.(*testBoundsComponent); b.X != 100 || b.Y != 200 {
		t.Errorf("Component data mismatch: %+v", b)
	}

	if _, found := em.GetComponent(id, reflect.TypeOf(&testLabelComponent{})); found {
		t.Error("Missing component should not be found")
	}
	if _, found := em.GetComponent(42, reflect.TypeOf(&testBoundsComponent{})); found {
		t.Error("Component on missing entity should not be found")
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testBoundsComponent{W: 10, H: 20})
	if !HasComponent[*testBoundsComponent](em, id) {
		t.Fatal("HasComponent should be true")
	}

	b, ok := GetComponent[*testBoundsComponent](em, id)
	if !ok || b.W != 10 || b.H != 20 {
		t.Errorf("GetComponent = %+v, %v", b, ok)
	}

	if _, ok := GetComponent[*testLabelComponent](em, id); ok {
		t.Error("GetComponent for missing type should fail")
	}

	RemoveComponent[*testBoundsComponent](em, id)
	if HasComponent[*testBoundsComponent](em, id) {
		t.Error("Component should be removed")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	var both []EntityID
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testBoundsComponent{})
		if i%2 == 0 {
			AddComponent(em, id, &testLabelComponent{})
			both = append(both, id)
		}
	}

	if got := GetEntitiesWith1[*testBoundsComponent](em); len(got) != 5 {
		t.Errorf("GetEntitiesWith1 = %d entities, want 5", len(got))
	}

	got := GetEntitiesWith2[*testBoundsComponent, *testLabelComponent](em)
	if !reflect.DeepEqual(got, both) {
		t.Errorf("GetEntitiesWith2 = %v, want %v (creation order)", got, both)
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testBoundsComponent{})

	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("Entity should exist until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed")
	}
	if len(GetEntitiesWith1[*testBoundsComponent](em)) != 0 {
		t.Error("Removed entity should not be queried")
	}

	// 对已删除的实体添加组件无效果
	AddComponent(em, id, &testLabelComponent{})
	if em.Exists(id) {
		t.Error("AddComponent should not resurrect entity")
	}
}
