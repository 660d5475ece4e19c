package ecs

import "reflect"

// 本文件提供基于泛型的组件访问辅助函数。
// 相比 EntityManager 上基于 reflect.Type 的方法，
// 泛型版本在调用侧免去了类型断言样板代码：
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)

// GetComponent 获取实体的指定类型组件（泛型版本）
// T 必须是组件的指针类型，如 *components.PositionComponent
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// AddComponent 为实体添加组件（泛型版本，与 em.AddComponent 等价）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// HasComponent 检查实体是否拥有指定类型组件（泛型版本）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	var zero T
	return em.HasComponent(id, reflect.TypeOf(zero))
}

// RemoveComponent 移除实体的指定类型组件（泛型版本）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	var zero T
	em.RemoveComponent(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有指定组件类型的所有实体（ID升序）
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	var zero T
	return em.GetEntitiesWith(reflect.TypeOf(zero))
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体（ID升序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var zero1 T1
	var zero2 T2
	return em.GetEntitiesWith(reflect.TypeOf(zero1), reflect.TypeOf(zero2))
}

// GetEntitiesWith3 查询同时拥有三种组件类型的所有实体（ID升序）
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var zero1 T1
	var zero2 T2
	var zero3 T3
	return em.GetEntitiesWith(reflect.TypeOf(zero1), reflect.TypeOf(zero2), reflect.TypeOf(zero3))
}
