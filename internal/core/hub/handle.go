// Package hub 实现类型化事件中心
package hub

import (
	"sync"
	"sync/atomic"
)

// ============================================================================
// Handle 实现
// ============================================================================

// handle 订阅句柄
//
// 句柄只持有事件键和记录 id，通过 id 在注册表中查找并
// 删除记录。记录已被移除时（已触发、已释放、已被清除）
// Dispose 是无操作。
type handle[K comparable, P any] struct {
	hub   *Hub[K, P]
	event K
	id    string

	disposeOnce sync.Once
	disposed    atomic.Bool
}

// Dispose 移除关联的监听器
//
// Dispose 是并发安全的，可以多次调用。只影响后续发射：
// 已快照的发射仍会触发该监听器。
func (d *handle[K, P]) Dispose() {
	d.disposeOnce.Do(func() {
		d.disposed.Store(true)
		d.hub.removeByID(d.event, d.id)
	})
}

// Disposed 返回句柄是否已被释放
func (d *handle[K, P]) Disposed() bool {
	return d.disposed.Load()
}

// ============================================================================
// noopHandle 实现
// ============================================================================

// noopHandle 空句柄，用于无效订阅（nil 回调）
type noopHandle struct{}

// Dispose 无操作
func (noopHandle) Dispose() {}

// Disposed 恒为 true
func (noopHandle) Disposed() bool { return true }
