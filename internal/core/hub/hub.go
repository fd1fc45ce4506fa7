// Package hub 实现类型化事件中心
package hub

import (
	"sync"

	"github.com/google/uuid"

	pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"
	"github.com/dep2p/go-eventhub/pkg/lib/log"
)

var logger = log.Logger("core/hub")

// ============================================================================
// Hub 实现
// ============================================================================

// Hub 类型化事件中心
//
// 注册表由单个互斥锁保护，锁只在结构性读写期间持有，
// 从不跨越回调执行。回调内可以安全地对同一 Hub 调用
// 任意操作（包括对同一事件的再次发射）。
type Hub[K comparable, P any] struct {
	mu sync.Mutex

	// listeners 事件键到监听器序列的映射（插入顺序 = 订阅顺序）
	listeners map[K][]*listener[P]

	// stats 运行计数器
	stats counters
}

// New 创建新的事件中心
func New[K comparable, P any]() *Hub[K, P] {
	return &Hub[K, P]{
		listeners: make(map[K][]*listener[P]),
	}
}

// ============================================================================
// Hub 接口实现：订阅
// ============================================================================

// Subscribe 注册常驻监听器
//
// 每次发射对应事件时触发，直到句柄被释放或
// RemoveAllListeners 清除。
func (h *Hub[K, P]) Subscribe(event K, fn func(P)) pkgif.Handle {
	return h.add(event, fn, lifetimeAlways)
}

// SubscribeOnce 注册一次性监听器
//
// 首次发射时触发且仅触发一次，即使回调内部递归发射
// 同一事件，或多个发射并发进行。
func (h *Hub[K, P]) SubscribeOnce(event K, fn func(P)) pkgif.Handle {
	return h.add(event, fn, lifetimeOnce)
}

// add 插入监听器记录并返回句柄
func (h *Hub[K, P]) add(event K, fn func(P), lt lifetime) pkgif.Handle {
	if fn == nil {
		logger.Warn("忽略 nil 回调订阅")
		return noopHandle{}
	}

	rec := &listener[P]{
		id:       uuid.New().String(),
		lifetime: lt,
		fn:       fn,
	}

	h.mu.Lock()
	h.listeners[event] = append(h.listeners[event], rec)
	h.mu.Unlock()

	return &handle[K, P]{
		hub:   h,
		event: event,
		id:    rec.id,
	}
}

// ============================================================================
// Hub 接口实现：发射
// ============================================================================

// Emit 发射事件，载荷立即求值
func (h *Hub[K, P]) Emit(event K, payload P, opts ...pkgif.EmitOpt) {
	h.EmitLazy(event, func() P { return payload }, opts...)
}

// EmitLazy 发射事件，载荷惰性求值
//
// 发射协议：
//  1. 加锁，快照当前监听器序列
//  2. 无条件移除其中的一次性监听器并写回注册表
//  3. 解锁
//  4. 序列为空则直接返回，不调用 producer
//  5. 调用 producer 恰好一次获得载荷
//  6. 按订阅顺序触发快照中的回调（同步或经由执行器）
//
// 一次性监听器在任何回调执行前就已从注册表移除，
// 因此回调内的递归发射观察到的是移除后的状态，
// 保证一次性监听器至多触发一次。
func (h *Hub[K, P]) EmitLazy(event K, producer func() P, opts ...pkgif.EmitOpt) {
	settings := &emitSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	h.mu.Lock()
	snapshot := h.listeners[event]
	if len(snapshot) == 0 {
		h.mu.Unlock()
		return
	}

	// 过滤一次性监听器；keep 使用全新底层数组，
	// 后续对注册表的追加不会触及正在迭代的快照
	keep := make([]*listener[P], 0, len(snapshot))
	for _, rec := range snapshot {
		if rec.lifetime != lifetimeOnce {
			keep = append(keep, rec)
		}
	}
	if len(keep) == 0 {
		delete(h.listeners, event)
	} else {
		h.listeners[event] = keep
	}
	h.mu.Unlock()

	h.stats.emits.Add(1)

	payload := producer()

	if settings.Executor == nil {
		for _, rec := range snapshot {
			h.invoke(rec, payload)
		}
		return
	}

	for _, rec := range snapshot {
		rec := rec
		settings.Executor.Submit(func() {
			h.invoke(rec, payload)
		})
		h.stats.submitted.Add(1)
	}
}

// invoke 执行单个回调，panic 不跨监听器传播
func (h *Hub[K, P]) invoke(rec *listener[P], payload P) {
	defer func() {
		if r := recover(); r != nil {
			h.stats.panics.Add(1)
			logger.Error("监听器回调 panic",
				"listener", log.TruncateID(rec.id, 8),
				"panic", r)
		}
	}()

	rec.fn(payload)
	h.stats.delivered.Add(1)
}

// ============================================================================
// Hub 接口实现：移除与查询
// ============================================================================

// RemoveAllListeners 移除监听器
//
// 不带参数时清空整个注册表；带事件键时只清空对应事件。
// 对没有监听器的事件调用是无操作。
func (h *Hub[K, P]) RemoveAllListeners(event ...K) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(event) == 0 {
		h.listeners = make(map[K][]*listener[P])
		return
	}

	for _, k := range event {
		delete(h.listeners, k)
	}
}

// ListenerCount 返回活跃监听器数量
//
// 不带参数时返回所有事件的总数；带事件键时只统计对应事件。
func (h *Hub[K, P]) ListenerCount(event ...K) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(event) == 0 {
		total := 0
		for _, seq := range h.listeners {
			total += len(seq)
		}
		return total
	}

	count := 0
	for _, k := range event {
		count += len(h.listeners[k])
	}
	return count
}

// Events 返回当前有监听器注册的所有事件键
//
// 顺序不保证。
func (h *Hub[K, P]) Events() []K {
	h.mu.Lock()
	defer h.mu.Unlock()

	keys := make([]K, 0, len(h.listeners))
	for k := range h.listeners {
		keys = append(keys, k)
	}
	return keys
}

// ============================================================================
// 内部方法
// ============================================================================

// removeByID 按 id 移除监听器
//
// 监听器已不在注册表时（已触发、已释放、已被清除）返回 false。
func (h *Hub[K, P]) removeByID(event K, id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	seq, ok := h.listeners[event]
	if !ok {
		return false
	}

	for i, rec := range seq {
		if rec.id == id {
			// 拷贝而非原地删除：正在进行的发射快照
			// 可能仍引用原底层数组
			next := make([]*listener[P], 0, len(seq)-1)
			next = append(next, seq[:i]...)
			next = append(next, seq[i+1:]...)

			if len(next) == 0 {
				delete(h.listeners, event)
			} else {
				h.listeners[event] = next
			}
			return true
		}
	}
	return false
}
