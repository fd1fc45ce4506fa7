// Package interfaces 定义 EventHub 公共接口
//
// 本文件定义 Hub 接口，提供类型化的事件发布/订阅功能。
package interfaces

// Hub 定义类型化事件中心接口
//
// Hub 以 K 为事件键、P 为载荷类型，提供进程内的
// 发布/订阅机制。所有方法均可并发调用。
type Hub[K comparable, P any] interface {
	// Subscribe 注册常驻监听器，每次发射都会触发
	Subscribe(event K, fn func(P)) Handle

	// SubscribeOnce 注册一次性监听器，首次发射后自动移除
	SubscribeOnce(event K, fn func(P)) Handle

	// RemoveAllListeners 移除监听器
	//
	// 不带参数时清空整个注册表；带事件键时只清空对应事件。
	RemoveAllListeners(event ...K)

	// ListenerCount 返回活跃监听器数量
	//
	// 不带参数时返回所有事件的总数；带事件键时只统计对应事件。
	ListenerCount(event ...K) int

	// Emit 发射事件，载荷立即求值
	Emit(event K, payload P, opts ...EmitOpt)

	// EmitLazy 发射事件，载荷惰性求值
	//
	// producer 至多调用一次，且仅在存在监听器时调用。
	EmitLazy(event K, producer func() P, opts ...EmitOpt)

	// Events 返回当前有监听器注册的所有事件键
	Events() []K

	// Watch 创建基于通道的订阅
	Watch(event K, opts ...WatchOpt) Watcher[P]

	// Stats 返回运行统计快照
	Stats() Stats
}

// Handle 定义订阅句柄接口
//
// Dispose 是幂等的：重复调用、或在监听器已被移除后调用，
// 都是无操作，不报错。句柄不延长 Hub 或监听器的生命周期。
type Handle interface {
	// Dispose 移除关联的监听器
	Dispose()

	// Disposed 返回句柄是否已被释放
	Disposed() bool
}

// Watcher 定义通道订阅接口
type Watcher[P any] interface {
	// Out 返回接收载荷的通道
	Out() <-chan P

	// Close 取消订阅并关闭通道
	Close() error
}

// Stats 运行统计快照
//
// Stats 表示某个时间点的 Hub 指标快照。
type Stats struct {
	Emits           uint64 // 发射次数（仅计有监听器的发射）
	Delivered       uint64 // 同步投递成功次数
	Submitted       uint64 // 提交到执行器的任务数
	Dropped         uint64 // Watcher 缓冲区满丢弃数
	CallbackPanics  uint64 // 回调 panic 次数
	ActiveListeners int    // 当前活跃监听器数
}
