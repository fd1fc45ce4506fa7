// Package hub 实现类型化事件中心
package hub

import (
	"sync/atomic"

	pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"
)

// counters 运行计数器
//
// 全部使用 atomic，读写不经过注册表锁。
type counters struct {
	emits     atomic.Uint64 // 有监听器的发射次数
	delivered atomic.Uint64 // 同步投递成功次数
	submitted atomic.Uint64 // 提交到执行器的任务数
	dropped   atomic.Uint64 // Watcher 缓冲区满丢弃数
	panics    atomic.Uint64 // 回调 panic 次数
}

// Stats 返回运行统计快照
func (h *Hub[K, P]) Stats() pkgif.Stats {
	return pkgif.Stats{
		Emits:           h.stats.emits.Load(),
		Delivered:       h.stats.delivered.Load(),
		Submitted:       h.stats.submitted.Load(),
		Dropped:         h.stats.dropped.Load(),
		CallbackPanics:  h.stats.panics.Load(),
		ActiveListeners: h.ListenerCount(),
	}
}
