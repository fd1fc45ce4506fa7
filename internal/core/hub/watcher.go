// Package hub 实现类型化事件中心
package hub

import (
	"sync"
	"sync/atomic"

	pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"
)

// ============================================================================
// Watcher 实现
// ============================================================================

// watcher 基于通道的订阅
//
// 在常驻监听器之上封装一个缓冲通道。缓冲区满时丢弃
// 载荷而不是阻塞发射方。
type watcher[P any] struct {
	out    chan P
	handle pkgif.Handle

	mu        sync.Mutex // 保护 closed 与通道关闭的互斥
	closed    bool
	closeOnce sync.Once
	dropCount atomic.Int64
}

// Watch 创建基于通道的订阅
//
// 默认缓冲区大小为 16，可用 BufSize 调整。
func (h *Hub[K, P]) Watch(event K, opts ...pkgif.WatchOpt) pkgif.Watcher[P] {
	settings := &watchSettings{
		Buffer: 16, // 默认缓冲区大小
	}
	for _, opt := range opts {
		opt(settings)
	}

	w := &watcher[P]{
		out: make(chan P, settings.Buffer),
	}

	w.handle = h.Subscribe(event, func(payload P) {
		w.mu.Lock()
		defer w.mu.Unlock()

		if w.closed {
			return
		}

		select {
		case w.out <- payload:
			// 成功入队
		default:
			// 缓冲区满，丢弃载荷
			h.stats.dropped.Add(1)
			dropped := w.dropCount.Add(1)

			// 每丢弃 100 个警告一次，避免日志泛滥
			if dropped%100 == 1 {
				logger.Warn("慢消费者检测",
					"dropped", dropped,
					"reason", "watcher buffer full")
			}
		}
	})

	return w
}

// Out 返回接收载荷的通道
func (w *watcher[P]) Out() <-chan P {
	return w.out
}

// Close 取消订阅并关闭通道
//
// Close 是并发安全的，可以多次调用。关闭后：
//  1. 释放底层监听器
//  2. 关闭通道（缓冲中的剩余载荷仍可被读取）
func (w *watcher[P]) Close() error {
	w.closeOnce.Do(func() {
		w.handle.Dispose()

		// 在锁内标记关闭：正在转发的回调要么已完成入队，
		// 要么随后观察到 closed 并放弃发送
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()

		close(w.out)
	})

	return nil
}
