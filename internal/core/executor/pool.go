// Package executor 实现回调执行器
package executor

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dep2p/go-eventhub/pkg/lib/log"
)

var logger = log.Logger("core/executor")

// ============================================================================
// Pool 实现
// ============================================================================

// Pool 工作池执行器
//
// 固定数量的 worker 从有界队列中取任务执行。队列满时
// Submit 丢弃任务而不是阻塞提交方，与 Hub "发射不等待
// 回调" 的约定一致。
type Pool struct {
	settings *poolSettings

	// mu 串行化 Submit 与 close(queue)，防止向已关闭通道发送
	mu      sync.RWMutex
	queue   chan func()
	running bool

	eg *errgroup.Group

	dropCount atomic.Int64
}

// NewPool 创建工作池执行器
//
// 默认 10 个 worker、1024 长度的队列，可用 Workers 和
// QueueSize 调整。创建后需调用 Start 启动。
func NewPool(opts ...PoolOpt) *Pool {
	settings := &poolSettings{
		Workers:   10,   // 默认 worker 数量
		QueueSize: 1024, // 默认队列长度
	}
	for _, opt := range opts {
		opt(settings)
	}

	return &Pool{
		settings: settings,
	}
}

// Start 启动工作池
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return ErrAlreadyStarted
	}

	p.queue = make(chan func(), p.settings.QueueSize)
	p.running = true

	p.eg = new(errgroup.Group)
	for i := 0; i < p.settings.Workers; i++ {
		p.eg.Go(p.worker)
	}

	return nil
}

// Stop 优雅停止工作池
//
// 关闭队列后等待 worker 处理完剩余任务；ctx 取消时
// 提前返回，worker 在后台继续排空。
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return ErrNotStarted
	}
	p.running = false
	close(p.queue)
	p.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- p.eg.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit 提交任务
//
// 工作池未启动或队列已满时任务被丢弃。
func (p *Pool) Submit(task func()) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running {
		p.drop("pool not running")
		return
	}

	select {
	case p.queue <- task:
		// 成功入队
	default:
		p.drop("queue full")
	}
}

// QueueDepth 返回当前队列中等待的任务数
func (p *Pool) QueueDepth() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running {
		return 0
	}
	return len(p.queue)
}

// ============================================================================
// 内部方法
// ============================================================================

// worker 从队列取任务执行，队列关闭后退出
func (p *Pool) worker() error {
	for task := range p.queue {
		p.run(task)
	}
	return nil
}

// run 执行单个任务，panic 不击穿 worker
func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("任务 panic", "panic", r)
		}
	}()

	task()
}

// drop 记录被丢弃的任务
func (p *Pool) drop(reason string) {
	dropped := p.dropCount.Add(1)

	// 每丢弃 100 个警告一次，避免日志泛滥
	if dropped%100 == 1 {
		logger.Warn("任务被丢弃",
			"dropped", dropped,
			"reason", reason)
	}
}

// Dropped 返回累计被丢弃的任务数
func (p *Pool) Dropped() int64 {
	return p.dropCount.Load()
}
