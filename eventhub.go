package eventhub

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-eventhub/internal/core/executor"
	"github.com/dep2p/go-eventhub/internal/core/hub"
	pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// Handle 订阅句柄，见 pkg/interfaces.Handle
	Handle = pkgif.Handle

	// Executor 执行上下文，见 pkg/interfaces.Executor
	Executor = pkgif.Executor

	// PoolExecutor 工作池执行器，见 pkg/interfaces.PoolExecutor
	PoolExecutor = pkgif.PoolExecutor

	// WaitExecutor 可等待执行器，见 pkg/interfaces.WaitExecutor
	WaitExecutor = pkgif.WaitExecutor

	// Stats 运行统计快照，见 pkg/interfaces.Stats
	Stats = pkgif.Stats

	// EmitOpt 发射选项
	EmitOpt = pkgif.EmitOpt

	// WatchOpt 通道订阅选项
	WatchOpt = pkgif.WatchOpt

	// PoolOpt 工作池选项
	PoolOpt = pkgif.PoolOpt
)

// ════════════════════════════════════════════════════════════════════════════
//                              构造函数
// ════════════════════════════════════════════════════════════════════════════

// New 创建类型化事件中心
//
// K 为事件键类型（需可比较），P 为载荷类型。每个实例
// 拥有独立的注册表和锁，多个实例完全互不影响。
func New[K comparable, P any]() pkgif.Hub[K, P] {
	return hub.New[K, P]()
}

// NewSyncExecutor 创建同步执行器
func NewSyncExecutor() Executor {
	return executor.NewSync()
}

// NewGoroutineExecutor 创建协程执行器
func NewGoroutineExecutor() WaitExecutor {
	return executor.NewGoroutine()
}

// NewPoolExecutor 创建工作池执行器
//
// 创建后需调用 Start 启动，用完调用 Stop 停止。
func NewPoolExecutor(opts ...PoolOpt) PoolExecutor {
	return executor.NewPool(opts...)
}

// ════════════════════════════════════════════════════════════════════════════
//                              选项函数
// ════════════════════════════════════════════════════════════════════════════

// WithExecutor 设置发射使用的执行器
func WithExecutor(exec Executor) EmitOpt {
	return pkgif.WithExecutor(exec)
}

// BufSize 设置通道订阅缓冲区大小
func BufSize(size int) WatchOpt {
	return pkgif.BufSize(size)
}

// Workers 设置工作池的 worker 数量
func Workers(count int) PoolOpt {
	return pkgif.Workers(count)
}

// QueueSize 设置工作池任务队列大小
func QueueSize(size int) PoolOpt {
	return pkgif.QueueSize(size)
}

// ════════════════════════════════════════════════════════════════════════════
//                              Fx 模块
// ════════════════════════════════════════════════════════════════════════════

// HubModule 返回 Hub 的 Fx 模块
//
// 提供以 string 为事件键、any 为载荷的默认 Hub 实例。
func HubModule() fx.Option {
	return hub.Module()
}

// ExecutorModule 返回工作池执行器的 Fx 模块
//
// Start/Stop 自动挂接到应用生命周期。
func ExecutorModule(opts ...PoolOpt) fx.Option {
	return executor.Module(opts...)
}
