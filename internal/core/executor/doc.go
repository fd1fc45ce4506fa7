// Package executor 实现回调执行上下文
//
// 提供 pkg/interfaces.Executor 的三种实现：
//   - Sync: 在提交方上下文中同步执行
//   - Goroutine: 每任务一个 goroutine，可等待全部完成
//   - Pool: 固定 worker + 有界队列，带生命周期管理
//
// # 快速开始
//
//	// 工作池执行器
//	pool := executor.NewPool(executor.Workers(4), executor.QueueSize(256))
//	if err := pool.Start(); err != nil {
//	    // 处理错误
//	}
//	defer pool.Stop(context.Background())
//
//	// 配合 Hub 使用
//	h.Emit("tick", 42, hub.WithExecutor(pool))
//
// # 丢弃语义
//
// Pool 的队列满时 Submit 丢弃任务而不是阻塞：Hub 的
// 约定是发射在提交完成后立即返回，执行器不得反压
// 发射方。丢弃计数可通过 Dropped 读取。
//
// # 架构定位
//
// Tier: Core Layer Level 1（无依赖）
//
// 依赖关系：
//   - 依赖：pkg/interfaces, pkg/lib/log
//   - 被依赖：根包 eventhub
package executor
