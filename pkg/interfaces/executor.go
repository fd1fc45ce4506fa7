// Package interfaces 定义 EventHub 公共接口
//
// 本文件定义 Executor 接口，提供回调执行上下文抽象。
package interfaces

import "context"

// Executor 定义执行上下文接口
//
// Executor 决定回调在哪个执行上下文中运行：
// Submit 可以在返回前同步执行 task，也可以将 task
// 调度到其他上下文异步执行。
//
// Hub 的义务止于提交成功：Emit 不等待异步任务完成，
// 也无法取消已提交的任务。
type Executor interface {
	// Submit 提交一个任务
	Submit(task func())
}

// PoolExecutor 定义带生命周期的工作池执行器接口
type PoolExecutor interface {
	Executor

	// Start 启动工作池
	Start() error

	// Stop 优雅停止工作池
	//
	// 等待队列中的任务处理完毕，或 ctx 取消时提前返回。
	Stop(ctx context.Context) error

	// QueueDepth 返回当前队列中等待的任务数
	QueueDepth() int
}

// WaitExecutor 定义可等待的执行器接口
//
// 每个任务在独立 goroutine 中执行，Wait 阻塞直到
// 所有已提交任务完成。
type WaitExecutor interface {
	Executor

	// Wait 等待所有已提交任务完成
	Wait()
}
