// Package executor 实现回调执行器
package executor

import pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"

// ============================================================================
// 本地选项函数
// ============================================================================

// PoolOpt 是 pkg/interfaces.PoolOpt 的别名
type PoolOpt = pkgif.PoolOpt

// Workers 设置工作池的 worker 数量
//
// 这是一个便利函数，与 pkg/interfaces.Workers 等效
func Workers(count int) PoolOpt {
	return pkgif.Workers(count)
}

// QueueSize 设置工作池任务队列大小
//
// 这是一个便利函数，与 pkg/interfaces.QueueSize 等效
func QueueSize(size int) PoolOpt {
	return pkgif.QueueSize(size)
}
