// Package hub 实现类型化事件中心
package hub

import pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"

// ============================================================================
// 本地选项函数
// ============================================================================

// WithExecutor 设置发射使用的执行器
//
// 这是一个便利函数，与 pkg/interfaces.WithExecutor 等效
func WithExecutor(exec pkgif.Executor) pkgif.EmitOpt {
	return pkgif.WithExecutor(exec)
}

// BufSize 设置通道订阅缓冲区大小
//
// 这是一个便利函数，与 pkg/interfaces.BufSize 等效
func BufSize(size int) pkgif.WatchOpt {
	return pkgif.BufSize(size)
}
