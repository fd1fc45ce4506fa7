// Package interfaces 定义 EventHub 公共接口
//
// 本文件定义选项函数类型与设置结构。
package interfaces

// EmitOpt 发射选项函数类型
type EmitOpt func(*EmitSettings)

// WatchOpt 通道订阅选项函数类型
type WatchOpt func(*WatchSettings)

// PoolOpt 工作池选项函数类型
type PoolOpt func(*PoolSettings)

// EmitSettings 发射设置（导出以供实现使用）
type EmitSettings struct {
	Executor Executor
}

// WatchSettings 通道订阅设置（导出以供实现使用）
type WatchSettings struct {
	Buffer int
}

// PoolSettings 工作池设置（导出以供实现使用）
type PoolSettings struct {
	Workers   int
	QueueSize int
}

// WithExecutor 设置发射使用的执行器
//
// 未设置时回调在调用方上下文中同步执行。
func WithExecutor(exec Executor) EmitOpt {
	return func(s *EmitSettings) {
		s.Executor = exec
	}
}

// BufSize 设置通道订阅缓冲区大小
func BufSize(size int) WatchOpt {
	return func(s *WatchSettings) {
		if size > 0 {
			s.Buffer = size
		}
	}
}

// Workers 设置工作池的 worker 数量
func Workers(count int) PoolOpt {
	return func(s *PoolSettings) {
		if count > 0 {
			s.Workers = count
		}
	}
}

// QueueSize 设置工作池任务队列大小
func QueueSize(size int) PoolOpt {
	return func(s *PoolSettings) {
		if size > 0 {
			s.QueueSize = size
		}
	}
}
