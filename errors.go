package eventhub

import "github.com/dep2p/go-eventhub/internal/core/executor"

// ════════════════════════════════════════════════════════════════════════════
//                              错误定义
// ════════════════════════════════════════════════════════════════════════════

var (
	// ErrExecutorAlreadyStarted 工作池已启动
	ErrExecutorAlreadyStarted = executor.ErrAlreadyStarted

	// ErrExecutorNotStarted 工作池未启动
	ErrExecutorNotStarted = executor.ErrNotStarted
)
