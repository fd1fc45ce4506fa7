// Package executor 实现回调执行器
package executor

import "errors"

// 公共错误定义
var (
	// ErrAlreadyStarted 工作池已启动
	ErrAlreadyStarted = errors.New("executor pool already started")

	// ErrNotStarted 工作池未启动
	ErrNotStarted = errors.New("executor pool not started")
)
