// Package executor 实现回调执行器
package executor

import (
	"context"

	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Executor pkgif.PoolExecutor
}

// Module 返回 Fx 模块
//
// 提供工作池执行器，并将 Start/Stop 挂接到应用生命周期。
func Module(opts ...PoolOpt) fx.Option {
	return fx.Module("executor",
		fx.Provide(func() Result {
			return Result{
				Executor: NewPool(opts...),
			}
		}),
		fx.Invoke(registerLifecycle),
	)
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC       fx.Lifecycle
	Executor pkgif.PoolExecutor
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return input.Executor.Start()
		},
		OnStop: func(ctx context.Context) error {
			return input.Executor.Stop(ctx)
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "executor"
	// Description 模块描述
	Description = "执行器模块，提供同步、协程与工作池三种回调执行上下文"
)
