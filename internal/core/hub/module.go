// Package hub 实现类型化事件中心
package hub

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

	Hub pkgif.Hub[string, any]
}

// Module 返回 Fx 模块
//
// 提供以 string 为事件键、any 为载荷的默认 Hub 实例。
// 需要其他类型参数时直接使用 New 构造。
func Module() fx.Option {
	return fx.Module("hub",
		fx.Provide(ProvideHub),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideHub 提供默认 Hub 实例
func ProvideHub() Result {
	return Result{
		Hub: New[string, any](),
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC  fx.Lifecycle
	Hub pkgif.Hub[string, any]
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Hub 启动（当前无需特殊启动逻辑）
			return nil
		},
		OnStop: func(_ context.Context) error {
			// 停止时清空注册表，帮助回收监听器闭包
			input.Hub.RemoveAllListeners()
			return nil
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
	Name = "hub"
	// Description 模块描述
	Description = "事件中心模块，提供类型化的事件发布/订阅机制"
)
