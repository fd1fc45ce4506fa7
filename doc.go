// Package eventhub 提供进程内类型化事件中心
//
// EventHub 是一个强类型的发布/订阅库：调用方针对事件键
// 注册回调（监听器），其他调用方随后携带载荷发射该事件，
// 触发当前注册的全部监听器。注册、释放、发射均可并发进行。
//
// # 核心概念
//
// EventHub 围绕四个核心概念构建：
//
//   - Hub: 事件中心，拥有注册表，用户交互的主入口
//   - Handle: 幂等的订阅释放句柄
//   - Executor: 回调执行上下文（同步 / 协程 / 工作池）
//   - Watcher: 基于通道的订阅
//
// # 快速开始
//
//	import "github.com/dep2p/go-eventhub"
//
//	// 1. 创建事件中心（事件键 string，载荷 int）
//	h := eventhub.New[string, int]()
//
//	// 2. 订阅
//	handle := h.Subscribe("tick", func(n int) {
//	    fmt.Println("tick:", n)
//	})
//	h.SubscribeOnce("tick", func(n int) {
//	    fmt.Println("first tick only:", n)
//	})
//
//	// 3. 发射
//	h.Emit("tick", 1)
//	h.Emit("tick", 2)
//
//	// 4. 释放订阅
//	handle.Dispose()
//
// # 投递语义
//
// 进程内、单次发射对每个监听器至多投递一次。发射前注册的
// 常驻监听器在该次发射中恰好触发一次；一次性监听器在任意
// 多次发射（含递归与并发发射）中总共至多触发一次。无监听
// 器时发射是廉价的无操作，且不会求值惰性载荷。
//
// 不提供：跨进程投递、持久化与回放、跨发射的全序、
// 回调错误向发射方的传播。
//
// # 文件组织
//
//	eventhub.go          根门面：构造函数、选项、类型别名
//	pkg/interfaces/      公共接口定义
//	pkg/lib/log/         日志封装
//	internal/core/hub/       事件中心实现
//	internal/core/executor/  执行器实现
package eventhub
