// Package hub 实现进程内类型化事件中心
//
// 提供以任意可比较类型为事件键、任意类型为载荷的
// 发布/订阅机制，支持：
//   - 常驻与一次性监听器
//   - 幂等的订阅释放句柄
//   - 惰性载荷求值（无监听器时不求值）
//   - 可注入的回调执行上下文
//   - 通道订阅（Watch）
//   - 并发安全
//
// # 快速开始
//
//	// 创建事件中心
//	h := hub.New[string, int]()
//
//	// 订阅事件
//	handle := h.Subscribe("tick", func(n int) {
//	    // 处理载荷
//	})
//	defer handle.Dispose()
//
//	// 一次性订阅
//	h.SubscribeOnce("tick", func(n int) {
//	    // 只触发一次
//	})
//
//	// 发射事件
//	h.Emit("tick", 42)
//
// # 发射协议
//
// 发射分两个阶段：
//  1. 结构阶段（持锁）：快照监听器序列，无条件移除其中的
//     一次性记录并写回
//  2. 执行阶段（不持锁）：按订阅顺序触发快照中的回调
//
// 锁从不跨越回调执行，回调内可以安全地订阅、释放、
// 再次发射。代价是发射相对自身的回调阶段不是端到端
// 原子的：同一事件的并发发射可能交错执行各自的回调，
// 只有注册表变更是串行的。
//
// # 并发安全
//
// Hub 使用单个 sync.Mutex 保护注册表，atomic 维护统计：
//   - 订阅/释放/清除：Mutex 保护
//   - 发射快照与过滤：Mutex 保护
//   - 统计计数：atomic
//   - 句柄释放：disposeOnce 防止重复
//
// # 错误处理
//
// 所有操作在正常使用下不失败、不 panic。回调 panic 被
// 逐监听器隔离并记录日志，不影响同一次发射中的其余投递。
//
// # 架构定位
//
// Tier: Core Layer Level 1（无依赖）
//
// 依赖关系：
//   - 依赖：pkg/interfaces, pkg/lib/log
//   - 被依赖：根包 eventhub
package hub
