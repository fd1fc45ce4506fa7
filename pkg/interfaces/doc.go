// Package interfaces 定义 EventHub 公共接口
//
// 本包只包含接口与选项定义，不包含实现。实现位于
// internal/core 下的各模块，通过根包 eventhub 对外暴露。
//
// 接口一览：
//   - Hub: 类型化事件中心（订阅/发射/统计）
//   - Handle: 幂等的订阅释放句柄
//   - Executor: 回调执行上下文抽象
//   - Watcher: 基于通道的订阅
//
// # 依赖关系
//
// 本包不依赖模块内其他包，是依赖图的根。
package interfaces
