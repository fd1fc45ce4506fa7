// Package hub 实现类型化事件中心
package hub

// lifetime 监听器生命期
type lifetime uint8

const (
	// lifetimeAlways 常驻：每次发射都触发
	lifetimeAlways lifetime = iota
	// lifetimeOnce 一次性：首次发射后自动移除
	lifetimeOnce
)

// listener 监听器记录
//
// 记录不可变，身份由 id 决定：同一回调注册两次是
// 两条相互独立的记录。id 在整个 Hub 内唯一。
type listener[P any] struct {
	id       string
	lifetime lifetime
	fn       func(P)
}
