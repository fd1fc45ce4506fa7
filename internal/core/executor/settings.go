// Package executor 实现回调执行器
package executor

import pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"

// poolSettings 是 pkg/interfaces.PoolSettings 的别名
type poolSettings = pkgif.PoolSettings
