// Package hub 实现类型化事件中心
package hub

import pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"

// emitSettings 是 pkg/interfaces.EmitSettings 的别名
type emitSettings = pkgif.EmitSettings

// watchSettings 是 pkg/interfaces.WatchSettings 的别名
type watchSettings = pkgif.WatchSettings
