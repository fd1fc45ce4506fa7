package hub

import (
	"testing"

	pkgif "github.com/dep2p/go-eventhub/pkg/interfaces"
)

// ============================================================================
// 接口契约测试
// ============================================================================

// TestHub_ImplementsInterface 验证 Hub 实现接口
func TestHub_ImplementsInterface(t *testing.T) {
	var _ pkgif.Hub[string, int] = (*Hub[string, int])(nil)
	var _ pkgif.Hub[int, struct{}] = (*Hub[int, struct{}])(nil)
}

// ============================================================================
// 基础功能测试
// ============================================================================

// TestHub_New 测试创建事件中心
func TestHub_New(t *testing.T) {
	h := New[string, int]()

	if h == nil {
		t.Fatal("New() returned nil")
	}

	if h.listeners == nil {
		t.Error("New() listeners map is nil")
	}
}

// TestHub_EmitAndReceive 测试订阅与发射
//
// 两个常驻监听器加一个一次性监听器：第一次发射全部触发，
// 第二次发射只触发常驻监听器。
func TestHub_EmitAndReceive(t *testing.T) {
	h := New[string, int]()

	var fGot []int
	f := func(n int) { fGot = append(fGot, n) }

	var gGot []int
	g := func(n int) { gGot = append(gGot, n) }

	h.Subscribe("tick", f)
	h.Subscribe("tick", f)
	h.SubscribeOnce("tick", g)

	h.Emit("tick", 1)

	if len(fGot) != 2 || fGot[0] != 1 || fGot[1] != 1 {
		t.Errorf("f after first emit = %v, want [1 1]", fGot)
	}
	if len(gGot) != 1 || gGot[0] != 1 {
		t.Errorf("g after first emit = %v, want [1]", gGot)
	}

	h.Emit("tick", 2)

	if len(fGot) != 4 || fGot[2] != 2 || fGot[3] != 2 {
		t.Errorf("f after second emit = %v, want [1 1 2 2]", fGot)
	}
	if len(gGot) != 1 {
		t.Errorf("g fired %d times, want 1", len(gGot))
	}

	if count := h.ListenerCount("tick"); count != 2 {
		t.Errorf("ListenerCount(tick) = %d, want 2", count)
	}
}

// TestHub_SubscriptionOrder 测试按订阅顺序触发
func TestHub_SubscriptionOrder(t *testing.T) {
	h := New[string, struct{}]()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		h.Subscribe("evt", func(struct{}) { order = append(order, i) })
	}

	h.Emit("evt", struct{}{})

	for i, got := range order {
		if got != i {
			t.Fatalf("order = %v, want [0 1 2 3 4]", order)
		}
	}
}

// TestHub_DifferentEvents 测试不同事件隔离
func TestHub_DifferentEvents(t *testing.T) {
	h := New[string, int]()

	aCount := 0
	bCount := 0
	h.Subscribe("a", func(int) { aCount++ })
	h.Subscribe("b", func(int) { bCount++ })

	h.Emit("a", 1)

	if aCount != 1 {
		t.Errorf("listener a fired %d times, want 1", aCount)
	}
	if bCount != 0 {
		t.Errorf("listener b fired %d times, want 0", bCount)
	}
}

// ============================================================================
// 一次性监听器测试
// ============================================================================

// TestHub_SubscribeOnce 测试一次性监听器只触发一次
func TestHub_SubscribeOnce(t *testing.T) {
	h := New[string, int]()

	count := 0
	h.SubscribeOnce("tick", func(int) { count++ })

	for i := 0; i < 5; i++ {
		h.Emit("tick", i)
	}

	if count != 1 {
		t.Errorf("once listener fired %d times, want 1", count)
	}

	if got := h.ListenerCount("tick"); got != 0 {
		t.Errorf("ListenerCount(tick) = %d, want 0", got)
	}
}

// TestHub_SubscribeOnce_RecursiveEmit 测试递归发射下的一次性语义
//
// 一次性监听器的回调内再次发射同一事件：注册表在回调
// 执行前已更新，递归发射观察到的是移除后的状态。
func TestHub_SubscribeOnce_RecursiveEmit(t *testing.T) {
	h := New[string, int]()

	count := 0
	h.SubscribeOnce("tick", func(n int) {
		count++
		if n < 10 {
			h.Emit("tick", n+1)
		}
	})

	h.Emit("tick", 0)

	if count != 1 {
		t.Errorf("once listener fired %d times under recursive emit, want 1", count)
	}
}

// TestHub_Reentrancy 测试回调内订阅
//
// 回调内注册的新监听器不参与当前发射，参与后续发射。
func TestHub_Reentrancy(t *testing.T) {
	h := New[string, int]()

	lateCount := 0
	h.Subscribe("tick", func(int) {
		h.Subscribe("tick", func(int) { lateCount++ })
	})

	h.Emit("tick", 1)
	if lateCount != 0 {
		t.Errorf("late listener fired %d times during its own registration emit, want 0", lateCount)
	}

	h.Emit("tick", 2)
	if lateCount != 1 {
		t.Errorf("late listener fired %d times after second emit, want 1", lateCount)
	}
}

// ============================================================================
// 惰性载荷测试
// ============================================================================

// TestHub_EmitLazy_NoListeners 测试无监听器时不求值载荷
func TestHub_EmitLazy_NoListeners(t *testing.T) {
	h := New[string, int]()

	produced := 0
	h.EmitLazy("tick", func() int {
		produced++
		return 42
	})

	if produced != 0 {
		t.Errorf("producer called %d times with no listeners, want 0", produced)
	}
}

// TestHub_EmitLazy_ProducerOnce 测试载荷恰好求值一次
func TestHub_EmitLazy_ProducerOnce(t *testing.T) {
	h := New[string, int]()

	received := 0
	for i := 0; i < 3; i++ {
		h.Subscribe("tick", func(n int) {
			if n != 42 {
				t.Errorf("listener got %d, want 42", n)
			}
			received++
		})
	}

	produced := 0
	h.EmitLazy("tick", func() int {
		produced++
		return 42
	})

	if produced != 1 {
		t.Errorf("producer called %d times, want 1", produced)
	}
	if received != 3 {
		t.Errorf("listeners fired %d times, want 3", received)
	}
}

// ============================================================================
// 移除与查询测试
// ============================================================================

// TestHub_RemoveAllListeners_SingleEvent 测试清空单个事件
func TestHub_RemoveAllListeners_SingleEvent(t *testing.T) {
	h := New[string, int]()

	h.Subscribe("a", func(int) {})
	h.Subscribe("a", func(int) {})
	h.Subscribe("b", func(int) {})

	h.RemoveAllListeners("a")

	if got := h.ListenerCount("a"); got != 0 {
		t.Errorf("ListenerCount(a) = %d, want 0", got)
	}
	if got := h.ListenerCount("b"); got != 1 {
		t.Errorf("ListenerCount(b) = %d, want 1", got)
	}
}

// TestHub_RemoveAllListeners_All 测试清空整个注册表
func TestHub_RemoveAllListeners_All(t *testing.T) {
	h := New[string, int]()

	h.Subscribe("a", func(int) {})
	h.Subscribe("b", func(int) {})
	h.SubscribeOnce("c", func(int) {})

	h.RemoveAllListeners()

	if got := h.ListenerCount(); got != 0 {
		t.Errorf("ListenerCount() = %d, want 0", got)
	}
}

// TestHub_RemoveAllListeners_Empty 测试空注册表上的无操作
func TestHub_RemoveAllListeners_Empty(t *testing.T) {
	h := New[string, int]()

	h.RemoveAllListeners()
	h.RemoveAllListeners("missing")
}

// TestHub_ListenerCount 测试监听器计数
func TestHub_ListenerCount(t *testing.T) {
	h := New[string, int]()

	if got := h.ListenerCount(); got != 0 {
		t.Errorf("initial ListenerCount() = %d, want 0", got)
	}

	h.Subscribe("a", func(int) {})
	h.Subscribe("a", func(int) {})
	h.SubscribeOnce("b", func(int) {})

	if got := h.ListenerCount("a"); got != 2 {
		t.Errorf("ListenerCount(a) = %d, want 2", got)
	}
	if got := h.ListenerCount("b"); got != 1 {
		t.Errorf("ListenerCount(b) = %d, want 1", got)
	}
	if got := h.ListenerCount(); got != 3 {
		t.Errorf("ListenerCount() = %d, want 3", got)
	}
}

// TestHub_Events 测试事件键枚举
func TestHub_Events(t *testing.T) {
	h := New[string, int]()

	if got := h.Events(); len(got) != 0 {
		t.Errorf("initial Events() length = %d, want 0", len(got))
	}

	h.Subscribe("a", func(int) {})
	h.Subscribe("b", func(int) {})

	events := h.Events()
	if len(events) != 2 {
		t.Errorf("Events() length = %d, want 2", len(events))
	}

	// 一次性监听器触发后事件键应消失
	h.SubscribeOnce("c", func(int) {})
	h.Emit("c", 0)

	for _, k := range h.Events() {
		if k == "c" {
			t.Error("event key c still listed after its only listener fired")
		}
	}
}

// ============================================================================
// 回调隔离测试
// ============================================================================

// TestHub_PanicIsolation 测试回调 panic 隔离
//
// 一个回调 panic 不影响同一次发射中的其余投递。
func TestHub_PanicIsolation(t *testing.T) {
	h := New[string, int]()

	h.Subscribe("tick", func(int) { panic("boom") })

	survived := false
	h.Subscribe("tick", func(int) { survived = true })

	h.Emit("tick", 1)

	if !survived {
		t.Error("listener after panicking listener was not invoked")
	}

	if got := h.Stats().CallbackPanics; got != 1 {
		t.Errorf("Stats().CallbackPanics = %d, want 1", got)
	}
}

// TestHub_NilCallback 测试 nil 回调
func TestHub_NilCallback(t *testing.T) {
	h := New[string, int]()

	handle := h.Subscribe("tick", nil)

	if handle == nil {
		t.Fatal("Subscribe(nil) returned nil handle")
	}
	if !handle.Disposed() {
		t.Error("nil-callback handle should report disposed")
	}
	if got := h.ListenerCount("tick"); got != 0 {
		t.Errorf("ListenerCount(tick) = %d after nil subscribe, want 0", got)
	}

	handle.Dispose() // 无操作
}

// ============================================================================
// 执行器测试
// ============================================================================

// recordExecutor 记录提交顺序的测试执行器
type recordExecutor struct {
	tasks []func()
}

func (e *recordExecutor) Submit(task func()) {
	e.tasks = append(e.tasks, task)
}

// TestHub_EmitWithExecutor 测试经由执行器发射
//
// 提交顺序与订阅顺序一致；Emit 返回时回调尚未执行，
// 由执行器决定何时运行。
func TestHub_EmitWithExecutor(t *testing.T) {
	h := New[string, int]()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		h.Subscribe("tick", func(int) { order = append(order, i) })
	}

	exec := &recordExecutor{}
	h.Emit("tick", 1, WithExecutor(exec))

	if len(order) != 0 {
		t.Errorf("callbacks ran before executor drained: %v", order)
	}
	if len(exec.tasks) != 3 {
		t.Fatalf("submitted %d tasks, want 3", len(exec.tasks))
	}

	for _, task := range exec.tasks {
		task()
	}

	for i, got := range order {
		if got != i {
			t.Fatalf("execution order = %v, want [0 1 2]", order)
		}
	}
}

// TestHub_OnceRemovedBeforeExecutorRuns 测试一次性移除先于异步执行
//
// 一次性监听器在提交阶段就已从注册表移除，即使其任务
// 尚未被执行器运行。
func TestHub_OnceRemovedBeforeExecutorRuns(t *testing.T) {
	h := New[string, int]()

	count := 0
	h.SubscribeOnce("tick", func(int) { count++ })

	exec := &recordExecutor{}
	h.Emit("tick", 1, WithExecutor(exec))

	if got := h.ListenerCount("tick"); got != 0 {
		t.Errorf("ListenerCount(tick) = %d before tasks ran, want 0", got)
	}

	// 任务未运行期间的再次发射不应触发
	h.Emit("tick", 2)

	for _, task := range exec.tasks {
		task()
	}

	if count != 1 {
		t.Errorf("once listener fired %d times, want 1", count)
	}
}

// ============================================================================
// 统计测试
// ============================================================================

// TestHub_Stats 测试统计快照
func TestHub_Stats(t *testing.T) {
	h := New[string, int]()

	h.Subscribe("tick", func(int) {})
	h.Subscribe("tick", func(int) {})

	h.Emit("tick", 1)
	h.Emit("silent", 1) // 无监听器，不计发射

	stats := h.Stats()

	if stats.Emits != 1 {
		t.Errorf("Stats().Emits = %d, want 1", stats.Emits)
	}
	if stats.Delivered != 2 {
		t.Errorf("Stats().Delivered = %d, want 2", stats.Delivered)
	}
	if stats.ActiveListeners != 2 {
		t.Errorf("Stats().ActiveListeners = %d, want 2", stats.ActiveListeners)
	}
}
