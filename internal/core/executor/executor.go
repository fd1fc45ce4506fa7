// Package executor 实现回调执行器
package executor

import "sync"

// ============================================================================
// Sync 实现
// ============================================================================

// Sync 同步执行器
//
// Submit 在返回前于调用方上下文中执行任务。与不传
// 执行器的发射语义等效，主要用于需要显式传入执行器
// 的场合和测试。
type Sync struct{}

// NewSync 创建同步执行器
func NewSync() *Sync {
	return &Sync{}
}

// Submit 同步执行任务
func (*Sync) Submit(task func()) {
	task()
}

// ============================================================================
// Goroutine 实现
// ============================================================================

// Goroutine 协程执行器
//
// 每个任务在独立 goroutine 中执行，无队列上限。
// Wait 阻塞直到所有已提交任务完成。
type Goroutine struct {
	wg sync.WaitGroup
}

// NewGoroutine 创建协程执行器
func NewGoroutine() *Goroutine {
	return &Goroutine{}
}

// Submit 在新 goroutine 中执行任务
func (g *Goroutine) Submit(task func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		task()
	}()
}

// Wait 等待所有已提交任务完成
func (g *Goroutine) Wait() {
	g.wg.Wait()
}
