package sensor

import "sync"

// defaultQueueCapacity 两帧之间最多缓存的读数，超出时丢弃最旧的
const defaultQueueCapacity = 64

// ReadingQueue 线程安全的读数队列
// 浏览器事件回调与 Ebiten 的 Update 不在同一个 goroutine 上运行，
// 读数先进入队列，再由 Update 一次性取出，保证场景状态只在游戏循环里被修改。
type ReadingQueue struct {
	mu       sync.Mutex
	readings []OrientationReading
	capacity int
	dropped  int
}

// NewReadingQueue 创建读数队列，capacity <= 0 时使用默认容量
func NewReadingQueue(capacity int) *ReadingQueue {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &ReadingQueue{capacity: capacity}
}

// Push 追加一个读数
func (q *ReadingQueue) Push(r OrientationReading) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.readings) >= q.capacity {
		q.readings = q.readings[1:]
		q.dropped++
	}
	q.readings = append(q.readings, r)
}

// Drain 取出并清空所有读数
func (q *ReadingQueue) Drain() []OrientationReading {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.readings) == 0 {
		return nil
	}
	out := q.readings
	q.readings = nil
	return out
}

// Dropped 返回因队列已满被丢弃的读数数量
func (q *ReadingQueue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// QueueSource 以 ReadingQueue 为后端的朝向来源
// 测试和脚本化回放直接向 Queue 推送读数
type QueueSource struct {
	Queue *ReadingQueue
}

// NewQueueSource 创建一个空的队列来源
func NewQueueSource() *QueueSource {
	return &QueueSource{Queue: NewReadingQueue(0)}
}

// Poll 实现 OrientationSource
func (s *QueueSource) Poll() []OrientationReading {
	return s.Queue.Drain()
}

// Dropped 实现 OverflowReporter
func (s *QueueSource) Dropped() int {
	return s.Queue.Dropped()
}

// Close 实现 OrientationSource
func (s *QueueSource) Close() error {
	return nil
}
