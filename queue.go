// FILE: lixenwraith/slogger/queue.go
package slogger

import "sync"

// recordQueue is the unbounded FIFO between producers and the single writer goroutine.
// The lock is held only for slice manipulation, never across I/O.
type recordQueue struct {
	mu      sync.Mutex
	records []Record
	wake    chan struct{} // Capacity 1, coalesces wake-ups
}

func newRecordQueue() *recordQueue {
	return &recordQueue{
		wake: make(chan struct{}, 1),
	}
}

// push appends a record at the tail and signals the consumer
func (q *recordQueue) push(r Record) {
	q.mu.Lock()
	q.records = append(q.records, r)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default: // A wake-up is already pending
	}
}

// drain swaps the queued records out in insertion order. The caller's spent batch is
// cleared and handed back to the queue as its new backing storage.
func (q *recordQueue) drain(spent []Record) []Record {
	clear(spent)
	q.mu.Lock()
	batch := q.records
	q.records = spent[:0]
	q.mu.Unlock()
	return batch
}

// len returns the number of queued records
func (q *recordQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// wait blocks until the queue is non-empty or stop is closed
func (q *recordQueue) wait(stop <-chan struct{}) {
	for {
		if q.len() > 0 {
			return
		}
		select {
		case <-q.wake:
		case <-stop:
			return
		}
	}
}
