package audio

import (
	"context"
	"sync"
)

// Queue is a bounded queue of sample chunks between the emulation goroutine and an audio sink.
// Push blocks while the queue is full, which paces the producer to the playback rate.
type Queue struct {
	chunks chan []int16

	// pending holds the unread tail of the chunk Read is currently consuming
	mu      sync.Mutex
	pending []int16
}

// NewQueue creates a queue holding at most capacity chunks.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{chunks: make(chan []int16, capacity)}
}

// Push enqueues a copy of samples, blocking until there is room or ctx is done.
func (q *Queue) Push(ctx context.Context, samples []int16) error {
	chunk := append([]int16(nil), samples...)

	select {
	case q.chunks <- chunk:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPush enqueues a copy of samples if there is room, reporting whether it did.
func (q *Queue) TryPush(samples []int16) bool {
	select {
	case q.chunks <- append([]int16(nil), samples...):
		return true
	default:
		return false
	}
}

// Read fills dst with queued samples without blocking and returns how many were real samples.
// Whatever could not be filled is set to silence.
func (q *Queue) Read(dst []int16) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for n < len(dst) {
		if len(q.pending) == 0 {
			select {
			case chunk := <-q.chunks:
				q.pending = chunk
				continue
			default:
			}
			break
		}

		copied := copy(dst[n:], q.pending)
		q.pending = q.pending[copied:]
		n += copied
	}

	clear(dst[n:])
	return n
}

// Len returns the number of queued chunks.
func (q *Queue) Len() int { return len(q.chunks) }

// Cap returns the maximum number of queued chunks.
func (q *Queue) Cap() int { return cap(q.chunks) }

// Drain discards everything queued, used after a reset or while paused.
func (q *Queue) Drain() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = nil
	for {
		select {
		case <-q.chunks:
		default:
			return
		}
	}
}
