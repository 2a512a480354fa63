package schedulers

import "context"

// Limiter bound the number of operations running at once
type Limiter struct {
	c chan struct{}
}

// NewLimiter create new limiter allowing size operations at once
func NewLimiter(size int) *Limiter {
	if size <= 0 {
		size = 1
	}

	return &Limiter{make(chan struct{}, size)}
}

// Acquire wait for a free slot or ctx done
func (l *Limiter) Acquire(ctx context.Context) error {
	select {
	case l.c <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release free the slot taken by Acquire
func (l *Limiter) Release() {
	<-l.c
}
