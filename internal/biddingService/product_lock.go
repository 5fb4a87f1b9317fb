package bidding

import (
	"context"

	"github.com/sasha-s/go-deadlock"
)

// productLocks serializes placements per product. Entries are reference counted so
// the registry only holds products with placements in flight. The section is
// in-process, so a store must be served by a single engine instance.
type productLocks struct {
	mu    deadlock.Mutex
	locks map[string]*productLock
}

type productLock struct {
	sem  chan struct{}
	refs int
}

func newProductLocks() *productLocks {
	return &productLocks{locks: make(map[string]*productLock)}
}

// acquire blocks until the product's section is free or ctx is done.
// The returned release must be called exactly once.
func (l *productLocks) acquire(ctx context.Context, productID string) (func(), error) {
	l.mu.Lock()
	pl, ok := l.locks[productID]
	if !ok {
		pl = &productLock{sem: make(chan struct{}, 1)}
		l.locks[productID] = pl
	}
	pl.refs++
	l.mu.Unlock()

	select {
	case pl.sem <- struct{}{}:
		return func() {
			<-pl.sem
			l.unref(productID, pl)
		}, nil
	case <-ctx.Done():
		l.unref(productID, pl)
		return nil, ctx.Err()
	}
}

func (l *productLocks) unref(productID string, pl *productLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pl.refs--
	if pl.refs == 0 {
		delete(l.locks, productID)
	}
}

// size reports the number of products with a placement in flight
func (l *productLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
