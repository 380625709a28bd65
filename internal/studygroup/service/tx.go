package service

import (
	"context"
	"sync"
	"time"

	"studyhub/internal/studygroup/store/group"
	"studyhub/internal/studygroup/store/joinrequest"
	"studyhub/internal/studygroup/store/membership"
	dErrors "studyhub/pkg/domain-errors"
)

// defaultTxTimeout bounds a transaction whose caller set no deadline.
const defaultTxTimeout = 5 * time.Second

// InMemoryTx runs transactions against the in-memory stores. A single lock
// serializes transactions; a failed transaction restores the snapshots taken
// when it started, so no partial write is ever visible.
type InMemoryTx struct {
	mu       sync.Mutex
	groups   *group.InMemory
	members  *membership.InMemory
	requests *joinrequest.InMemory
	timeout  time.Duration
}

func NewInMemoryTx(groups *group.InMemory, members *membership.InMemory, requests *joinrequest.InMemory, timeout time.Duration) *InMemoryTx {
	if timeout <= 0 {
		timeout = defaultTxTimeout
	}
	return &InMemoryTx{groups: groups, members: members, requests: requests, timeout: timeout}
}

// NewInMemoryStores wires a fresh set of memory stores into a transaction runner.
func NewInMemoryStores(timeout time.Duration) *InMemoryTx {
	groups := group.NewInMemory()
	return NewInMemoryTx(groups, membership.NewInMemory(), joinrequest.NewInMemory(groups), timeout)
}

func (t *InMemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	groupSnap := t.groups.Snapshot()
	memberSnap := t.members.Snapshot()
	requestSnap := t.requests.Snapshot()

	err := fn(ctx, Stores{Groups: t.groups, Members: t.members, Requests: t.requests})
	if err == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = dErrors.Wrap(ctxErr, dErrors.CodeTimeout, "transaction aborted: context cancelled")
		}
	}
	if err != nil {
		t.groups.Restore(groupSnap)
		t.members.Restore(memberSnap)
		t.requests.Restore(requestSnap)
		return err
	}
	return nil
}
