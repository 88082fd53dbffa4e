package signal

import (
	"sync"

	"github.com/rs/xid"
)

type Subscription struct {
	id      xid.ID
	release func()
	once    sync.Once
}

func (s *Subscription) ID() string {
	return s.id.String()
}

// Unsubscribe releases the subscription. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}

	s.once.Do(s.release)
}
