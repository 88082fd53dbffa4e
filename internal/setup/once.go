package setup

import (
	"context"
	"sync"

	"github.com/infratech/site/internal/config"
	"github.com/pkg/errors"
)

type fromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

// createFromConfigOnce memoizes factory: the first call builds the value,
// later calls return it (or the first error) whatever their arguments.
func createFromConfigOnce[T any](factory fromConfigFunc[T]) fromConfigFunc[T] {
	var (
		once    sync.Once
		service T
		err     error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			service, err = factory(ctx, conf)
		})
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		return service, nil
	}
}
