package platform

import (
	"github.com/aretw0/jot/pkg/core"
)

// svc, err := jot.New("./my_notes.txt", jot.WithLogger(logger))
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepository(path, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(repo,
		core.WithClock(o.clock),
		core.WithLogger(o.logger),
	), nil
}
