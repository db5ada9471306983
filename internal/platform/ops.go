package platform

import (
	"context"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// Init prepares the repository backing the notebook at path.
// It returns the configured core.Repository.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(path, o)
}

func initRepository(path string, o *options) (core.Repository, error) {
	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:     path,
			Perm:     o.perm,
			ReadOnly: o.readOnly,
			Logger:   o.logger,
		})
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("notebook ready", "path", path, "read_only", o.readOnly)
	}
	return repo, nil
}
