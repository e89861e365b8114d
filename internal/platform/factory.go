package platform

import (
	"context"
	"log/slog"

	"github.com/redpill/charting/pkg/adapters/fs"
	"github.com/redpill/charting/pkg/core"
)

// New creates a configured charting Service.
//
// Unless a custom gateway or data root is injected, the data root resolves to
// the OS per-user application data location. Resolution happens here, once,
// and the resulting root is passed into the gateway explicitly so every
// operation works against the same injected path.
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	gw := o.gateway
	if gw == nil {
		root := o.dataRoot
		if root == "" {
			resolved, err := fs.DefaultDataRoot()
			if err != nil {
				return nil, err
			}
			root = resolved
		}

		g := fs.NewGateway(fs.Config{
			Root:        root,
			AutoInit:    o.autoInit,
			MustExist:   o.mustExist,
			EventBuffer: o.eventBuffer,
			Logger:      logger,
		})
		if err := g.Initialize(context.Background()); err != nil {
			return nil, err
		}
		gw = g
	}

	return core.NewService(gw, logger), nil
}
