package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.build_file_loader"

func init() {
	graft.Register(graft.Node[ports.BuildFileLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildFileLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
