package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.platform_loader"

func init() {
	graft.Register(graft.Node[ports.PlatformLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PlatformLoader, error) {
			return NewLoader(), nil
		},
	})
}
