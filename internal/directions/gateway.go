package directions

import (
	"context"

	"calmroute/internal/domain"
)

// Gateway defines the call boundary to the external directions provider.
// Implementations must normalize every failure into *Error.
type Gateway interface {
	FetchRoutes(ctx context.Context, req domain.RouteRequest) ([]domain.RawRoute, error)
}

// Ensure the HTTP client satisfies the gateway contract.
var _ Gateway = (*Client)(nil)
