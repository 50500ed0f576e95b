package gateway

import (
	"context"
	"net/http"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
)

type CommunityGateway struct {
	c *Client
}

// List fetches the community directory. With the sample-data flag set, a
// failed or empty fetch falls back to the compiled-in reference list so demo
// environments stay populated; errors are swallowed, never surfaced. With
// the flag unset, a failure propagates and an empty result stays empty.
func (g *CommunityGateway) List(ctx context.Context) ([]models.Community, error) {
	communities := []models.Community{}
	err := g.c.do(ctx, http.MethodGet, "/communities", nil, &communities)
	if err != nil {
		if g.c.sampleData {
			g.c.logger.Warn("community fetch failed, serving sample data", "error", err)
			return append([]models.Community{}, models.SampleCommunities...), nil
		}
		return nil, err
	}
	if len(communities) == 0 && g.c.sampleData {
		return append([]models.Community{}, models.SampleCommunities...), nil
	}
	return communities, nil
}
