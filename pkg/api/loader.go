package api

import (
	"context"

	"github.com/frcl/mensad/pkg/fetch"
	"github.com/frcl/mensad/pkg/menu"
	"github.com/frcl/mensad/pkg/parse"
)

// UpstreamLoader builds a menu Document by fetching and parsing the
// upstream menu page. One outbound request per Load call.
type UpstreamLoader struct {
	client *fetch.Client
}

// NewUpstreamLoader creates a loader backed by the given fetch client.
func NewUpstreamLoader(client *fetch.Client) *UpstreamLoader {
	return &UpstreamLoader{client: client}
}

// Load implements menu.Loader.
func (l *UpstreamLoader) Load(ctx context.Context) (*menu.Document, error) {
	markup, err := l.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return parse.Menu(markup)
}
