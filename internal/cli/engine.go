package cli

import (
	"context"

	"github.com/partscout/partscout/pkg/catalog"
	"github.com/partscout/partscout/pkg/mfr"
	"github.com/partscout/partscout/pkg/resolve"
	"github.com/partscout/partscout/pkg/similarity"
)

// catalogKey is the context key for the --catalog flag value.
const catalogKey ctxKey = 1

// withCatalogPath returns a new context carrying the user catalog path.
func withCatalogPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, catalogKey, path)
}

func catalogPathFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(catalogKey).(string); ok {
		return p
	}
	return ""
}

// buildEngine constructs the resolution engine for a command invocation.
// The builtin handler catalog is always loaded; a --catalog file appends
// user-defined vendors after it. Handler failures during resolution are
// logged at warn level and never abort a command.
func buildEngine(ctx context.Context) (*resolve.Engine, error) {
	logger := loggerFromContext(ctx)

	var extra []*mfr.Manufacturer
	if path := catalogPathFromContext(ctx); path != "" {
		handlers, err := catalog.Load(path)
		if err != nil {
			return nil, err
		}
		logger.Debugf("loaded %d manufacturers from %s", len(handlers), path)
		extra = handlers
	}

	return resolve.New(resolve.Options{
		Extra:  extra,
		Logger: func(format string, args ...any) { logger.Warnf(format, args...) },
	})
}

// buildSimilarity constructs the similarity engine on top of eng.
func buildSimilarity(eng *resolve.Engine) *similarity.Engine {
	return similarity.New(eng)
}
