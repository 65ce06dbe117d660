// Package geocode defines the coordinate-resolution capability injected
// into the pipeline. The core never geocodes itself; it only consumes this
// interface and treats every failure mode as an unresolved record.
package geocode

import (
	"context"
	"strings"

	"geo-density-pipeline/internal/model"
)

// Resolver turns a raw address into a coordinate. The boolean reports
// whether a match was found; a false return with a nil error is the normal
// "unresolved" outcome and is never fatal. Implementations must not echo
// the address back through any other channel (logs, errors, results).
type Resolver interface {
	Resolve(ctx context.Context, address string) (model.GeoPoint, bool, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, address string) (model.GeoPoint, bool, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, address string) (model.GeoPoint, bool, error) {
	return f(ctx, address)
}

// StaticResolver resolves addresses against a fixed in-memory table,
// keyed case-insensitively. Used for demos and tests.
type StaticResolver struct {
	table map[string]model.GeoPoint
}

// NewStaticResolver builds a resolver over the given address table.
func NewStaticResolver(table map[string]model.GeoPoint) *StaticResolver {
	normalized := make(map[string]model.GeoPoint, len(table))
	for addr, pt := range table {
		normalized[normalize(addr)] = pt
	}
	return &StaticResolver{table: normalized}
}

// Resolve looks the address up in the table.
func (r *StaticResolver) Resolve(ctx context.Context, address string) (model.GeoPoint, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.GeoPoint{}, false, err
	}
	pt, ok := r.table[normalize(address)]
	return pt, ok, nil
}

func normalize(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
