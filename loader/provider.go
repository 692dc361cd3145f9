package loader

import (
	"context"
)

// FetchOptions carries pass-through settings handed to every provider call.
type FetchOptions struct {
	// Header holds header values for providers that speak a
	// header-carrying protocol. Other providers may ignore it.
	Header map[string]string

	// UserAgent identifies the client to remote providers.
	UserAgent string

	// Extra holds caller-defined pass-through values set via WithExtra.
	Extra map[string]any
}

// Provider performs I/O for one URI scheme.
//
// Fetch returns the parsed document for address. For a primary document the
// result must be a map; the loader rejects anything else. For a localization
// sidecar a nil result or an error means "no localization" and is never
// fatal - this is the only place a provider failure is recovered.
//
// The loader awaits provider calls sequentially; implementations do not need
// to be safe for concurrent use by a single Load call. Cancellation and
// timeouts are the provider's concern, via the passed context.
type Provider interface {
	Fetch(ctx context.Context, address string, opts FetchOptions) (any, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, address string, opts FetchOptions) (any, error)

// Fetch implements Provider.
func (f ProviderFunc) Fetch(ctx context.Context, address string, opts FetchOptions) (any, error) {
	return f(ctx, address, opts)
}
