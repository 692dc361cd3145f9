package loader

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/nagaozen/schematools"
	"github.com/nagaozen/schematools/walker"
)

const (
	// DefaultLang is the language tag used when none is configured.
	DefaultLang = "en-US"

	// DefaultMaxDocuments is the maximum number of documents a single Load
	// call will fetch. This prevents resource exhaustion from schemas with
	// unboundedly many external references.
	DefaultMaxDocuments = 100
)

// Option is a function that configures a load operation.
type Option func(*config) error

// config holds configuration for a load operation.
type config struct {
	lang         string
	providers    map[string]Provider
	logger       Logger
	maxDocuments int
	maxDepth     int
	header       map[string]string
	userAgent    string
	extra        map[string]any
}

// applyOptions builds a config from defaults and the given options.
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		lang:         DefaultLang,
		providers:    make(map[string]Provider),
		logger:       NopLogger{},
		maxDocuments: DefaultMaxDocuments,
		maxDepth:     walker.DefaultMaxDepth,
		userAgent:    schematools.UserAgent(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// fetchOptions renders the pass-through options handed to providers.
func (c *config) fetchOptions() FetchOptions {
	return FetchOptions{
		Header:    c.header,
		UserAgent: c.userAgent,
		Extra:     c.extra,
	}
}

// WithLang sets the language for localization overlays. The tag is
// canonicalized as BCP 47; an unparsable tag is a configuration error.
// The default is "en-US".
func WithLang(lang string) Option {
	return func(c *config) error {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("loader: invalid language tag %q: %w", lang, err)
		}
		c.lang = tag.String()
		return nil
	}
}

// WithProvider registers a content provider for a URI scheme.
// The scheme is matched case-insensitively against resolved addresses.
func WithProvider(scheme string, p Provider) Option {
	return func(c *config) error {
		if scheme == "" {
			return fmt.Errorf("loader: provider scheme must not be empty")
		}
		if p == nil {
			return fmt.Errorf("loader: provider for scheme %q must not be nil", scheme)
		}
		c.providers[strings.ToLower(scheme)] = p
		return nil
	}
}

// WithProviders registers a content provider per URI scheme.
// Entries are merged into any previously registered providers.
func WithProviders(providers map[string]Provider) Option {
	return func(c *config) error {
		for scheme, p := range providers {
			if scheme == "" {
				return fmt.Errorf("loader: provider scheme must not be empty")
			}
			if p == nil {
				return fmt.Errorf("loader: provider for scheme %q must not be nil", scheme)
			}
			c.providers[strings.ToLower(scheme)] = p
		}
		return nil
	}
}

// WithLogger sets the logger for load diagnostics.
// The default is a no-op logger.
func WithLogger(l Logger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("loader: logger must not be nil")
		}
		c.logger = l
		return nil
	}
}

// WithMaxDocuments sets the maximum number of documents one Load call may
// fetch. If count is not positive, it is silently ignored and the default
// (100) is kept.
func WithMaxDocuments(count int) Option {
	return func(c *config) error {
		if count > 0 {
			c.maxDocuments = count
		}
		return nil
	}
}

// WithMaxDepth sets the maximum traversal depth per document.
// If depth is not positive, it is silently ignored and the default is kept.
func WithMaxDepth(depth int) Option {
	return func(c *config) error {
		if depth > 0 {
			c.maxDepth = depth
		}
		return nil
	}
}

// WithHeader adds a pass-through header value for providers that carry
// headers (such as the HTTP provider).
func WithHeader(key, value string) Option {
	return func(c *config) error {
		if c.header == nil {
			c.header = make(map[string]string)
		}
		c.header[key] = value
		return nil
	}
}

// WithUserAgent overrides the User-Agent passed to providers.
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		if ua == "" {
			return fmt.Errorf("loader: user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithExtra adds an opaque pass-through value visible to providers via
// FetchOptions.Extra.
func WithExtra(key string, value any) Option {
	return func(c *config) error {
		if c.extra == nil {
			c.extra = make(map[string]any)
		}
		c.extra[key] = value
		return nil
	}
}
