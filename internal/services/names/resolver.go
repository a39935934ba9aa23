// Package names maps application bundle identifiers to display names.
package names

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/j-veylop/screentime/internal/logger"
)

// Unknown is the display name used for empty identifiers.
const Unknown = "Unknown"

// Default values
const (
	DefaultTimeout   = 5 * time.Second
	DefaultCacheSize = 1024
)

// Resolver resolves display names with a cache in front of a Lookup.
// It is not safe for concurrent use by multiple goroutines.
type Resolver struct {
	lookup  Lookup
	timeout time.Duration
	cache   *lru.Cache[string, string]
	lookups int
}

// NewResolver creates a resolver. A nil lookup disables external lookups.
func NewResolver(lookup Lookup, timeout time.Duration, cacheSize int) (*Resolver, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		lookup:  lookup,
		timeout: timeout,
		cache:   cache,
	}, nil
}

// Resolve returns a display name for identifier. It never fails: lookup
// errors fall back to a name derived from the identifier itself.
func (r *Resolver) Resolve(ctx context.Context, identifier string) string {
	if name, ok := r.cache.Get(identifier); ok {
		return name
	}

	name := r.lookupName(ctx, identifier)
	if name == "" {
		name = Fallback(identifier)
	}
	r.cache.Add(identifier, name)
	return name
}

// Lookups returns how many external lookups were attempted.
func (r *Resolver) Lookups() int {
	return r.lookups
}

func (r *Resolver) lookupName(ctx context.Context, identifier string) string {
	if r.lookup == nil || identifier == "" {
		return ""
	}
	r.lookups++

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	name, err := r.lookup.Lookup(ctx, identifier)
	if err != nil {
		logger.Debug("name lookup failed", "identifier", identifier, "error", err)
		return ""
	}
	return strings.TrimSpace(name)
}

// Fallback derives a display name from the identifier: the last
// dot-separated segment with its first letter upper-cased.
func Fallback(identifier string) string {
	if identifier == "" {
		return Unknown
	}
	if !strings.Contains(identifier, ".") {
		return identifier
	}

	segment := identifier[strings.LastIndex(identifier, ".")+1:]
	if segment == "" {
		return identifier
	}
	first, size := utf8.DecodeRuneInString(segment)
	return string(unicode.ToUpper(first)) + segment[size:]
}
