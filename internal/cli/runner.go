package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pictoplace/pictoplace/pkg/cache"
	"github.com/pictoplace/pictoplace/pkg/httputil"
	"github.com/pictoplace/pictoplace/pkg/pipeline"
)

// newRunner builds a pipeline runner backed by the standard CLI cache.
// With noCache set the runner still works, it just recomputes everything.
// Remote adjustment tables go through a cached HTTP client so repeated
// runs against the same URL do not refetch within the TTL.
func newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	c, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(c, nil, loggerFromContext(ctx))

	if !noCache {
		if dir, err := cacheDir(); err == nil {
			if httpCache, err := httputil.NewCache(filepath.Join(dir, "http"), cache.TTLHTTP); err == nil {
				runner.HTTP = httputil.NewClient(nil, httpCache.Namespace("adjust:"))
			}
		}
	}
	return runner, nil
}

// newCache selects the cache backend for CLI runs. A missing home
// directory degrades to the null cache rather than failing the command.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pictoplace/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
