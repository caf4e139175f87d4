package adjust

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pictoplace/pictoplace/pkg/errors"
	"github.com/pictoplace/pictoplace/pkg/httputil"
)

// Source loads an adjustment table.
type Source interface {
	Load(ctx context.Context) (*Table, error)
}

// BuiltinSource serves the built-in defaults.
type BuiltinSource struct{}

// Load returns the built-in table.
func (BuiltinSource) Load(ctx context.Context) (*Table, error) {
	return Builtin(), nil
}

// FileSource loads a table from a local JSON or TOML file.
// The format is chosen by file extension.
type FileSource struct {
	Path string
}

// Load reads and decodes the file.
func (s FileSource) Load(ctx context.Context) (*Table, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "adjustment file not found: %s", s.Path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read adjustment file")
	}

	var table Table
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json":
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse adjustment JSON")
		}
	case ".toml":
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse adjustment TOML")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported adjustment format: %s", filepath.Ext(s.Path))
	}
	return &table, nil
}

// RemoteSource loads a table from an HTTP endpoint serving JSON.
type RemoteSource struct {
	URL    string
	Client *httputil.Client
}

// Load fetches and decodes the remote table.
func (s RemoteSource) Load(ctx context.Context) (*Table, error) {
	client := s.Client
	if client == nil {
		client = httputil.NewClient(nil, nil)
	}
	var table Table
	if err := client.GetJSON(ctx, s.URL, &table); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch adjustment table")
	}
	return &table, nil
}

// Resolve picks a source for ref and loads it merged over the built-in
// defaults. An empty ref returns the built-in table unchanged; an http(s)
// URL goes through RemoteSource, anything else through FileSource.
func Resolve(ctx context.Context, ref string, client *httputil.Client) (*Table, error) {
	base := Builtin()
	if ref == "" {
		return base, nil
	}

	var src Source
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		src = RemoteSource{URL: ref, Client: client}
	} else {
		src = FileSource{Path: ref}
	}

	loaded, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return base.Merge(loaded), nil
}
