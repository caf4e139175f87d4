package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pictoplace/pictoplace/pkg/buildinfo"
	"github.com/pictoplace/pictoplace/pkg/errors"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
	"github.com/pictoplace/pictoplace/pkg/pipeline"
)

// maxManifestBytes bounds POST bodies.
const maxManifestBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// letterInfo describes one special letter for API consumers.
type letterInfo struct {
	Letter       pictograph.Letter `json:"letter"`
	Type3        bool              `json:"type3"`
	DualDash     bool              `json:"dual_dash"`
	LambdaFamily bool              `json:"lambda_family"`
}

func (s *Server) handleLetters(w http.ResponseWriter, r *http.Request) {
	letters := pictograph.SpecialLetters()
	out := make([]letterInfo, 0, len(letters))
	for _, l := range letters {
		out = append(out, letterInfo{
			Letter:       l,
			Type3:        l.IsType3(),
			DualDash:     l.IsDualDash(),
			LambdaFamily: l.IsLambdaFamily(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"letters": out})
}

// placementsResponse is the JSON envelope for derived placements.
type placementsResponse struct {
	RequestID    string                   `json:"request_id,omitempty"`
	SequenceHash string                   `json:"sequence_hash"`
	GridMode     string                   `json:"grid_mode"`
	Beats        []pipeline.BeatPlacement `json:"beats"`
	CacheInfo    struct {
		Load   bool `json:"load"`
		Derive bool `json:"derive"`
	} `json:"cache_info"`
}

func (s *Server) handlePlacements(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxManifestBytes))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	opts, err := optionsFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.ManifestJSON = body
	opts.Logger = s.logger

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if format == pipeline.FormatCSV {
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[pipeline.FormatCSV])
		return
	}

	resp := placementsResponse{
		RequestID:    RequestIDFrom(r.Context()),
		SequenceHash: result.SequenceHash,
		GridMode:     string(result.Sequence.GridMode),
		Beats:        result.Placements,
	}
	resp.CacheInfo.Load = result.CacheInfo.LoadHit
	resp.CacheInfo.Derive = result.CacheInfo.DeriveHit
	writeJSON(w, http.StatusOK, resp)
}

// optionsFromQuery maps query parameters onto pipeline options.
func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		GridMode:    q.Get("grid_mode"),
		AntiPattern: q.Get("anti_pattern"),
		AdjustRef:   q.Get("adjust"),
	}

	for name, dst := range map[string]*bool{
		"dash_override": &opts.DashOverride,
		"skip_beta":     &opts.SkipBeta,
		"pretty":        &opts.Pretty,
		"refresh":       &opts.Refresh,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, raw)
		}
		*dst = v
	}

	// An adjust ref is either a remote URL or a path relative to the
	// server's working directory. Absolute and parent-escaping paths
	// are rejected so clients cannot read arbitrary files.
	if opts.AdjustRef != "" {
		if strings.Contains(opts.AdjustRef, "://") {
			if err := errors.ValidateURL(opts.AdjustRef); err != nil {
				return opts, err
			}
		} else if err := errors.ValidatePath(opts.AdjustRef); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLetter, errors.ErrCodeInvalidMotion,
		errors.ErrCodeInvalidGridMode, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidManifest,
		errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeLetterNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	case errors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	case errors.ErrCodeNetwork:
		status = http.StatusBadGateway
	}

	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
