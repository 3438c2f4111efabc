// Package artifact renders the accepted listing set into the consumer
// artifact: a TypeScript data module by default, plain JSON as an
// alternative. Output is deterministic for a given input set.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/blausm/dentscout/internal/config"
	"github.com/blausm/dentscout/internal/types"
)

// FormatTS and FormatJSON are the supported artifact formats.
const (
	FormatTS   = "ts"
	FormatJSON = "json"
)

const tsModule = `// Auto-generated dataset. Do not edit by hand.
{{- if .Placeholder}}
// Placeholder data: the last run matched no listings.
{{- end}}

export interface Mention {
  keyword: string;
  context: string;
  source?: string;
  sentiment: 'positive' | 'neutral' | 'negative';
  sentiment_score: number;
}

export interface Review {
  id: string;
  serviceId: string;
  rating: number;
  comment: string;
  author: string;
  source: string;
  date: string;
  mentions?: Mention[];
}

export interface Service {
  id: string;
  name: string;
  description: string;
  shortDescription: string;
  category: string;
  address: string;
  latitude: number;
  longitude: number;
  phone: string;
  website?: string;
  hours: Record<string, string>;
  averageRating?: number;
  reviews?: Review[];
  mentions?: Mention[];
}

export const services: Service[] = {{.Data}};
`

var tsTmpl = template.Must(template.New("module").Parse(tsModule))

// Writer persists one run's accepted set to disk.
type Writer struct {
	path   string
	format string
	mu     sync.Mutex
	logger *slog.Logger
}

// New creates a Writer for the configured output path, creating the
// parent directory if needed.
func New(cfg config.OutputConfig, logger *slog.Logger) (*Writer, error) {
	switch cfg.Format {
	case FormatTS, FormatJSON:
	default:
		return nil, fmt.Errorf("unsupported artifact format: %s", cfg.Format)
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &types.ArtifactError{Path: cfg.Path, Err: err}
	}

	return &Writer{
		path:   cfg.Path,
		format: cfg.Format,
		logger: logger.With("component", "artifact_writer"),
	}, nil
}

// Write renders the services in order and replaces the artifact file
// atomically enough for a consumer build step (single os.WriteFile).
func (w *Writer) Write(services []types.Service, placeholder bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var (
		out []byte
		err error
	)
	switch w.format {
	case FormatTS:
		out, err = renderTS(services, placeholder)
	case FormatJSON:
		out, err = renderJSON(services)
	}
	if err != nil {
		return &types.ArtifactError{Path: w.path, Err: err}
	}

	if err := os.WriteFile(w.path, out, 0o644); err != nil {
		return &types.ArtifactError{Path: w.path, Err: err}
	}

	w.logger.Info("artifact written",
		"path", w.path,
		"format", w.format,
		"services", len(services),
		"placeholder", placeholder,
	)
	return nil
}

// Path returns the configured output path.
func (w *Writer) Path() string { return w.path }

// renderTS produces the TypeScript module. The record literal is the
// JSON encoding of the set, which is valid TypeScript; map keys come out
// sorted, so equal inputs give byte-identical files.
func renderTS(services []types.Service, placeholder bool) ([]byte, error) {
	data, err := marshalServices(services)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tsTmpl.Execute(&buf, struct {
		Placeholder bool
		Data        string
	}{placeholder, string(data)})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderJSON(services []types.Service) ([]byte, error) {
	data, err := marshalServices(services)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func marshalServices(services []types.Service) ([]byte, error) {
	if services == nil {
		// An empty run still renders a well-formed collection.
		services = []types.Service{}
	}
	data, err := json.MarshalIndent(services, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode services: %w", err)
	}
	return data, nil
}
