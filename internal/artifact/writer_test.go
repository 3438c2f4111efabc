package artifact

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blausm/dentscout/internal/config"
	"github.com/blausm/dentscout/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleServices() []types.Service {
	return []types.Service{
		{
			ID:               "1",
			Name:             "Gentle Care Dental",
			Description:      "Sensory-friendly practice.",
			ShortDescription: "Sensory-friendly practice.",
			Category:         "Dentist",
			Address:          "120 W 31st St, New York, NY 10001",
			Latitude:         40.7484,
			Longitude:        -73.9936,
			Phone:            "(212) 555-0134",
			Hours:            types.DefaultHours(),
			AverageRating:    4.5,
			Reviews: []types.Review{
				{
					ID: "1-1", ServiceID: "1", Rating: 5,
					Comment: "Great with my autistic son.",
					Author:  "Lee", Source: "Google Maps", Date: "2025-05-01",
				},
			},
			Mentions: []types.Mention{
				{
					Keyword: "autistic", Context: "Great with my autistic son.",
					Source: "Review by Lee", Sentiment: types.SentimentPositive,
					SentimentScore: 0.5,
				},
			},
		},
		{
			ID:               "2",
			Name:             "Calm Horizons Dentistry",
			Description:      "Appointments for patients with anxiety.",
			ShortDescription: "Appointments for patients with anxiety.",
			Category:         "Dentist",
			Address:          "58 Court St, Brooklyn, NY 11201",
			Latitude:         40.6937,
			Longitude:        -73.9910,
			Phone:            "(718) 555-0188",
			Hours:            types.DefaultHours(),
		},
	}
}

func newWriter(t *testing.T, format string) *Writer {
	t.Helper()
	w, err := New(config.OutputConfig{
		Path:   filepath.Join(t.TempDir(), "out", "services."+format),
		Format: format,
	}, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestWriteTS(t *testing.T) {
	w := newWriter(t, FormatTS)
	if err := w.Write(sampleServices(), false); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}
	text := string(out)

	for _, want := range []string{
		"export interface Review {",
		"export interface Service {",
		"export const services: Service[] = [",
		`"name": "Gentle Care Dental"`,
		`"serviceId": "1"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("artifact missing %q", want)
		}
	}
	if strings.Contains(text, "Placeholder data") {
		t.Error("real data must not carry the placeholder marker")
	}

	// First service must precede the second.
	if strings.Index(text, "Gentle Care Dental") > strings.Index(text, "Calm Horizons Dentistry") {
		t.Error("services out of order")
	}
}

func TestWriteTSPlaceholderMarker(t *testing.T) {
	w := newWriter(t, FormatTS)
	if err := w.Write(sampleServices(), true); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "// Placeholder data") {
		t.Error("placeholder runs must be marked in the artifact header")
	}
}

func TestWriteTSDeterministic(t *testing.T) {
	w := newWriter(t, FormatTS)

	if err := w.Write(sampleServices(), false); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Write(sampleServices(), false); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("equal inputs must produce byte-identical artifacts")
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	w := newWriter(t, FormatJSON)
	in := sampleServices()
	if err := w.Write(in, false); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}

	var got []types.Service
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("expected %d services, got %d", len(in), len(got))
	}
	for i := range in {
		if got[i].ID != in[i].ID || got[i].Name != in[i].Name {
			t.Errorf("service %d: got %s/%s", i, got[i].ID, got[i].Name)
		}
	}
	if got[0].Reviews[0].ID != "1-1" {
		t.Errorf("review id = %q", got[0].Reviews[0].ID)
	}
	if len(got[0].Hours) != 7 {
		t.Errorf("hours keys = %d", len(got[0].Hours))
	}
}

func TestWriteEmptySet(t *testing.T) {
	w := newWriter(t, FormatJSON)
	if err := w.Write(nil, false); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}
	var got []types.Service
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("empty artifact must still be a valid collection: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d", len(got))
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(config.OutputConfig{
		Path:   filepath.Join(t.TempDir(), "services.xml"),
		Format: "xml",
	}, discardLogger())
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
