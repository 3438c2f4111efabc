package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrNavTimeout    = errors.New("navigation timed out")
	ErrNotFound      = errors.New("element not found")
	ErrNoMatches     = errors.New("no listings matched the keyword taxonomy")
	ErrEmptyTaxonomy = errors.New("keyword taxonomy is empty")
)

// ExtractError wraps a failure while extracting one listing. These are
// logged and contained at the listing level; they never abort the batch.
type ExtractError struct {
	Item int    // 0-based position in the result list
	Name string // listing name, when known
	Err  error
}

func (e *ExtractError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("extract listing %d (%q): %v", e.Item, e.Name, e.Err)
	}
	return fmt.Sprintf("extract listing %d: %v", e.Item, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// ScrollError wraps a failure inside the convergent scroll loop.
type ScrollError struct {
	Feed string
	Err  error
}

func (e *ScrollError) Error() string {
	return fmt.Sprintf("scroll %s feed: %v", e.Feed, e.Err)
}

func (e *ScrollError) Unwrap() error { return e.Err }

// ArtifactError wraps an output serialization failure. Unlike extract and
// scroll failures, these are fatal to the run.
type ArtifactError struct {
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("write artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }
