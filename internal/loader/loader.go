// Package loader reads a directory of ball-by-ball match records into
// model.Match values, skipping malformed and duplicate files.
package loader

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// ErrNoMatches is returned when the data directory holds no match records.
var ErrNoMatches = errors.New("no match files found")

// ErrMatchNotFound is returned by Lookup for an id with no file.
var ErrMatchNotFound = errors.New("match not found")

// Result is a loaded corpus. Matches and Summaries are parallel slices in
// file-name order.
type Result struct {
	Matches   []model.Match
	Summaries []model.MatchSummary
	Skipped   []model.SkippedMatch
}

// Summary returns the catalogue record for id.
func (r *Result) Summary(id string) (model.MatchSummary, bool) {
	for _, s := range r.Summaries {
		if s.ID == id {
			return s, true
		}
	}
	return model.MatchSummary{}, false
}

// Match returns the loaded match with the given id.
func (r *Result) Match(id string) (model.Match, bool) {
	for _, m := range r.Matches {
		if m.ID == id {
			return m, true
		}
	}
	return model.Match{}, false
}

// Lookup returns the loaded match with the given id. A file that was skipped
// yields an error carrying the skip reason.
func (r *Result) Lookup(id string) (model.Match, error) {
	if m, ok := r.Match(id); ok {
		return m, nil
	}
	for _, s := range r.Skipped {
		if s.ID == id {
			return model.Match{}, fmt.Errorf("match %s was skipped: %s", id, s.Reason)
		}
	}
	return model.Match{}, fmt.Errorf("%s: %w", id, ErrMatchNotFound)
}

// slot is one file's outcome, filled by a worker.
type slot struct {
	match   model.Match
	summary model.MatchSummary
	skip    string
}

// LoadDir reads every *.json file in dir using up to workers concurrent
// readers. Per-file problems become Skipped entries; only I/O errors on the
// directory itself or a file read abort the load.
func LoadDir(ctx context.Context, dir string, workers int) (*Result, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list match files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoMatches)
	}
	sort.Strings(files)
	if workers < 1 {
		workers = 1
	}

	slots := make([]slot, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			slots[i] = loadOne(path, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	owners := make(map[string]string, len(files))
	for _, s := range slots {
		id := s.match.ID
		if s.skip != "" {
			res.skip(id, s.skip)
			continue
		}
		if first, dup := owners[s.match.Hash]; dup {
			res.skip(id, "duplicate of "+first)
			continue
		}
		owners[s.match.Hash] = id
		res.Matches = append(res.Matches, s.match)
		res.Summaries = append(res.Summaries, s.summary)
	}

	log.Debug().
		Str("dir", dir).
		Int("loaded", len(res.Matches)).
		Int("skipped", len(res.Skipped)).
		Msg("corpus loaded")
	return res, nil
}

func (r *Result) skip(id, reason string) {
	log.Debug().Str("match", id).Str("reason", reason).Msg("skipping match")
	r.Skipped = append(r.Skipped, model.SkippedMatch{ID: id, Reason: reason})
}

func loadOne(path string, data []byte) slot {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sum := sha256.Sum256(data)

	doc, err := Decode(data)
	if err != nil {
		return slot{match: model.Match{ID: id}, skip: err.Error()}
	}
	summary := Summarize(id, path, doc)
	return slot{
		match: model.Match{
			ID:   id,
			Name: summary.Name,
			Hash: fmt.Sprintf("%x", sum),
			Doc:  doc,
		},
		summary: summary,
	}
}
