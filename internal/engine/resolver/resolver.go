// Package resolver locates the project directory and picks the runner to use.
package resolver

import (
	"cmp"
	"path/filepath"
	"slices"

	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Detector reports the runners present in a single directory.
type Detector interface {
	Detect(dir string, ignore []string) []domain.DetectedRunner
}

// Result is the outcome of a successful Search.
type Result struct {
	// Matches are the runners found at the resolved level, in detection order.
	Matches []domain.DetectedRunner
	// Dir is the directory the matches were found in.
	Dir string
	// Level is the number of parent steps from the start directory to Dir.
	Level int
}

// TraceFunc is called for every directory visited by Search.
type TraceFunc func(level int, dir string, matches []domain.DetectedRunner)

// Resolver walks up the directory tree looking for runners.
type Resolver struct {
	detector Detector
	trace    TraceFunc
}

// New creates a Resolver. trace may be nil.
func New(detector Detector, trace TraceFunc) *Resolver {
	return &Resolver{detector: detector, trace: trace}
}

// Search runs every detector at startDir and then at each parent, up to maxLevels
// parents inclusive, and stops at the first directory with a non-ignored match.
// A closer directory always wins over a farther one, whatever the priorities.
func (r *Resolver) Search(startDir string, maxLevels int, ignore []string) (Result, error) {
	dir := filepath.Clean(startDir)
	for level := 0; level <= maxLevels; level++ {
		matches := r.detector.Detect(dir, ignore)
		if r.trace != nil {
			r.trace(level, dir, matches)
		}
		if len(matches) > 0 {
			return Result{Matches: matches, Dir: dir, Level: level}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	err := zerr.Wrap(domain.ErrRunnerNotFound, "no supported project file in the searched directories")
	err = zerr.With(err, "start_dir", startDir)
	return Result{}, zerr.With(err, "levels", maxLevels)
}

// Select returns the match with the lowest priority number.
// Equal priorities keep detection order.
func Select(matches []domain.DetectedRunner) (domain.DetectedRunner, error) {
	if len(matches) == 0 {
		return domain.DetectedRunner{}, domain.ErrNoRunnerAvailable
	}
	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, func(a, b domain.DetectedRunner) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return sorted[0], nil
}

// Conflict is a set of runners of one ecosystem detected in the same directory.
type Conflict struct {
	Ecosystem domain.Ecosystem
	Runners   []domain.DetectedRunner
}

// Conflicts groups matches by ecosystem and returns every group holding more than one
// runner, ordered by first detection. Runners of different ecosystems never conflict.
func Conflicts(matches []domain.DetectedRunner) []Conflict {
	var order []domain.Ecosystem
	groups := map[domain.Ecosystem][]domain.DetectedRunner{}
	for _, m := range matches {
		if _, ok := groups[m.Ecosystem]; !ok {
			order = append(order, m.Ecosystem)
		}
		groups[m.Ecosystem] = append(groups[m.Ecosystem], m)
	}

	var conflicts []Conflict
	for _, eco := range order {
		if len(groups[eco]) > 1 {
			conflicts = append(conflicts, Conflict{Ecosystem: eco, Runners: groups[eco]})
		}
	}
	return conflicts
}
