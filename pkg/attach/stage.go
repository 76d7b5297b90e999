package attach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lingoffice/compose/pkg/directory"
)

// fetchConcurrency bounds parallel project-file downloads per batch.
const fetchConcurrency = 4

// File is a locally picked or dropped file.
type File struct {
	Name    string
	Content []byte
}

// StagedFile is one pending attachment. ProjectFileID is set only for
// files sourced from a project.
type StagedFile struct {
	ID            string
	Name          string
	Size          int64
	Content       []byte
	ProjectFileID string
}

// Stage is the ordered, mutable collection of pending attachments.
// It is safe for concurrent use: the user keeps editing while a
// project-file fetch is in flight.
type Stage struct {
	mu    sync.RWMutex
	files []StagedFile
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// Add appends locally picked files in arrival order. Local picks are never
// deduplicated.
func (s *Stage) Add(files ...File) []StagedFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]StagedFile, 0, len(files))
	for _, f := range files {
		sf := StagedFile{
			ID:      uuid.NewString(),
			Name:    f.Name,
			Size:    int64(len(f.Content)),
			Content: f.Content,
		}
		s.files = append(s.files, sf)
		added = append(added, sf)
	}
	return added
}

// ProjectAddResult reports the outcome of one AddFromProject batch.
type ProjectAddResult struct {
	Added      []StagedFile
	Duplicates []string // names that were already staged and were skipped
}

// AddFromProject fetches the given project files through fetcher and
// appends them in request order. A file whose name is already staged is
// skipped and reported in Duplicates. Download failures are joined into
// the returned error (matching ErrFetchFailed); files that did download
// are staged regardless, so a partial batch never loses its successes.
// A nil fetcher fails the whole batch the same way.
func (s *Stage) AddFromProject(ctx context.Context, fetcher directory.FileFetcher, projectID string, files []directory.ProjectFile) (ProjectAddResult, error) {
	var result ProjectAddResult

	// Split off duplicates before spending bandwidth on them.
	var wanted []directory.ProjectFile
	for _, f := range files {
		if s.Contains(f.Name) {
			result.Duplicates = append(result.Duplicates, f.Name)
			continue
		}
		wanted = append(wanted, f)
	}
	if len(wanted) == 0 {
		return result, nil
	}
	if fetcher == nil {
		return result, fmt.Errorf("%w: no file fetcher configured", ErrFetchFailed)
	}

	contents := make([][]byte, len(wanted))
	fetchErrs := make([]error, len(wanted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, f := range wanted {
		g.Go(func() error {
			data, err := fetcher.DownloadProjectFile(gctx, projectID, f.ID)
			if err != nil {
				fetchErrs[i] = fmt.Errorf("%w: %s: %w", ErrFetchFailed, f.Name, err)
				return nil // record, don't cancel the rest of the batch
			}
			contents[i] = data
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	for i, f := range wanted {
		if fetchErrs[i] != nil {
			continue
		}
		// A same-named file may have been staged while we were fetching.
		if s.containsLocked(f.Name) {
			result.Duplicates = append(result.Duplicates, f.Name)
			continue
		}
		sf := StagedFile{
			ID:            uuid.NewString(),
			Name:          f.Name,
			Size:          int64(len(contents[i])),
			Content:       contents[i],
			ProjectFileID: f.ID,
		}
		s.files = append(s.files, sf)
		result.Added = append(result.Added, sf)
	}
	s.mu.Unlock()

	return result, errors.Join(fetchErrs...)
}

// Remove deletes and returns the entry at position i.
func (s *Stage) Remove(i int) (StagedFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.files) {
		return StagedFile{}, ErrIndexOutOfRange
	}
	f := s.files[i]
	s.files = append(s.files[:i], s.files[i+1:]...)
	return f, nil
}

// Contains reports whether a file with the given name is staged.
// The comparison is case-insensitive, matching the dedup policy.
func (s *Stage) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.containsLocked(name)
}

func (s *Stage) containsLocked(name string) bool {
	for _, f := range s.files {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// Files returns a copy of the staged files in order.
func (s *Stage) Files() []StagedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StagedFile, len(s.files))
	copy(out, s.files)
	return out
}

// Len returns the number of staged files.
func (s *Stage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// TotalSize returns the sum of all staged file sizes in bytes.
func (s *Stage) TotalSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, f := range s.files {
		total += f.Size
	}
	return total
}

// Clear removes all staged files.
func (s *Stage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = nil
}
