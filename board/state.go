// Package board holds the client-side state for the problems & solutions
// view: the three flat entity lists fetched from the backend, the derived
// post → solution → comment groupings, and the per-session UI state
// (expand/collapse sets, optimistic post ratings).
package board

import (
	"context"
	"errors"
	"strings"
	"sync"

	"prodea_gateway/models"
)

// Fetcher is the subset of the API client the board depends on.
type Fetcher interface {
	GetPosts(ctx context.Context) ([]models.Post, error)
	GetSolutions(ctx context.Context) ([]models.Solution, error)
	GetComments(ctx context.Context) ([]models.Comment, error)
}

// State owns the flat lists for one session. The lists are replaced
// wholesale after every mutation; the grouped tree is always derived from
// them by filtering, never stored separately.
type State struct {
	mu      sync.Mutex
	fetcher Fetcher

	posts     []models.Post
	solutions []models.Solution
	comments  []models.Comment

	loaded  bool
	loading bool
	lastErr string

	expandedPosts     map[int]bool
	expandedSolutions map[int]bool
	postRatings       map[int]int
}

func New(fetcher Fetcher) *State {
	return &State{
		fetcher:           fetcher,
		expandedPosts:     map[int]bool{},
		expandedSolutions: map[int]bool{},
		postRatings:       map[int]int{},
	}
}

// Refresh re-fetches all three lists concurrently and replaces local
// state only when every fetch succeeds. On any failure the previously
// held lists stay as they were and the aggregated error names each
// resource that failed.
func (s *State) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	var (
		wg        sync.WaitGroup
		posts     []models.Post
		solutions []models.Solution
		comments  []models.Comment
		errPosts  error
		errSols   error
		errComs   error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		posts, errPosts = s.fetcher.GetPosts(ctx)
	}()
	go func() {
		defer wg.Done()
		solutions, errSols = s.fetcher.GetSolutions(ctx)
	}()
	go func() {
		defer wg.Done()
		comments, errComs = s.fetcher.GetComments(ctx)
	}()
	wg.Wait()

	var failures []string
	if errPosts != nil {
		failures = append(failures, "posts: "+errPosts.Error())
	}
	if errSols != nil {
		failures = append(failures, "solutions: "+errSols.Error())
	}
	if errComs != nil {
		failures = append(failures, "comments: "+errComs.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if len(failures) > 0 {
		s.lastErr = strings.Join(failures, "; ")
		return errors.New(s.lastErr)
	}

	s.posts = posts
	s.solutions = solutions
	s.comments = comments
	s.loaded = true

	// Post ratings are display-only and start over on every fetch.
	ratings := make(map[int]int, len(posts))
	for _, post := range posts {
		ratings[post.ID] = 0
	}
	s.postRatings = ratings

	return nil
}

// EnsureLoaded fetches once on first use; later views reuse the held
// lists until a mutation forces a refresh.
func (s *State) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *State) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *State) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *State) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *State) Solutions() []models.Solution {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Solution, len(s.solutions))
	copy(out, s.solutions)
	return out
}

func (s *State) Comments() []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}
