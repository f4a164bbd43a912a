package board

// TogglePost flips a post's expanded flag and reports the new value.
// Toggling twice always returns the set to where it started.
func (s *State) TogglePost(postID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expandedPosts[postID] {
		delete(s.expandedPosts, postID)
		return false
	}
	s.expandedPosts[postID] = true
	return true
}

func (s *State) ToggleSolution(solutionID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expandedSolutions[solutionID] {
		delete(s.expandedSolutions, solutionID)
		return false
	}
	s.expandedSolutions[solutionID] = true
	return true
}

func (s *State) PostExpanded(postID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expandedPosts[postID]
}

func (s *State) SolutionExpanded(solutionID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expandedSolutions[solutionID]
}

// LikePostLocal bumps the display-only rating for a post. The counter is
// never reconciled with the backend and resets to zero on the next
// successful refresh.
func (s *State) LikePostLocal(postID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postRatings[postID]++
	return s.postRatings[postID]
}

// DislikePostLocal decrements the display-only rating, never below zero.
func (s *State) DislikePostLocal(postID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postRatings[postID] > 0 {
		s.postRatings[postID]--
	}
	return s.postRatings[postID]
}

func (s *State) PostRating(postID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postRatings[postID]
}
