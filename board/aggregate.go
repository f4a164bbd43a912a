package board

import "prodea_gateway/models"

// SolutionsForPost returns the solutions whose post_id matches, in the
// order the backend returned them. A solution pointing at a post that is
// not in the list simply never appears anywhere.
func (s *State) SolutionsForPost(postID int) []models.Solution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterSolutions(s.solutions, postID)
}

// CommentsForSolution returns the comments whose solution_id matches, in
// list order.
func (s *State) CommentsForSolution(solutionID int) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterComments(s.comments, solutionID)
}

func filterSolutions(solutions []models.Solution, postID int) []models.Solution {
	matched := []models.Solution{}
	for _, solution := range solutions {
		if solution.PostID == postID {
			matched = append(matched, solution)
		}
	}
	return matched
}

func filterComments(comments []models.Comment, solutionID int) []models.Comment {
	matched := []models.Comment{}
	for _, comment := range comments {
		if comment.SolutionID == solutionID {
			matched = append(matched, comment)
		}
	}
	return matched
}

type SolutionView struct {
	models.Solution
	Expanded bool             `json:"expanded"`
	Comments []models.Comment `json:"comments"`
}

type PostView struct {
	models.Post
	Rating    int            `json:"rating"`
	Expanded  bool           `json:"expanded"`
	Solutions []SolutionView `json:"solutions"`
}

// Tree derives the full post → solution → comment grouping from the flat
// lists. It is recomputed on every call so it can never drift from the
// lists it is built from.
func (s *State) Tree() []PostView {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree := make([]PostView, 0, len(s.posts))
	for _, post := range s.posts {
		view := PostView{
			Post:     post,
			Rating:   s.postRatings[post.ID],
			Expanded: s.expandedPosts[post.ID],
		}
		for _, solution := range filterSolutions(s.solutions, post.ID) {
			view.Solutions = append(view.Solutions, SolutionView{
				Solution: solution,
				Expanded: s.expandedSolutions[solution.ID],
				Comments: filterComments(s.comments, solution.ID),
			})
		}
		tree = append(tree, view)
	}
	return tree
}
