package service

import (
	"math/rand"
	"sort"

	"github.com/htloc/toeic-practice-api/internal/model"
)

// PartQuestionLimits caps how many questions each part number may serve in
// an assembled exam. Part numbers absent from the map cap at zero.
type PartQuestionLimits map[int]int

// DefaultPartQuestionLimits follows the standard 7-part TOEIC structure.
var DefaultPartQuestionLimits = PartQuestionLimits{
	1: 6,
	2: 25,
	3: 39,
	4: 30,
	5: 30,
	6: 16,
	7: 54,
}

func (l PartQuestionLimits) LimitFor(partNumber int) int {
	return l[partNumber]
}

// SelectPartQuestions picks the questions one part serves. With shuffle off,
// questions keep their stored display order (unset orders sort last, ties
// break on id). With shuffle on they are uniformly permuted using rng. The
// result is truncated to limit and never aliases the input slice.
func SelectPartQuestions(questions []model.Question, limit int, shuffle bool, rng *rand.Rand) []model.Question {
	selected := make([]model.Question, len(questions))
	copy(selected, questions)

	if shuffle {
		rng.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	} else {
		sort.SliceStable(selected, func(i, j int) bool {
			oi, oj := selected[i].DisplayOrder, selected[j].DisplayOrder
			switch {
			case oi != nil && oj != nil && *oi != *oj:
				return *oi < *oj
			case oi != nil && oj == nil:
				return true
			case oi == nil && oj != nil:
				return false
			}
			return selected[i].ID < selected[j].ID
		})
	}

	if limit < 0 {
		limit = 0
	}
	if len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}
