package service

import (
	"math/rand"
	"testing"

	"github.com/htloc/toeic-practice-api/internal/model"
)

func intPtr(v int) *int { return &v }

func questionsWithIDs(ids ...uint) []model.Question {
	qs := make([]model.Question, len(ids))
	for i, id := range ids {
		qs[i] = model.Question{ID: id}
	}
	return qs
}

func idsOf(qs []model.Question) []uint {
	ids := make([]uint, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDefaultPartQuestionLimits(t *testing.T) {
	want := map[int]int{1: 6, 2: 25, 3: 39, 4: 30, 5: 30, 6: 16, 7: 54}
	total := 0
	for part, limit := range want {
		if got := DefaultPartQuestionLimits.LimitFor(part); got != limit {
			t.Errorf("part %d: limit = %d, want %d", part, got, limit)
		}
		total += limit
	}
	if total != 200 {
		t.Errorf("limits sum to %d, want 200", total)
	}
	if got := DefaultPartQuestionLimits.LimitFor(8); got != 0 {
		t.Errorf("unknown part: limit = %d, want 0", got)
	}
}

func TestSelectPartQuestionsCapsAndOrder(t *testing.T) {
	tests := []struct {
		name      string
		questions []model.Question
		limit     int
		wantIDs   []uint
	}{
		{
			name:      "caps to limit",
			questions: questionsWithIDs(1, 2, 3, 4, 5, 6, 7, 8),
			limit:     6,
			wantIDs:   []uint{1, 2, 3, 4, 5, 6},
		},
		{
			name:      "serves all when under limit",
			questions: questionsWithIDs(1, 2, 3),
			limit:     6,
			wantIDs:   []uint{1, 2, 3},
		},
		{
			name: "display order wins over id",
			questions: []model.Question{
				{ID: 1, DisplayOrder: intPtr(3)},
				{ID: 2, DisplayOrder: intPtr(1)},
				{ID: 3, DisplayOrder: intPtr(2)},
			},
			limit:   6,
			wantIDs: []uint{2, 3, 1},
		},
		{
			name: "unset display order sorts last",
			questions: []model.Question{
				{ID: 1},
				{ID: 2, DisplayOrder: intPtr(2)},
				{ID: 3, DisplayOrder: intPtr(1)},
			},
			limit:   6,
			wantIDs: []uint{3, 2, 1},
		},
		{
			name:      "zero limit yields nothing",
			questions: questionsWithIDs(1, 2),
			limit:     0,
			wantIDs:   []uint{},
		},
		{
			name:      "negative limit treated as zero",
			questions: questionsWithIDs(1, 2),
			limit:     -1,
			wantIDs:   []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPartQuestions(tt.questions, tt.limit, false, nil)
			if !equalIDs(idsOf(got), tt.wantIDs) {
				t.Errorf("SelectPartQuestions() ids = %v, want %v", idsOf(got), tt.wantIDs)
			}
		})
	}
}

func TestSelectPartQuestionsShuffleIsSeededPermutation(t *testing.T) {
	questions := questionsWithIDs(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	first := SelectPartQuestions(questions, 10, true, rand.New(rand.NewSource(42)))
	second := SelectPartQuestions(questions, 10, true, rand.New(rand.NewSource(42)))

	if !equalIDs(idsOf(first), idsOf(second)) {
		t.Errorf("same seed produced different orders: %v vs %v", idsOf(first), idsOf(second))
	}

	seen := make(map[uint]bool, len(first))
	for _, q := range first {
		seen[q.ID] = true
	}
	for _, q := range questions {
		if !seen[q.ID] {
			t.Errorf("shuffle lost question %d", q.ID)
		}
	}
}

func TestSelectPartQuestionsDoesNotMutateInput(t *testing.T) {
	questions := questionsWithIDs(1, 2, 3, 4, 5)
	original := idsOf(questions)

	SelectPartQuestions(questions, 3, true, rand.New(rand.NewSource(7)))

	if !equalIDs(idsOf(questions), original) {
		t.Errorf("input slice reordered to %v, want %v untouched", idsOf(questions), original)
	}
}
