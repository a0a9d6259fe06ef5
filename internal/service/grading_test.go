package service

import (
	"testing"

	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/model"
)

func strPtr(s string) *string { return &s }

func TestGradeSubmissionScenario(t *testing.T) {
	// Parts 10 and 20 are listening (1, 4), part 30 is reading (5).
	partNumbers := map[uint]int{10: 1, 20: 4, 30: 5}
	questions := map[uint]model.Question{
		1: {ID: 1, PartID: 10, CorrectAnswer: "A"},
		2: {ID: 2, PartID: 10, CorrectAnswer: "B"},
		3: {ID: 3, PartID: 20, CorrectAnswer: "C"},
		4: {ID: 4, PartID: 30, CorrectAnswer: "D"},
		5: {ID: 5, PartID: 30, CorrectAnswer: "A"},
		6: {ID: 6, PartID: 30, CorrectAnswer: "B"},
	}

	// Four correct, one wrong, one unanswered.
	answers := []dto.SubmittedAnswer{
		{QuestionID: 1, SelectedAnswer: strPtr("A")},
		{QuestionID: 2, SelectedAnswer: strPtr("B")},
		{QuestionID: 3, SelectedAnswer: strPtr("C")},
		{QuestionID: 4, SelectedAnswer: strPtr("D")},
		{QuestionID: 5, SelectedAnswer: strPtr("B")},
		{QuestionID: 6, SelectedAnswer: nil},
	}

	report := GradeSubmission(questions, partNumbers, answers)

	if report.Correct != 4 || report.Wrong != 1 || report.Unanswered != 1 || report.Skipped != 0 {
		t.Errorf("counts = %d/%d/%d/%d, want 4/1/1/0",
			report.Correct, report.Wrong, report.Unanswered, report.Skipped)
	}
	if report.TotalScore != 20 {
		t.Errorf("TotalScore = %d, want 20", report.TotalScore)
	}
	if report.ListeningScore != 15 {
		t.Errorf("ListeningScore = %d, want 15", report.ListeningScore)
	}
	if report.ReadingScore != 5 {
		t.Errorf("ReadingScore = %d, want 5", report.ReadingScore)
	}
	if got := report.ListeningScore + report.ReadingScore; got != report.TotalScore {
		t.Errorf("listening+reading = %d, want TotalScore %d", got, report.TotalScore)
	}
	if len(report.Answers) != len(answers) {
		t.Errorf("len(Answers) = %d, want %d", len(report.Answers), len(answers))
	}
}

func TestGradeSubmissionOutcomes(t *testing.T) {
	partNumbers := map[uint]int{10: 5}
	questions := map[uint]model.Question{
		1: {ID: 1, PartID: 10, CorrectAnswer: "A"},
	}

	tests := []struct {
		name        string
		answer      dto.SubmittedAnswer
		wantOutcome AnswerOutcome
		wantScore   int
	}{
		{
			name:        "correct answer scores flat points",
			answer:      dto.SubmittedAnswer{QuestionID: 1, SelectedAnswer: strPtr("A")},
			wantOutcome: OutcomeCorrect,
			wantScore:   PointsPerCorrectAnswer,
		},
		{
			name:        "wrong answer scores zero",
			answer:      dto.SubmittedAnswer{QuestionID: 1, SelectedAnswer: strPtr("B")},
			wantOutcome: OutcomeWrong,
		},
		{
			name:        "nil answer is unanswered",
			answer:      dto.SubmittedAnswer{QuestionID: 1},
			wantOutcome: OutcomeUnanswered,
		},
		{
			name:        "comparison is exact, no case folding",
			answer:      dto.SubmittedAnswer{QuestionID: 1, SelectedAnswer: strPtr("a")},
			wantOutcome: OutcomeWrong,
		},
		{
			name:        "unknown question is tagged skipped",
			answer:      dto.SubmittedAnswer{QuestionID: 99, SelectedAnswer: strPtr("A")},
			wantOutcome: OutcomeSkippedMissingQuestion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := GradeSubmission(questions, partNumbers, []dto.SubmittedAnswer{tt.answer})
			if len(report.Answers) != 1 {
				t.Fatalf("len(Answers) = %d, want 1", len(report.Answers))
			}
			graded := report.Answers[0]
			if graded.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %q, want %q", graded.Outcome, tt.wantOutcome)
			}
			if graded.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", graded.Score, tt.wantScore)
			}
		})
	}
}

func TestGradeSubmissionSkippedCountsTowardNothing(t *testing.T) {
	partNumbers := map[uint]int{10: 1}
	questions := map[uint]model.Question{
		1: {ID: 1, PartID: 10, CorrectAnswer: "A"},
	}
	answers := []dto.SubmittedAnswer{
		{QuestionID: 1, SelectedAnswer: strPtr("A")},
		{QuestionID: 777, SelectedAnswer: strPtr("C")},
	}

	report := GradeSubmission(questions, partNumbers, answers)

	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}
	if report.Correct != 1 || report.Wrong != 0 || report.Unanswered != 0 {
		t.Errorf("counts = %d/%d/%d, want 1/0/0", report.Correct, report.Wrong, report.Unanswered)
	}
	if report.TotalScore != PointsPerCorrectAnswer {
		t.Errorf("TotalScore = %d, want %d", report.TotalScore, PointsPerCorrectAnswer)
	}
}
