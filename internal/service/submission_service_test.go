package service

import (
	"testing"

	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/model"
)

type submissionFixture struct {
	userRepo     *fakeUserRepo
	examRepo     *fakeExamRepo
	partRepo     *fakePartRepo
	questionRepo *fakeQuestionRepo
	resultRepo   *fakeResultRepo
}

func newSubmissionFixture(t *testing.T, strict bool) (*submissionFixture, SubmissionService) {
	t.Helper()

	f := &submissionFixture{
		userRepo: &fakeUserRepo{users: map[uint]*model.User{
			7: {ID: 7, Name: "Tester", Email: "tester@example.com"},
		}},
		examRepo: &fakeExamRepo{exams: map[uint]*model.Exam{
			1: {ID: 1, Title: "Full Practice Test 1", Duration: 120},
		}},
		partRepo: &fakePartRepo{parts: []model.ExamPart{
			{ID: 10, ExamID: 1, PartNumber: 2},
			{ID: 50, ExamID: 1, PartNumber: 5},
		}},
		questionRepo: &fakeQuestionRepo{questions: map[uint]model.Question{
			1: {ID: 1, PartID: 10, CorrectAnswer: "A"},
			2: {ID: 2, PartID: 10, CorrectAnswer: "B"},
			3: {ID: 3, PartID: 50, CorrectAnswer: "C"},
			4: {ID: 4, PartID: 50, CorrectAnswer: "D"},
			5: {ID: 5, PartID: 50, CorrectAnswer: "A"},
			6: {ID: 6, PartID: 50, CorrectAnswer: "B"},
		}},
		resultRepo: &fakeResultRepo{},
	}

	svc := NewSubmissionService(f.userRepo, f.examRepo, f.partRepo, f.questionRepo, f.resultRepo, strict)
	return f, svc
}

func TestSubmitAnswersRecordsGradedAttempt(t *testing.T) {
	f, svc := newSubmissionFixture(t, false)

	answers := []dto.SubmittedAnswer{
		{QuestionID: 1, SelectedAnswer: strPtr("A")},
		{QuestionID: 2, SelectedAnswer: strPtr("B")},
		{QuestionID: 3, SelectedAnswer: strPtr("C")},
		{QuestionID: 4, SelectedAnswer: strPtr("D")},
		{QuestionID: 5, SelectedAnswer: strPtr("B")},
		{QuestionID: 6, SelectedAnswer: nil},
	}

	summary, err := svc.SubmitAnswers(7, 1, answers, 95)
	if err != nil {
		t.Fatalf("SubmitAnswers() error = %v", err)
	}

	if summary.CorrectAnswers != 4 || summary.WrongAnswers != 1 || summary.UnansweredQuestions != 1 {
		t.Errorf("summary counts = %d/%d/%d, want 4/1/1",
			summary.CorrectAnswers, summary.WrongAnswers, summary.UnansweredQuestions)
	}
	if summary.TotalScore != 20 {
		t.Errorf("TotalScore = %d, want 20", summary.TotalScore)
	}
	if summary.ListeningScore != 10 || summary.ReadingScore != 10 {
		t.Errorf("listening/reading = %d/%d, want 10/10", summary.ListeningScore, summary.ReadingScore)
	}
	if summary.CompletedTime != 95 {
		t.Errorf("CompletedTime = %d, want 95", summary.CompletedTime)
	}

	if len(f.resultRepo.created) != 1 {
		t.Fatalf("created %d results, want 1", len(f.resultRepo.created))
	}
	result := f.resultRepo.created[0]
	if result.UserID != 7 || result.ExamID != 1 {
		t.Errorf("result user/exam = %d/%d, want 7/1", result.UserID, result.ExamID)
	}
	if result.Status != model.ExamResultStatusCompleted {
		t.Errorf("Status = %q, want %q", result.Status, model.ExamResultStatusCompleted)
	}
	if result.CompletedAt == nil {
		t.Error("CompletedAt is nil, want a timestamp")
	}
	if result.TotalQuestions != 6 {
		t.Errorf("TotalQuestions = %d, want tallied 6", result.TotalQuestions)
	}
	if len(result.Details) != 6 {
		t.Errorf("len(Details) = %d, want 6", len(result.Details))
	}
}

func TestSubmitAnswersSkipsUnknownQuestions(t *testing.T) {
	f, svc := newSubmissionFixture(t, false)

	answers := []dto.SubmittedAnswer{
		{QuestionID: 1, SelectedAnswer: strPtr("A")},
		{QuestionID: 999, SelectedAnswer: strPtr("C")},
	}

	summary, err := svc.SubmitAnswers(7, 1, answers, 10)
	if err != nil {
		t.Fatalf("SubmitAnswers() error = %v", err)
	}

	if summary.SkippedQuestions != 1 {
		t.Errorf("SkippedQuestions = %d, want 1", summary.SkippedQuestions)
	}
	if summary.CorrectAnswers != 1 {
		t.Errorf("CorrectAnswers = %d, want 1", summary.CorrectAnswers)
	}
	if len(f.resultRepo.created) != 1 {
		t.Fatalf("created %d results, want 1", len(f.resultRepo.created))
	}
	// The skipped answer must not leave a detail row.
	if got := len(f.resultRepo.created[0].Details); got != 1 {
		t.Errorf("len(Details) = %d, want 1", got)
	}
	if got := f.resultRepo.created[0].TotalQuestions; got != 1 {
		t.Errorf("TotalQuestions = %d, want 1", got)
	}
}

func TestSubmitAnswersStrictModeRejectsUnknownQuestions(t *testing.T) {
	f, svc := newSubmissionFixture(t, true)

	answers := []dto.SubmittedAnswer{
		{QuestionID: 1, SelectedAnswer: strPtr("A")},
		{QuestionID: 999, SelectedAnswer: strPtr("C")},
	}

	_, err := svc.SubmitAnswers(7, 1, answers, 10)
	if !apperror.IsInvalid(err) {
		t.Errorf("SubmitAnswers() error = %v, want invalid", err)
	}
	if len(f.resultRepo.created) != 0 {
		t.Errorf("created %d results, want none", len(f.resultRepo.created))
	}
}

func TestSubmitAnswersValidation(t *testing.T) {
	valid := []dto.SubmittedAnswer{{QuestionID: 1, SelectedAnswer: strPtr("A")}}

	tests := []struct {
		name      string
		userID    uint
		examID    uint
		answers   []dto.SubmittedAnswer
		wantCheck func(error) bool
		wantLabel string
	}{
		{"missing exam id", 7, 0, valid, apperror.IsInvalid, "invalid"},
		{"empty answers", 7, 1, nil, apperror.IsInvalid, "invalid"},
		{"zero question id", 7, 1, []dto.SubmittedAnswer{{QuestionID: 0}}, apperror.IsInvalid, "invalid"},
		{"selected answer outside A-D", 7, 1, []dto.SubmittedAnswer{{QuestionID: 1, SelectedAnswer: strPtr("E")}}, apperror.IsInvalid, "invalid"},
		{"unknown user", 99, 1, valid, apperror.IsNotFound, "not found"},
		{"unknown exam", 7, 42, valid, apperror.IsNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, svc := newSubmissionFixture(t, false)

			_, err := svc.SubmitAnswers(tt.userID, tt.examID, tt.answers, 0)
			if !tt.wantCheck(err) {
				t.Errorf("SubmitAnswers() error = %v, want %s", err, tt.wantLabel)
			}
			// Rejected submissions must not write anything.
			if len(f.resultRepo.created) != 0 {
				t.Errorf("created %d results, want none", len(f.resultRepo.created))
			}
		})
	}
}
