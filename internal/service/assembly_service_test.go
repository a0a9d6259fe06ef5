package service

import (
	"math/rand"
	"testing"

	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/model"
)

func newAssemblyFixture(t *testing.T) (*fakeExamRepo, *fakePartRepo, *fakeQuestionRepo, ExamAssemblyService) {
	t.Helper()

	part1 := model.ExamPart{ID: 10, ExamID: 1, PartNumber: 1, Questions: questionsWithIDs(1, 2, 3, 4, 5, 6, 7, 8)}
	part5 := model.ExamPart{ID: 50, ExamID: 1, PartNumber: 5, Questions: questionsWithIDs(101, 102)}

	examRepo := &fakeExamRepo{exams: map[uint]*model.Exam{
		1: {
			ID:       1,
			Title:    "Full Practice Test 1",
			Duration: 120,
			// Parts deliberately stored out of order.
			Parts: []model.ExamPart{part5, part1},
		},
	}}
	partRepo := &fakePartRepo{parts: []model.ExamPart{part1, part5}}
	questionRepo := &fakeQuestionRepo{}

	svc := NewExamAssemblyService(examRepo, partRepo, questionRepo, DefaultPartQuestionLimits, rand.New(rand.NewSource(1)))
	return examRepo, partRepo, questionRepo, svc
}

func TestAssembleExamOrdersPartsAndCapsQuestions(t *testing.T) {
	_, _, questionRepo, svc := newAssemblyFixture(t)

	payload, err := svc.AssembleExam(1, false)
	if err != nil {
		t.Fatalf("AssembleExam() error = %v", err)
	}

	if len(payload.Parts) != 2 {
		t.Fatalf("len(Parts) = %d, want 2", len(payload.Parts))
	}
	if payload.Parts[0].PartNumber != 1 || payload.Parts[1].PartNumber != 5 {
		t.Errorf("part order = [%d, %d], want [1, 5]",
			payload.Parts[0].PartNumber, payload.Parts[1].PartNumber)
	}
	if len(payload.Parts[0].Questions) != 6 {
		t.Errorf("part 1 serves %d questions, want capped 6", len(payload.Parts[0].Questions))
	}
	if len(payload.Parts[1].Questions) != 2 {
		t.Errorf("part 5 serves %d questions, want all 2", len(payload.Parts[1].Questions))
	}
	if len(payload.Parts[0].OriginalQuestionIDs) != 8 {
		t.Errorf("part 1 original ids = %d, want uncapped 8", len(payload.Parts[0].OriginalQuestionIDs))
	}
	if len(questionRepo.persisted) != 0 {
		t.Errorf("non-expired assembly persisted %d orders, want none", len(questionRepo.persisted))
	}
}

func TestAssembleExamExpiredPersistsServedOrder(t *testing.T) {
	_, _, questionRepo, svc := newAssemblyFixture(t)

	payload, err := svc.AssembleExam(1, true)
	if err != nil {
		t.Fatalf("AssembleExam() error = %v", err)
	}

	if len(questionRepo.persisted) != len(payload.Parts) {
		t.Fatalf("persisted %d orders, want one per part (%d)",
			len(questionRepo.persisted), len(payload.Parts))
	}
	for i, part := range payload.Parts {
		served := make([]uint, len(part.Questions))
		for j, q := range part.Questions {
			served[j] = q.ID
		}
		if !equalIDs(questionRepo.persisted[i], served) {
			t.Errorf("part %d persisted order %v, want served order %v",
				part.PartNumber, questionRepo.persisted[i], served)
		}
	}
}

func TestPreviewExamNeverPersists(t *testing.T) {
	_, _, questionRepo, svc := newAssemblyFixture(t)

	if _, err := svc.PreviewExam(1, true); err != nil {
		t.Fatalf("PreviewExam() error = %v", err)
	}
	if len(questionRepo.persisted) != 0 {
		t.Errorf("preview persisted %d orders, want none", len(questionRepo.persisted))
	}
}

func TestAssembleExamNotFound(t *testing.T) {
	_, _, _, svc := newAssemblyFixture(t)

	_, err := svc.AssembleExam(999, false)
	if !apperror.IsNotFound(err) {
		t.Errorf("AssembleExam(999) error = %v, want not found", err)
	}
}

func TestAssembleExamWithoutQuestionsIsNotFound(t *testing.T) {
	examRepo := &fakeExamRepo{exams: map[uint]*model.Exam{
		2: {ID: 2, Title: "Empty", Parts: []model.ExamPart{{ID: 60, ExamID: 2, PartNumber: 1}}},
	}}
	svc := NewExamAssemblyService(examRepo, &fakePartRepo{}, &fakeQuestionRepo{}, DefaultPartQuestionLimits, rand.New(rand.NewSource(1)))

	_, err := svc.AssembleExam(2, false)
	if !apperror.IsNotFound(err) {
		t.Errorf("AssembleExam(empty exam) error = %v, want not found", err)
	}
}

func TestAssembleExamPart(t *testing.T) {
	_, _, _, svc := newAssemblyFixture(t)

	payload, err := svc.AssembleExamPart(1, 5)
	if err != nil {
		t.Fatalf("AssembleExamPart() error = %v", err)
	}
	if payload.CurrentPage != 5 {
		t.Errorf("CurrentPage = %d, want 5", payload.CurrentPage)
	}
	if payload.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", payload.TotalPages)
	}
	if len(payload.Parts) != 1 || payload.Parts[0].PartNumber != 5 {
		t.Fatalf("Parts = %+v, want exactly part 5", payload.Parts)
	}
}

func TestAssembleExamPartErrors(t *testing.T) {
	_, _, _, svc := newAssemblyFixture(t)

	tests := []struct {
		name      string
		examID    uint
		page      int
		wantCheck func(error) bool
		wantLabel string
	}{
		{"page below one is invalid", 1, 0, apperror.IsInvalid, "invalid"},
		{"part number with no part", 1, 9, apperror.IsNotFound, "not found"},
		{"unknown exam", 999, 1, apperror.IsNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AssembleExamPart(tt.examID, tt.page)
			if !tt.wantCheck(err) {
				t.Errorf("AssembleExamPart(%d, %d) error = %v, want %s", tt.examID, tt.page, err, tt.wantLabel)
			}
		})
	}
}
