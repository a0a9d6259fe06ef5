package service

import (
	"time"

	"github.com/htloc/toeic-practice-api/internal/model"
	"github.com/htloc/toeic-practice-api/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests. Lookups miss with
// gorm.ErrRecordNotFound, matching what the real repositories return.

type fakeExamRepo struct {
	exams map[uint]*model.Exam
}

func (f *fakeExamRepo) Create(exam *model.Exam) error { return nil }

func (f *fakeExamRepo) FindByID(id uint) (*model.Exam, error) {
	exam, ok := f.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return exam, nil
}

func (f *fakeExamRepo) FindByIDWithPartsAndQuestions(id uint) (*model.Exam, error) {
	return f.FindByID(id)
}

func (f *fakeExamRepo) FindAll() ([]model.Exam, error) {
	all := make([]model.Exam, 0, len(f.exams))
	for _, exam := range f.exams {
		all = append(all, *exam)
	}
	return all, nil
}

func (f *fakeExamRepo) Update(exam *model.Exam) error { return nil }
func (f *fakeExamRepo) Delete(id uint) error          { return nil }

type fakePartRepo struct {
	parts []model.ExamPart
}

func (f *fakePartRepo) Create(part *model.ExamPart) error { return nil }

func (f *fakePartRepo) FindByID(id uint) (*model.ExamPart, error) {
	for i := range f.parts {
		if f.parts[i].ID == id {
			return &f.parts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePartRepo) FindAll() ([]model.ExamPart, error) { return f.parts, nil }

func (f *fakePartRepo) FindByExamID(examID uint) ([]model.ExamPart, error) {
	var matched []model.ExamPart
	for _, part := range f.parts {
		if part.ExamID == examID {
			matched = append(matched, part)
		}
	}
	return matched, nil
}

func (f *fakePartRepo) FindByExamAndPartNumber(examID uint, partNumber int) (*model.ExamPart, error) {
	for i := range f.parts {
		if f.parts[i].ExamID == examID && f.parts[i].PartNumber == partNumber {
			return &f.parts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePartRepo) CountByExamID(examID uint) (int64, error) {
	var count int64
	for _, part := range f.parts {
		if part.ExamID == examID {
			count++
		}
	}
	return count, nil
}

func (f *fakePartRepo) Update(part *model.ExamPart) error { return nil }
func (f *fakePartRepo) Delete(id uint) error              { return nil }

type fakeQuestionRepo struct {
	questions map[uint]model.Question
	// persisted records every PersistDisplayOrder call in order.
	persisted [][]uint
}

func (f *fakeQuestionRepo) Create(question *model.Question) error { return nil }

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (f *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	var found []model.Question
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			found = append(found, q)
		}
	}
	return found, nil
}

func (f *fakeQuestionRepo) FindAll() ([]model.Question, error) { return nil, nil }

func (f *fakeQuestionRepo) FindByPartID(partID uint) ([]model.Question, error) {
	var matched []model.Question
	for _, q := range f.questions {
		if q.PartID == partID {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (f *fakeQuestionRepo) Count() (int64, error) { return int64(len(f.questions)), nil }

func (f *fakeQuestionRepo) Update(question *model.Question) error { return nil }
func (f *fakeQuestionRepo) Delete(id uint) error                  { return nil }

func (f *fakeQuestionRepo) PersistDisplayOrder(questionIDs []uint) error {
	f.persisted = append(f.persisted, questionIDs)
	return nil
}

type fakeUserRepo struct {
	users map[uint]*model.User
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindAll() ([]model.User, error) { return nil, nil }

type fakeResultRepo struct {
	created   []*model.ExamResult
	daily     []repository.DailyAttemptRow
	dailyErr  error
	average   *float64
	sinceSeen time.Time
	untilSeen time.Time
}

func (f *fakeResultRepo) Create(result *model.ExamResult) error {
	result.ID = uint(len(f.created) + 1)
	f.created = append(f.created, result)
	return nil
}

func (f *fakeResultRepo) FindByID(id uint) (*model.ExamResult, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeResultRepo) FindByIDWithDetails(id uint) (*model.ExamResult, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeResultRepo) FindAll() ([]model.ExamResult, error)                 { return nil, nil }
func (f *fakeResultRepo) FindByUserID(userID uint) ([]model.ExamResult, error) { return nil, nil }
func (f *fakeResultRepo) Update(result *model.ExamResult) error                { return nil }
func (f *fakeResultRepo) Delete(id uint) error                                 { return nil }

func (f *fakeResultRepo) CountDailyAttempts(since, until time.Time) ([]repository.DailyAttemptRow, error) {
	f.sinceSeen = since
	f.untilSeen = until
	return f.daily, f.dailyErr
}

func (f *fakeResultRepo) AverageScoreSince(since time.Time) (*float64, error) {
	f.sinceSeen = since
	return f.average, nil
}
