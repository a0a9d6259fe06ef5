package service

import (
	"time"

	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/repository"
	"github.com/rs/zerolog/log"
)

const averageScoreWindowDays = 7

// StatisticsService exposes the read-only attempt aggregates. Both queries
// only consider COMPLETED attempts and have no side effects.
type StatisticsService interface {
	DailyAttemptsThisMonth() ([]dto.DailyAttemptCount, error)
	AverageScoreLast7Days() (*dto.AverageScoreResponse, error)
}

type statisticsService struct {
	resultRepo repository.ExamResultRepository
	now        func() time.Time
}

func NewStatisticsService(resultRepo repository.ExamResultRepository) StatisticsService {
	return &statisticsService{resultRepo: resultRepo, now: time.Now}
}

func (s *statisticsService) DailyAttemptsThisMonth() ([]dto.DailyAttemptCount, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	rows, err := s.resultRepo.CountDailyAttempts(monthStart, nextMonth)
	if err != nil {
		log.Error().Err(err).Msg("DailyAttemptsThisMonth: aggregate query failed")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to count daily attempts")
	}

	counts := make([]dto.DailyAttemptCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, dto.DailyAttemptCount{
			Date:     row.Date.Format("2006-01-02"),
			Attempts: row.Attempts,
		})
	}
	return counts, nil
}

func (s *statisticsService) AverageScoreLast7Days() (*dto.AverageScoreResponse, error) {
	since := s.now().AddDate(0, 0, -averageScoreWindowDays)

	avg, err := s.resultRepo.AverageScoreSince(since)
	if err != nil {
		log.Error().Err(err).Msg("AverageScoreLast7Days: aggregate query failed")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to compute average score")
	}

	return &dto.AverageScoreResponse{AverageScore: avg, Days: averageScoreWindowDays}, nil
}
