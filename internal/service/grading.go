package service

import (
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/model"
)

// PointsPerCorrectAnswer is the flat value of every correct answer. Raw
// points are reported as-is; the official 10-990 scaled conversion is not
// applied.
const PointsPerCorrectAnswer = 5

// Parts 1-4 are the listening sections, 5-7 the reading sections.
const lastListeningPart = 4

type AnswerOutcome string

const (
	OutcomeCorrect    AnswerOutcome = "correct"
	OutcomeWrong      AnswerOutcome = "wrong"
	OutcomeUnanswered AnswerOutcome = "unanswered"
	// OutcomeSkippedMissingQuestion tags answers whose question id matches no
	// stored question. They count toward nothing.
	OutcomeSkippedMissingQuestion AnswerOutcome = "skipped_missing_question"
)

// GradedAnswer is the tagged outcome of a single submitted answer.
type GradedAnswer struct {
	QuestionID     uint
	SelectedAnswer *string
	CorrectAnswer  string
	PartNumber     int
	Outcome        AnswerOutcome
	Score          int
}

// GradingReport aggregates a graded submission. The unanswered count is a
// direct tally over submitted answers, not derived from the exam's
// total_questions.
type GradingReport struct {
	Answers        []GradedAnswer
	Correct        int
	Wrong          int
	Unanswered     int
	Skipped        int
	TotalScore     int
	ListeningScore int
	ReadingScore   int
}

// GradeSubmission scores answers against the stored questions. Correctness
// is exact value equality with the stored correct answer, no case folding.
// partNumbers maps part id to part number for the listening/reading split.
func GradeSubmission(questions map[uint]model.Question, partNumbers map[uint]int, answers []dto.SubmittedAnswer) GradingReport {
	report := GradingReport{Answers: make([]GradedAnswer, 0, len(answers))}

	for _, answer := range answers {
		question, exists := questions[answer.QuestionID]
		if !exists {
			report.Skipped++
			report.Answers = append(report.Answers, GradedAnswer{
				QuestionID:     answer.QuestionID,
				SelectedAnswer: answer.SelectedAnswer,
				Outcome:        OutcomeSkippedMissingQuestion,
			})
			continue
		}

		graded := GradedAnswer{
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
			CorrectAnswer:  question.CorrectAnswer,
			PartNumber:     partNumbers[question.PartID],
		}

		switch {
		case answer.SelectedAnswer == nil:
			graded.Outcome = OutcomeUnanswered
			report.Unanswered++
		case *answer.SelectedAnswer == question.CorrectAnswer:
			graded.Outcome = OutcomeCorrect
			graded.Score = PointsPerCorrectAnswer
			report.Correct++
			report.TotalScore += PointsPerCorrectAnswer
			if graded.PartNumber >= 1 && graded.PartNumber <= lastListeningPart {
				report.ListeningScore += PointsPerCorrectAnswer
			} else if graded.PartNumber > lastListeningPart {
				report.ReadingScore += PointsPerCorrectAnswer
			}
		default:
			graded.Outcome = OutcomeWrong
			report.Wrong++
		}

		report.Answers = append(report.Answers, graded)
	}

	return report
}
