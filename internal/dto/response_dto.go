package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type ExamResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Duration       int       `json:"duration"`
	TotalQuestions int       `json:"total_questions"`
	Audio          *string   `json:"audio,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ExamPartResponse struct {
	ID             uint      `json:"id"`
	ExamID         uint      `json:"exam_id"`
	PartNumber     int       `json:"part_number"`
	Description    string    `json:"description,omitempty"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

type QuestionResponse struct {
	ID            uint      `json:"id"`
	PartID        uint      `json:"part_id"`
	ExamID        uint      `json:"exam_id"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       *string   `json:"option_d,omitempty"`
	CorrectAnswer string    `json:"correct_answer"`
	ImageFilename *string   `json:"image_filename,omitempty"`
	DisplayOrder  *int      `json:"display_order,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type DetailResponse struct {
	ID             uint    `json:"id"`
	QuestionID     uint    `json:"question_id"`
	SelectedAnswer *string `json:"selected_answer,omitempty"`
	CorrectAnswer  string  `json:"correct_answer"`
	Score          int     `json:"score"`
}

type ExamResultResponse struct {
	ID                  uint             `json:"id"`
	UserID              uint             `json:"user_id"`
	ExamID              uint             `json:"exam_id"`
	Score               int              `json:"score"`
	ListeningScore      int              `json:"listening_score"`
	ReadingScore        int              `json:"reading_score"`
	CorrectAnswers      int              `json:"correct_answers"`
	WrongAnswers        int              `json:"wrong_answers"`
	UnansweredQuestions int              `json:"unanswered_questions"`
	TotalQuestions      int              `json:"total_questions"`
	CompletedTime       int              `json:"completed_time"`
	Status              string           `json:"status"`
	CompletedAt         *time.Time       `json:"completed_at,omitempty"`
	Details             []DetailResponse `json:"details,omitempty"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmissionSummary is returned after grading a submission.
type SubmissionSummary struct {
	Message             string    `json:"message"`
	CorrectAnswers      int       `json:"correct_answers"`
	WrongAnswers        int       `json:"wrong_answers"`
	UnansweredQuestions int       `json:"unanswered_questions"`
	SkippedQuestions    int       `json:"skipped_questions,omitempty"`
	TotalScore          int       `json:"total_score"`
	ListeningScore      int       `json:"listening_score"`
	ReadingScore        int       `json:"reading_score"`
	CompletedTime       int       `json:"completed_time"`
	CompletedAt         time.Time `json:"completed_at"`
}

// DailyAttemptCount is one row of the monthly attempts report.
type DailyAttemptCount struct {
	Date     string `json:"date"`
	Attempts int64  `json:"attempts"`
}

// AverageScoreResponse reports the mean score over a trailing window. A nil
// AverageScore means no completed attempt fell inside the window.
type AverageScoreResponse struct {
	AverageScore *float64 `json:"average_score"`
	Days         int      `json:"days"`
}
