package dto

// CreateExamRequest is used for both creating and updating an exam.
type CreateExamRequest struct {
	Title          string  `json:"title" binding:"required"`
	Duration       int     `json:"duration" binding:"required,gt=0"`
	TotalQuestions int     `json:"total_questions"`
	Audio          *string `json:"audio"`
}

// CreateExamPartRequest is used for both creating and updating an exam part.
type CreateExamPartRequest struct {
	ExamID         uint   `json:"exam_id" binding:"required"`
	PartNumber     int    `json:"part_number" binding:"required,min=1,max=7"`
	Description    string `json:"description"`
	TotalQuestions int    `json:"total_questions" binding:"required,gt=0"`
}

// CreateQuestionRequest is used for both creating and updating a question.
type CreateQuestionRequest struct {
	PartID        uint    `json:"part_id" binding:"required"`
	QuestionText  string  `json:"question_text" binding:"required"`
	OptionA       string  `json:"option_a" binding:"required"`
	OptionB       string  `json:"option_b" binding:"required"`
	OptionC       string  `json:"option_c" binding:"required"`
	OptionD       *string `json:"option_d"`
	CorrectAnswer string  `json:"correct_answer" binding:"required,oneof=A B C D"`
	ImageFilename *string `json:"image_filename"`
	DisplayOrder  *int    `json:"display_order"`
}

// UpdateQuestionImageRequest sets the image reference of a question.
type UpdateQuestionImageRequest struct {
	ImageFilename string `json:"image_filename" binding:"required"`
}

// SubmittedAnswer is one (question, choice) pair of a submission. A nil
// SelectedAnswer means the question was left unanswered.
type SubmittedAnswer struct {
	QuestionID     uint    `json:"question_id" binding:"required"`
	SelectedAnswer *string `json:"selected_answer" binding:"omitempty,oneof=A B C D"`
}

// SubmitExamRequest is the body of a full exam submission. The user comes
// from the authenticated token, not the body.
type SubmitExamRequest struct {
	ExamID        uint              `json:"exam_id" binding:"required"`
	Answers       []SubmittedAnswer `json:"answers" binding:"required,min=1,dive"`
	CompletedTime int               `json:"completed_time" binding:"min=0"`
}

// CreateExamResultRequest is the admin-side create/update of a result row.
type CreateExamResultRequest struct {
	UserID              uint   `json:"user_id" binding:"required"`
	ExamID              uint   `json:"exam_id" binding:"required"`
	Score               int    `json:"score" binding:"min=0,max=990"`
	ListeningScore      int    `json:"listening_score" binding:"min=0"`
	ReadingScore        int    `json:"reading_score" binding:"min=0"`
	CorrectAnswers      int    `json:"correct_answers" binding:"min=0"`
	WrongAnswers        int    `json:"wrong_answers" binding:"min=0"`
	UnansweredQuestions int    `json:"unanswered_questions" binding:"min=0"`
	TotalQuestions      int    `json:"total_questions" binding:"min=0"`
	CompletedTime       int    `json:"completed_time" binding:"min=0"`
	Status              string `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED CANCELLED"`
}
