package dto

// AssembledQuestion is the question view handed to a test taker. Option
// fields keep stable names regardless of how the columns are called, and the
// correct answer is never included.
type AssembledQuestion struct {
	ID            uint    `json:"id"`
	QuestionText  string  `json:"question_text"`
	OptionA       string  `json:"optionA"`
	OptionB       string  `json:"optionB"`
	OptionC       string  `json:"optionC"`
	OptionD       *string `json:"optionD,omitempty"`
	ImageFilename *string `json:"image_filename,omitempty"`
}

// AssembledPart is one section of an assembled exam. OriginalQuestionIDs
// lists every question of the part before the per-part cap was applied, for
// audit and debugging.
type AssembledPart struct {
	PartID              uint                `json:"part_id"`
	PartNumber          int                 `json:"part_number"`
	Questions           []AssembledQuestion `json:"questions"`
	OriginalQuestionIDs []uint              `json:"original_question_ids,omitempty"`
}

// ExamPayload is the full assembled exam.
type ExamPayload struct {
	ExamID   uint            `json:"exam_id"`
	Audio    *string         `json:"audio,omitempty"`
	Title    string          `json:"title"`
	Duration int             `json:"duration"`
	Parts    []AssembledPart `json:"parts"`
}

// ExamPartPayload is the paginated assembly variant: a single part selected
// by its part number, plus paging metadata.
type ExamPartPayload struct {
	ExamID      uint            `json:"exam_id"`
	Audio       *string         `json:"audio,omitempty"`
	Title       string          `json:"title"`
	Duration    int             `json:"duration"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
	Parts       []AssembledPart `json:"parts"`
}
