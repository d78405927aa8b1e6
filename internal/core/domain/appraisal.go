package domain

import "time"

// QuestionKind is the answer format of a survey question.
type QuestionKind string

const (
	QuestionRating QuestionKind = "RATING" // answered 1-5
	QuestionText   QuestionKind = "TEXT"
)

// Survey is a performance-appraisal questionnaire for a review period.
type Survey struct {
	SurveyID    string           `json:"surveyID"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	PeriodStart time.Time        `json:"periodStart"`
	PeriodEnd   time.Time        `json:"periodEnd"`
	IsActive    bool             `json:"isActive"`
	Questions   []SurveyQuestion `json:"questions,omitempty"`
	AuditFields
}

// SurveyQuestion is a single question within a survey.
type SurveyQuestion struct {
	QuestionID string       `json:"questionID"`
	SurveyID   string       `json:"surveyID"`
	Text       string       `json:"text"`
	Kind       QuestionKind `json:"kind"`
	Position   int          `json:"position"`
}

// SurveyAssignment links a survey to an employee who must complete it.
type SurveyAssignment struct {
	AssignmentID string     `json:"assignmentID"`
	SurveyID     string     `json:"surveyID"`
	EmployeeID   string     `json:"employeeID"`
	AssignedAt   time.Time  `json:"assignedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// SurveyAnswer is one answer within a submitted response.
type SurveyAnswer struct {
	QuestionID string `json:"questionID"`
	Rating     *int   `json:"rating,omitempty"` // 1-5 for RATING questions
	Text       string `json:"text,omitempty"`
}

// SurveyResponse is an employee's completed answer set for an assignment.
type SurveyResponse struct {
	ResponseID   string         `json:"responseID"`
	AssignmentID string         `json:"assignmentID"`
	SurveyID     string         `json:"surveyID"`
	EmployeeID   string         `json:"employeeID"`
	SubmittedAt  time.Time      `json:"submittedAt"`
	Answers      []SurveyAnswer `json:"answers"`
}
