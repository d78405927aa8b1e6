package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAppraisalRepository struct {
	db *pgxpool.Pool
}

func newPgxAppraisalRepository(db *pgxpool.Pool) portsrepo.AppraisalRepository {
	return &PgxAppraisalRepository{db: db}
}

var _ portsrepo.AppraisalRepository = (*PgxAppraisalRepository)(nil)

// SaveSurvey stores the survey with its questions in one transaction.
func (r *PgxAppraisalRepository) SaveSurvey(ctx context.Context, survey domain.Survey) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	surveyQuery := `
		INSERT INTO performance_surveys (survey_id, title, description, period_start, period_end, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, surveyQuery,
		survey.SurveyID,
		survey.Title,
		survey.Description,
		survey.PeriodStart,
		survey.PeriodEnd,
		survey.IsActive,
		survey.CreatedAt,
		survey.CreatedBy,
		survey.LastUpdatedAt,
		survey.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save survey: %w", err)
	}

	if err := insertQuestions(ctx, tx, survey.Questions); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit survey %s: %w", survey.SurveyID, err)
	}
	return nil
}

func insertQuestions(ctx context.Context, tx pgx.Tx, questions []domain.SurveyQuestion) error {
	for _, q := range questions {
		_, err := tx.Exec(ctx,
			`INSERT INTO survey_questions (question_id, survey_id, text, kind, position) VALUES ($1, $2, $3, $4, $5);`,
			q.QuestionID, q.SurveyID, q.Text, q.Kind, q.Position,
		)
		if err != nil {
			return fmt.Errorf("failed to save survey question: %w", err)
		}
	}
	return nil
}

func (r *PgxAppraisalRepository) FindSurveyByID(ctx context.Context, surveyID string) (*domain.Survey, error) {
	query := `
		SELECT survey_id, title, description, period_start, period_end, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM performance_surveys
		WHERE survey_id = $1;
	`
	var s domain.Survey
	err := r.db.QueryRow(ctx, query, surveyID).Scan(
		&s.SurveyID,
		&s.Title,
		&s.Description,
		&s.PeriodStart,
		&s.PeriodEnd,
		&s.IsActive,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find survey by ID %s: %w", surveyID, err)
	}

	questions, err := r.findQuestions(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	s.Questions = questions
	return &s, nil
}

func (r *PgxAppraisalRepository) findQuestions(ctx context.Context, surveyID string) ([]domain.SurveyQuestion, error) {
	rows, err := r.db.Query(ctx,
		`SELECT question_id, survey_id, text, kind, position FROM survey_questions WHERE survey_id = $1 ORDER BY position;`,
		surveyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey questions: %w", err)
	}
	defer rows.Close()

	questions := make([]domain.SurveyQuestion, 0)
	for rows.Next() {
		var q domain.SurveyQuestion
		if err := rows.Scan(&q.QuestionID, &q.SurveyID, &q.Text, &q.Kind, &q.Position); err != nil {
			return nil, fmt.Errorf("failed to scan survey question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating survey question rows: %w", err)
	}
	return questions, nil
}

// FindSurveys returns surveys without their question lists; FindSurveyByID
// loads the full survey.
func (r *PgxAppraisalRepository) FindSurveys(ctx context.Context, activeOnly bool) ([]domain.Survey, error) {
	query := `
		SELECT survey_id, title, description, period_start, period_end, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM performance_surveys
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY period_start DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query surveys: %w", err)
	}
	defer rows.Close()

	surveys := make([]domain.Survey, 0)
	for rows.Next() {
		var s domain.Survey
		if err := rows.Scan(
			&s.SurveyID,
			&s.Title,
			&s.Description,
			&s.PeriodStart,
			&s.PeriodEnd,
			&s.IsActive,
			&s.CreatedAt,
			&s.CreatedBy,
			&s.LastUpdatedAt,
			&s.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan survey row: %w", err)
		}
		surveys = append(surveys, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating survey rows: %w", err)
	}
	return surveys, nil
}

// UpdateSurvey rewrites the survey row and replaces its question list.
func (r *PgxAppraisalRepository) UpdateSurvey(ctx context.Context, survey domain.Survey) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE performance_surveys
		SET title = $2, description = $3, period_start = $4, period_end = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE survey_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		survey.SurveyID,
		survey.Title,
		survey.Description,
		survey.PeriodStart,
		survey.PeriodEnd,
		survey.IsActive,
		survey.LastUpdatedAt,
		survey.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update survey %s: %w", survey.SurveyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM survey_questions WHERE survey_id = $1;`, survey.SurveyID); err != nil {
		return fmt.Errorf("failed to clear survey questions: %w", err)
	}
	if err := insertQuestions(ctx, tx, survey.Questions); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit survey update %s: %w", survey.SurveyID, err)
	}
	return nil
}

func (r *PgxAppraisalRepository) DeleteSurvey(ctx context.Context, surveyID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM performance_surveys WHERE survey_id = $1;`, surveyID)
	if err != nil {
		return fmt.Errorf("failed to delete survey %s: %w", surveyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAppraisalRepository) SaveAssignments(ctx context.Context, assignments []domain.SurveyAssignment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx,
			`INSERT INTO survey_assignments (assignment_id, survey_id, employee_id, assigned_at) VALUES ($1, $2, $3, $4);`,
			a.AssignmentID, a.SurveyID, a.EmployeeID, a.AssignedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: employee already assigned to survey", apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to save survey assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit survey assignments: %w", err)
	}
	return nil
}

func (r *PgxAppraisalRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.SurveyAssignment, error) {
	query := `
		SELECT assignment_id, survey_id, employee_id, assigned_at, completed_at
		FROM survey_assignments
		WHERE assignment_id = $1;
	`
	var a domain.SurveyAssignment
	err := r.db.QueryRow(ctx, query, assignmentID).Scan(
		&a.AssignmentID,
		&a.SurveyID,
		&a.EmployeeID,
		&a.AssignedAt,
		&a.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find assignment by ID %s: %w", assignmentID, err)
	}
	return &a, nil
}

func (r *PgxAppraisalRepository) FindAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.SurveyAssignment, error) {
	return r.findAssignments(ctx, `employee_id`, employeeID)
}

func (r *PgxAppraisalRepository) FindAssignmentsBySurvey(ctx context.Context, surveyID string) ([]domain.SurveyAssignment, error) {
	return r.findAssignments(ctx, `survey_id`, surveyID)
}

func (r *PgxAppraisalRepository) findAssignments(ctx context.Context, column, value string) ([]domain.SurveyAssignment, error) {
	query := `
		SELECT assignment_id, survey_id, employee_id, assigned_at, completed_at
		FROM survey_assignments
		WHERE ` + column + ` = $1
		ORDER BY assigned_at DESC;
	`
	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]domain.SurveyAssignment, 0)
	for rows.Next() {
		var a domain.SurveyAssignment
		if err := rows.Scan(&a.AssignmentID, &a.SurveyID, &a.EmployeeID, &a.AssignedAt, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan survey assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating survey assignment rows: %w", err)
	}
	return assignments, nil
}

// SaveResponse stores the response with its answers and marks the assignment
// completed in the same transaction.
func (r *PgxAppraisalRepository) SaveResponse(ctx context.Context, response domain.SurveyResponse) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	responseQuery := `
		INSERT INTO survey_responses (response_id, assignment_id, survey_id, employee_id, submitted_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, responseQuery,
		response.ResponseID,
		response.AssignmentID,
		response.SurveyID,
		response.EmployeeID,
		response.SubmittedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a response already exists for this assignment", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save survey response: %w", err)
	}

	for _, answer := range response.Answers {
		_, err := tx.Exec(ctx,
			`INSERT INTO survey_answers (response_id, question_id, rating, text) VALUES ($1, $2, $3, $4);`,
			response.ResponseID, answer.QuestionID, answer.Rating, answer.Text,
		)
		if err != nil {
			return fmt.Errorf("failed to save survey answer: %w", err)
		}
	}

	completeQuery := `UPDATE survey_assignments SET completed_at = $2 WHERE assignment_id = $1 AND completed_at IS NULL;`
	tag, err := tx.Exec(ctx, completeQuery, response.AssignmentID, response.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to mark assignment completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: assignment already completed", apperrors.ErrDuplicate)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit survey response %s: %w", response.ResponseID, err)
	}
	return nil
}

func (r *PgxAppraisalRepository) FindResponsesBySurvey(ctx context.Context, surveyID string) ([]domain.SurveyResponse, error) {
	query := `
		SELECT response_id, assignment_id, survey_id, employee_id, submitted_at
		FROM survey_responses
		WHERE survey_id = $1
		ORDER BY submitted_at;
	`
	rows, err := r.db.Query(ctx, query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey responses: %w", err)
	}
	defer rows.Close()

	responses := make([]domain.SurveyResponse, 0)
	for rows.Next() {
		var resp domain.SurveyResponse
		if err := rows.Scan(&resp.ResponseID, &resp.AssignmentID, &resp.SurveyID, &resp.EmployeeID, &resp.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan survey response row: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating survey response rows: %w", err)
	}

	for i := range responses {
		answers, err := r.findAnswers(ctx, responses[i].ResponseID)
		if err != nil {
			return nil, err
		}
		responses[i].Answers = answers
	}
	return responses, nil
}

func (r *PgxAppraisalRepository) findAnswers(ctx context.Context, responseID string) ([]domain.SurveyAnswer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT question_id, rating, text FROM survey_answers WHERE response_id = $1;`,
		responseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey answers: %w", err)
	}
	defer rows.Close()

	answers := make([]domain.SurveyAnswer, 0)
	for rows.Next() {
		var a domain.SurveyAnswer
		if err := rows.Scan(&a.QuestionID, &a.Rating, &a.Text); err != nil {
			return nil, fmt.Errorf("failed to scan survey answer row: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating survey answer rows: %w", err)
	}
	return answers, nil
}
