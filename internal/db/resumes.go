package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

const resumeColumns = `id, title, template, settings, personal_info, career_objective,
	education, skills, projects, experience, certifications, languages,
	achievements, interests, ai_feedback, created_at, updated_at`

func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	err := row.Scan(
		&r.ID, &r.Title, &r.Template, &r.Settings, &r.PersonalInfo, &r.CareerObjective,
		&r.Education, &r.Skills, &r.Projects, &r.Experience, &r.Certifications, &r.Languages,
		&r.Achievements, &r.Interests, &r.AIFeedback, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateResume stores a new resume document and returns the stored record
func (db *DB) CreateResume(ctx context.Context, d types.ResumeData) (*Resume, error) {
	rec := FromResumeData(uuid.New(), d.Normalize())

	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (id, title, template, settings, personal_info, career_objective,
			education, skills, projects, experience, certifications, languages,
			achievements, interests, ai_feedback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING `+resumeColumns,
		rec.ID, rec.Title, rec.Template, rec.Settings, rec.PersonalInfo, rec.CareerObjective,
		rec.Education, rec.Skills, rec.Projects, rec.Experience, rec.Certifications, rec.Languages,
		rec.Achievements, rec.Interests, rec.AIFeedback,
	)
	created, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return created, nil
}

// GetResume retrieves a resume by ID, returning nil when it does not exist
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	r, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return r, nil
}

// SaveResume replaces the stored document with the given snapshot
func (db *DB) SaveResume(ctx context.Context, id uuid.UUID, d types.ResumeData) error {
	rec := FromResumeData(id, d)

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET title = $2, template = $3, settings = $4, personal_info = $5,
			career_objective = $6, education = $7, skills = $8, projects = $9,
			experience = $10, certifications = $11, languages = $12,
			achievements = $13, interests = $14, ai_feedback = $15, updated_at = NOW()
		 WHERE id = $1`,
		rec.ID, rec.Title, rec.Template, rec.Settings, rec.PersonalInfo, rec.CareerObjective,
		rec.Education, rec.Skills, rec.Projects, rec.Experience, rec.Certifications, rec.Languages,
		rec.Achievements, rec.Interests, rec.AIFeedback,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %s not found", id)
	}
	return nil
}

// ListResumes returns summaries of all stored resumes, most recently
// updated first
func (db *DB) ListResumes(ctx context.Context) ([]ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, template, updated_at FROM resumes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	summaries := []ResumeSummary{}
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Template, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resume summaries: %w", err)
	}
	return summaries, nil
}

// DeleteResume removes a stored resume
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %s not found", id)
	}
	return nil
}
