package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camilogonzalez/resumeia/internal/types"
)

const profileColumns = `id, user_id, complete_name, job_title, contact_phone, contact_email,
	city_location, linkedin_profile, display_linkedin, job_history, academic_history,
	technical_skills, template, created_at, updated_at`

// CreateProfile inserts a new career profile owned by userID.
func (db *DB) CreateProfile(ctx context.Context, userID uuid.UUID, req *types.CreateProfileRequest) (*types.Profile, error) {
	displayLinkedin := true
	if req.DisplayLinkedin != nil {
		displayLinkedin = *req.DisplayLinkedin
	}
	template := req.Template
	if template == "" {
		template = "modern"
	}

	profile := &types.Profile{}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, complete_name, job_title, contact_phone, contact_email,
			city_location, linkedin_profile, display_linkedin, job_history, academic_history,
			technical_skills, template)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+profileColumns,
		userID, req.CompleteName, req.JobTitle, req.ContactPhone, req.ContactEmail,
		req.CityLocation, req.LinkedinProfile, displayLinkedin, req.JobHistory,
		req.AcademicHistory, req.TechnicalSkills, template,
	).Scan(scanProfileFields(profile)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// GetProfile returns a profile by ID, scoped to its owner. Returns nil when
// the profile does not exist or belongs to another user.
func (db *DB) GetProfile(ctx context.Context, id, userID uuid.UUID) (*types.Profile, error) {
	profile := &types.Profile{}
	err := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(scanProfileFields(profile)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// ListProfiles returns all profiles owned by userID, newest first.
func (db *DB) ListProfiles(ctx context.Context, userID uuid.UUID) ([]types.Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []types.Profile{}
	for rows.Next() {
		var profile types.Profile
		if err := rows.Scan(scanProfileFields(&profile)...); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	return profiles, nil
}

// UpdateProfile replaces a profile's fields, scoped to its owner. Returns nil
// when the profile does not exist or belongs to another user.
func (db *DB) UpdateProfile(ctx context.Context, id, userID uuid.UUID, req *types.CreateProfileRequest) (*types.Profile, error) {
	displayLinkedin := true
	if req.DisplayLinkedin != nil {
		displayLinkedin = *req.DisplayLinkedin
	}
	template := req.Template
	if template == "" {
		template = "modern"
	}

	profile := &types.Profile{}
	err := db.pool.QueryRow(ctx,
		`UPDATE profiles SET complete_name = $3, job_title = $4, contact_phone = $5,
			contact_email = $6, city_location = $7, linkedin_profile = $8,
			display_linkedin = $9, job_history = $10, academic_history = $11,
			technical_skills = $12, template = $13, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+profileColumns,
		id, userID, req.CompleteName, req.JobTitle, req.ContactPhone, req.ContactEmail,
		req.CityLocation, req.LinkedinProfile, displayLinkedin, req.JobHistory,
		req.AcademicHistory, req.TechnicalSkills, template,
	).Scan(scanProfileFields(profile)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// DeleteProfile removes a profile and its generated CVs, scoped to its
// owner. Returns false when nothing was deleted.
func (db *DB) DeleteProfile(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM profiles WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// scanProfileFields returns scan destinations in profileColumns order.
func scanProfileFields(p *types.Profile) []any {
	return []any{
		&p.ID, &p.UserID, &p.CompleteName, &p.JobTitle, &p.ContactPhone, &p.ContactEmail,
		&p.CityLocation, &p.LinkedinProfile, &p.DisplayLinkedin, &p.JobHistory,
		&p.AcademicHistory, &p.TechnicalSkills, &p.Template, &p.CreatedAt, &p.UpdatedAt,
	}
}
