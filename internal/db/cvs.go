package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camilogonzalez/resumeia/internal/types"
)

// SaveGeneratedCV stores a generated CV and returns it with its assigned ID.
func (db *DB) SaveGeneratedCV(ctx context.Context, cv *types.GeneratedCV) (*types.GeneratedCV, error) {
	contentJSON, err := json.Marshal(cv.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CV content: %w", err)
	}

	saved := *cv
	err = db.pool.QueryRow(ctx,
		`INSERT INTO generated_cvs (profile_id, position_title, organization_name, job_url,
			position_details, content)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		cv.ProfileID, cv.PositionTitle, cv.OrganizationName, cv.JobURL,
		cv.PositionDetails, contentJSON,
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save generated CV: %w", err)
	}
	return &saved, nil
}

// GetGeneratedCV returns a generated CV by ID, scoped to the owner of its
// profile. Returns nil when not found.
func (db *DB) GetGeneratedCV(ctx context.Context, id, userID uuid.UUID) (*types.GeneratedCV, error) {
	cv := &types.GeneratedCV{}
	var contentJSON []byte
	var shareToken *uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT c.id, c.profile_id, c.position_title, c.organization_name, c.job_url,
			c.position_details, c.content, c.share_token, c.created_at
		 FROM generated_cvs c
		 JOIN profiles p ON p.id = c.profile_id
		 WHERE c.id = $1 AND p.user_id = $2`,
		id, userID,
	).Scan(&cv.ID, &cv.ProfileID, &cv.PositionTitle, &cv.OrganizationName, &cv.JobURL,
		&cv.PositionDetails, &contentJSON, &shareToken, &cv.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get generated CV: %w", err)
	}

	if err := json.Unmarshal(contentJSON, &cv.Content); err != nil {
		return nil, fmt.Errorf("failed to decode CV content: %w", err)
	}
	if shareToken != nil {
		cv.ShareToken = shareToken.String()
	}
	return cv, nil
}

// ListGeneratedCVs returns the generation history for a profile, newest
// first, scoped to the profile owner.
func (db *DB) ListGeneratedCVs(ctx context.Context, profileID, userID uuid.UUID, limit int) ([]types.GeneratedCV, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT c.id, c.profile_id, c.position_title, c.organization_name, c.job_url,
			c.position_details, c.content, c.share_token, c.created_at
		 FROM generated_cvs c
		 JOIN profiles p ON p.id = c.profile_id
		 WHERE c.profile_id = $1 AND p.user_id = $2
		 ORDER BY c.created_at DESC
		 LIMIT $3`,
		profileID, userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated CVs: %w", err)
	}
	defer rows.Close()

	return scanGeneratedCVs(rows)
}

func scanGeneratedCVs(rows pgx.Rows) ([]types.GeneratedCV, error) {
	cvs := []types.GeneratedCV{}
	for rows.Next() {
		var cv types.GeneratedCV
		var contentJSON []byte
		var shareToken *uuid.UUID
		if err := rows.Scan(&cv.ID, &cv.ProfileID, &cv.PositionTitle, &cv.OrganizationName,
			&cv.JobURL, &cv.PositionDetails, &contentJSON, &shareToken, &cv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generated CV: %w", err)
		}
		if err := json.Unmarshal(contentJSON, &cv.Content); err != nil {
			return nil, fmt.Errorf("failed to decode CV content: %w", err)
		}
		if shareToken != nil {
			cv.ShareToken = shareToken.String()
		}
		cvs = append(cvs, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read generated CVs: %w", err)
	}
	return cvs, nil
}

// ListUserGeneratedCVs returns the generation history across all of a user's
// profiles, newest first.
func (db *DB) ListUserGeneratedCVs(ctx context.Context, userID uuid.UUID, limit int) ([]types.GeneratedCV, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT c.id, c.profile_id, c.position_title, c.organization_name, c.job_url,
			c.position_details, c.content, c.share_token, c.created_at
		 FROM generated_cvs c
		 JOIN profiles p ON p.id = c.profile_id
		 WHERE p.user_id = $1
		 ORDER BY c.created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated CVs: %w", err)
	}
	defer rows.Close()

	return scanGeneratedCVs(rows)
}

// EnsureShareToken assigns a share token to a CV if it does not already have
// one, scoped to the profile owner. Returns the token, or uuid.Nil when the
// CV was not found.
func (db *DB) EnsureShareToken(ctx context.Context, cvID, userID uuid.UUID) (uuid.UUID, error) {
	token := uuid.New()
	var assigned uuid.UUID
	err := db.pool.QueryRow(ctx,
		`UPDATE generated_cvs c SET share_token = COALESCE(c.share_token, $3)
		 FROM profiles p
		 WHERE c.id = $1 AND p.id = c.profile_id AND p.user_id = $2
		 RETURNING c.share_token`,
		cvID, userID, token,
	).Scan(&assigned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return uuid.Nil, nil
		}
		return uuid.Nil, fmt.Errorf("failed to assign share token: %w", err)
	}
	return assigned, nil
}

// RevokeShareToken clears a CV's share token, scoped to the profile owner.
// Returns false when the CV was not found.
func (db *DB) RevokeShareToken(ctx context.Context, cvID, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE generated_cvs c SET share_token = NULL
		 FROM profiles p
		 WHERE c.id = $1 AND p.id = c.profile_id AND p.user_id = $2`,
		cvID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to revoke share token: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetCVByShareToken returns a generated CV by its public share token. The
// lookup is unauthenticated; only token holders reach it.
func (db *DB) GetCVByShareToken(ctx context.Context, token uuid.UUID) (*types.GeneratedCV, error) {
	cv := &types.GeneratedCV{}
	var contentJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile_id, position_title, organization_name, job_url,
			position_details, content, created_at
		 FROM generated_cvs WHERE share_token = $1`,
		token,
	).Scan(&cv.ID, &cv.ProfileID, &cv.PositionTitle, &cv.OrganizationName, &cv.JobURL,
		&cv.PositionDetails, &contentJSON, &cv.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shared CV: %w", err)
	}

	if err := json.Unmarshal(contentJSON, &cv.Content); err != nil {
		return nil, fmt.Errorf("failed to decode CV content: %w", err)
	}
	cv.ShareToken = token.String()
	return cv, nil
}
