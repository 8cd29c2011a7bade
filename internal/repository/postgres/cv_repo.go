package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cvcraft-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cvRepo struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.RemoteStore {
	return &cvRepo{db: db}
}

const headerColumns = `id, title, user_id, created_at, updated_at`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanHeader(row pgx.Row) (*domain.DocumentHeader, error) {
	var h domain.DocumentHeader
	if err := row.Scan(&h.ID, &h.Title, &h.UserID, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// latestByOwner orders by last modification so the pick is stable when a
// user ends up owning several headers.
func latestByOwner(ctx context.Context, q rowQuerier, userID string) (*domain.DocumentHeader, error) {
	query := `SELECT ` + headerColumns + ` FROM cvs
              WHERE user_id = $1
              ORDER BY updated_at DESC, id
              LIMIT 1`
	return scanHeader(q.QueryRow(ctx, query, userID))
}

func (r *cvRepo) LatestByOwner(ctx context.Context, userID string) (*domain.DocumentHeader, error) {
	h, err := latestByOwner(ctx, r.db, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("query cv headers: %w", err)
	}
	return h, err
}

func (r *cvRepo) GetData(ctx context.Context, documentID string) (*domain.DocumentData, error) {
	query := `SELECT cv_id, personal_info, experience, education, skills, languages, interests, courses, customization
              FROM cv_data WHERE cv_id = $1`

	var (
		data     domain.DocumentData
		personal []byte
		sections [6][]byte
		custom   []byte
	)
	err := r.db.QueryRow(ctx, query, documentID).Scan(
		&data.DocumentID, &personal,
		&sections[0], &sections[1], &sections[2], &sections[3], &sections[4], &sections[5],
		&custom,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query cv data: %w", err)
	}

	doc := domain.NewCVDocument()
	fields := []struct {
		raw  []byte
		dest any
	}{
		{personal, &doc.PersonalInfo},
		{sections[0], &doc.Experience},
		{sections[1], &doc.Education},
		{sections[2], &doc.Skills},
		{sections[3], &doc.Languages},
		{sections[4], &doc.Interests},
		{sections[5], &doc.Courses},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dest); err != nil {
			return nil, fmt.Errorf("decode cv data %s: %w", documentID, err)
		}
	}
	doc.Normalize()
	data.Document = doc

	if len(custom) > 0 && string(custom) != "{}" && string(custom) != "null" {
		var c domain.Customization
		if err := json.Unmarshal(custom, &c); err != nil {
			return nil, fmt.Errorf("decode customization %s: %w", documentID, err)
		}
		data.Customization = &c
	}
	return &data, nil
}

// Create serializes concurrent first sign-ins of the same user with an
// advisory lock, so exactly one header and one data record get created.
func (r *cvRepo) Create(ctx context.Context, userID, title string) (*domain.DocumentHeader, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID); err != nil {
		return nil, fmt.Errorf("lock owner: %w", err)
	}

	existing, err := latestByOwner(ctx, tx, userID)
	if err == nil {
		return existing, tx.Commit(ctx)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("query cv headers: %w", err)
	}

	now := time.Now().UTC()
	header := &domain.DocumentHeader{
		ID:        uuid.NewString(),
		Title:     title,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO cvs (id, title, user_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		header.ID, header.Title, header.UserID, header.CreatedAt, header.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert cv header: %w", err)
	}
	if err := insertEmptyData(ctx, tx, header.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit cv creation: %w", err)
	}
	return header, nil
}

func insertEmptyData(ctx context.Context, tx pgx.Tx, documentID string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO cv_data (cv_id) VALUES ($1) ON CONFLICT (cv_id) DO NOTHING`,
		documentID,
	)
	if err != nil {
		return fmt.Errorf("insert cv data: %w", err)
	}
	return nil
}

func (r *cvRepo) CreateData(ctx context.Context, documentID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO cv_data (cv_id) VALUES ($1) ON CONFLICT (cv_id) DO NOTHING`,
		documentID,
	)
	if err != nil {
		return fmt.Errorf("insert cv data: %w", err)
	}
	return nil
}

// UpdateData overwrites every section of the data record. JSON is sent as
// text and cast server side, which works under the simple protocol.
func (r *cvRepo) UpdateData(ctx context.Context, documentID string, doc *domain.CVDocument, custom domain.Customization) error {
	if doc == nil {
		doc = domain.NewCVDocument()
	}
	values := []any{
		doc.PersonalInfo, doc.Experience, doc.Education, doc.Skills,
		doc.Languages, doc.Interests, doc.Courses, custom,
	}
	args := make([]any, 0, len(values)+1)
	args = append(args, documentID)
	for _, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode cv data: %w", err)
		}
		args = append(args, string(raw))
	}

	query := `UPDATE cv_data SET
                  personal_info = $2::jsonb,
                  experience = $3::jsonb,
                  education = $4::jsonb,
                  skills = $5::jsonb,
                  languages = $6::jsonb,
                  interests = $7::jsonb,
                  courses = $8::jsonb,
                  customization = $9::jsonb,
                  updated_at = NOW()
              WHERE cv_id = $1`
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update cv data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cvRepo) Touch(ctx context.Context, documentID string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE cvs SET updated_at = $2 WHERE id = $1`, documentID, at.UTC())
	if err != nil {
		return fmt.Errorf("touch cv header: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
