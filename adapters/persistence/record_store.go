package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

// Collection names mirror the key paths under users/{uid}.
const (
	CollectionEducation   = "education"
	CollectionExperiences = "experiences"
	CollectionProjects    = "projects"
	CollectionSkills      = "skill_categories"
	CollectionSocialLinks = "social_links"
	CollectionContactInfo = "contact_info"
)

type Record struct {
	ID   string
	Data json.RawMessage
}

// RecordStore is the path-addressed document store backing every content
// collection: one jsonb document per (owner, collection, record id).
type RecordStore struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewRecordStore(db *pgxpool.Pool, log logger.Logger) *RecordStore {
	return &RecordStore{db: db, logger: log}
}

var psqlRecords = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// List returns every record in a collection ordered by insertion. An
// absent path yields an empty slice, never an error.
func (s *RecordStore) List(ctx context.Context, ownerID uuid.UUID, collection string) ([]Record, error) {
	builder := psqlRecords.Select("record_id, data").
		From("records").
		Where(sq.Eq{"owner_id": ownerID, "collection": collection}).
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list records query", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query records", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Data); err != nil {
			return nil, apperror.NewInternal("failed to scan record row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating record rows", err)
	}
	return records, nil
}

func (s *RecordStore) Get(ctx context.Context, ownerID uuid.UUID, collection, recordID string) (*Record, error) {
	query := `
		SELECT record_id, data
		FROM records
		WHERE owner_id = $1 AND collection = $2 AND record_id = $3
	`
	rec := &Record{}
	err := s.db.QueryRow(ctx, query, ownerID, collection, recordID).Scan(&rec.ID, &rec.Data)
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NewNotFound(collection, recordID)
		}
		return nil, apperror.NewInternal("failed to query record", err)
	}
	return rec, nil
}

// Push inserts a document under a freshly generated opaque key and
// returns the key.
func (s *RecordStore) Push(ctx context.Context, ownerID uuid.UUID, collection string, doc any) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", apperror.NewInternal("failed to marshal record", err)
	}

	recordID := uuid.NewString()
	query := `
		INSERT INTO records (owner_id, collection, record_id, data)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.Exec(ctx, query, ownerID, collection, recordID, data); err != nil {
		return "", apperror.NewInternal("failed to insert record", err)
	}
	return recordID, nil
}

// Put replaces the document at an existing key.
func (s *RecordStore) Put(ctx context.Context, ownerID uuid.UUID, collection, recordID string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return apperror.NewInternal("failed to marshal record", err)
	}

	query := `
		UPDATE records SET data = $4, updated_at = NOW()
		WHERE owner_id = $1 AND collection = $2 AND record_id = $3
	`
	cmdTag, err := s.db.Exec(ctx, query, ownerID, collection, recordID, data)
	if err != nil {
		return apperror.NewInternal("failed to update record", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(collection, recordID)
	}
	return nil
}

// Patch shallow-merges the given fields into the document at the
// addressed key; sibling fields are untouched.
func (s *RecordStore) Patch(ctx context.Context, ownerID uuid.UUID, collection, recordID string, partial any) error {
	data, err := json.Marshal(partial)
	if err != nil {
		return apperror.NewInternal("failed to marshal record patch", err)
	}

	query := `
		UPDATE records SET data = data || $4::jsonb, updated_at = NOW()
		WHERE owner_id = $1 AND collection = $2 AND record_id = $3
	`
	cmdTag, err := s.db.Exec(ctx, query, ownerID, collection, recordID, data)
	if err != nil {
		return apperror.NewInternal("failed to patch record", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(collection, recordID)
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func (s *RecordStore) Delete(ctx context.Context, ownerID uuid.UUID, collection, recordID string) error {
	query := `DELETE FROM records WHERE owner_id = $1 AND collection = $2 AND record_id = $3`
	cmdTag, err := s.db.Exec(ctx, query, ownerID, collection, recordID)
	if err != nil {
		return apperror.NewInternal("failed to delete record", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(collection, recordID)
	}
	return nil
}
