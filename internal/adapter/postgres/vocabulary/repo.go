// Package vocabulary stores vocabulary documents as JSONB in PostgreSQL.
// Every save also appends the document to the revision log in the same
// transaction.
package vocabulary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-catalog/internal/adapter/docstore"
	"github.com/heartmarshall/vocab-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

const (
	documentsTable = "vocabulary_documents"
	revisionsTable = "vocabulary_revisions"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides vocabulary document persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	tx  txRunner
	ttl time.Duration
	now func() time.Time
}

// Option configures a Repo.
type Option func(*Repo)

// WithTTL makes every saved document expire ttl after its save. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(r *Repo) { r.ttl = ttl }
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(r *Repo) { r.now = now }
}

// New creates a new vocabulary repository.
func New(db postgres.Querier, tx txRunner, opts ...Option) *Repo {
	r := &Repo{db: db, tx: tx, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// documentRow is the scan target for document queries.
type documentRow struct {
	RowID    string `db:"row_id"`
	Document []byte `db:"document"`
}

// Save validates the aggregate, upserts its document and records a revision.
// It returns the aggregate rehydrated from the stored document.
func (r *Repo) Save(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
	e, err := docstore.FillAndValidate(v)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC()
	updatedAt := now
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}
	var expiresAt *time.Time
	if r.ttl > 0 {
		secs := int(r.ttl / time.Second)
		e.TTL = &secs
		exp := updatedAt.Add(r.ttl)
		expiresAt = &exp
	}

	doc, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal vocabulary %s: %w", e.ID, err)
	}

	upsert, args, err := psql.Insert(documentsTable).
		Columns("row_id", "partition_key", "id", "document", "ttl_seconds", "expires_at", "updated_at").
		Values(uuid.NewString(), e.PartitionKey, e.ID, doc, e.TTL, expiresAt, updatedAt).
		Suffix(`ON CONFLICT (partition_key, id) DO UPDATE SET
			document = EXCLUDED.document,
			ttl_seconds = EXCLUDED.ttl_seconds,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
		RETURNING row_id, document`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert: %w", err)
	}

	revision, revArgs, err := psql.Insert(revisionsTable).
		Columns("id", "partition_key", "vocabulary_id", "document", "created_at").
		Values(uuid.NewString(), e.PartitionKey, e.ID, doc, now).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build revision insert: %w", err)
	}

	var row documentRow
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)
		if err := pgxscan.Get(ctx, q, &row, upsert, args...); err != nil {
			return err
		}
		_, err := q.Exec(ctx, revision, revArgs...)
		return err
	})
	if err != nil {
		return nil, postgres.MapError(err, "save vocabulary", e.ID)
	}

	return decode(row, e.ID)
}

// GetByID returns the stored vocabulary item. Missing and expired documents
// yield domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, source, target, id string) (*domain.Vocabulary, error) {
	query, args, err := psql.Select("row_id", "document").
		From(documentsTable).
		Where(sq.Eq{"partition_key": domain.PartitionKey(source, target)}).
		Where(sq.Eq{"id": id}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": r.now().UTC()}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row documentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("get vocabulary %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "get vocabulary", id)
	}

	return decode(row, id)
}

// DeleteExpired removes every document that expired at or before cutoff and
// returns how many were removed.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := psql.Delete(documentsTable).
		Where(sq.LtOrEq{"expires_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "delete expired vocabulary", "")
	}
	return tag.RowsAffected(), nil
}

func decode(row documentRow, id string) (*domain.Vocabulary, error) {
	var e docstore.Entity
	if err := json.Unmarshal(row.Document, &e); err != nil {
		return nil, domain.NewStorageError("decode vocabulary", id, err)
	}
	e.RowID = row.RowID

	v, err := docstore.ToDomain(&e)
	if err != nil {
		return nil, fmt.Errorf("rehydrate vocabulary %s: %w", id, err)
	}
	return v, nil
}
