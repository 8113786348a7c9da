package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-catalog/internal/adapter/docstore"
	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedVocabulary inserts a valid noun document directly into
// vocabulary_documents, bypassing the repository. expiresAt may be nil.
func SeedVocabulary(t *testing.T, pool *pgxpool.Pool, expiresAt *time.Time) *docstore.Entity {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := docstore.FromSnapshot(domain.VocabularySnapshot{
		VocabularyBase: domain.VocabularyBase{
			ID:             "de-haus-" + suffix + "-en",
			Word:           "Haus " + suffix,
			Translation:    "house",
			SourceLanguage: "de",
			TargetLanguage: "en",
		},
		PartOfSpeech: domain.PartOfSpeechNoun,
		UpdatedAt:    &now,
		Version:      domain.DefaultVersion,
		Noun:         &domain.NounDetails{DeterminedArticle: "das", Genus: domain.GenusNeuter},
	})
	e.RowID = uuid.NewString()

	doc, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("SeedVocabulary: marshal: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO vocabulary_documents (row_id, partition_key, id, document, expires_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.RowID, e.PartitionKey, e.ID, doc, expiresAt, now,
	)
	if err != nil {
		t.Fatalf("SeedVocabulary: insert: %v", err)
	}

	return e
}
