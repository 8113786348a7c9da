package docstore

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

func ptr(s string) *string { return &s }

func fullSnapshot() domain.VocabularySnapshot {
	updated := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	return domain.VocabularySnapshot{
		VocabularyBase: domain.VocabularyBase{
			ID: "en-laufen-de", Word: "laufen", Translation: "to run",
			SourceLanguage: "en", TargetLanguage: "de",
		},
		PartOfSpeech:             domain.PartOfSpeechVerb,
		Description:              ptr("move at a speed faster than a walk"),
		Pronunciation:            ptr("ˈlaʊ̯fn̩"),
		PronunciationAudioURL:    ptr("https://audio.example.org/laufen.mp3"),
		ExampleSentenceSrc:       ptr("I run every day."),
		ExampleSentenceTarget:    ptr("Ich laufe jeden Tag."),
		ExampleSentenceTense:     ptr("Präsens"),
		ExampleSentenceTargetURL: ptr("https://example.org/s/1"),
		UpdatedAt:                &updated,
		Version:                  "1.0",
		RelatedForms: []domain.VocabularyBase{
			{ID: "en-laufen-de-pres-ich", Word: "laufe", Translation: "run", SourceLanguage: "en", TargetLanguage: "de"},
		},
		IdiomaticUsages: []domain.IdiomaticUsage{{Phrase: "wie am Schnürchen laufen", Translation: "to run like clockwork"}},
		Verb: &domain.VerbDetails{
			IsBaseForm: true,
			Infinitiv:  "laufen",
			Conjugations: domain.Conjugations{
				"Präsens": {
					"ich":       {Form: "laufe", VocObjRef: "en-laufen-de-pres-ich"},
					"er/sie/es": {Form: "läuft"},
				},
			},
		},
	}
}

func TestFillAndValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	v, err := domain.NewVocabularyFrom(fullSnapshot())
	require.NoError(t, err)

	e, err := FillAndValidate(v)
	require.NoError(t, err)
	assert.Equal(t, "en-de-vocabulary", e.PartitionKey)

	back, err := ToDomain(e)
	require.NoError(t, err)
	assert.True(t, v.Equal(back), "storage round trip must preserve every field")
	assert.False(t, back.HasUnsavedChanges())
}

func TestEntity_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	snap := fullSnapshot()
	e := FromSnapshot(snap)
	ttl := 3600
	e.RowID = "4b1e0e36-5f55-4d0c-9d0f-0b3b6a1f3e11"
	e.TTL = &ttl

	raw, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"partitionKey":"en-de-vocabulary"`)
	assert.Contains(t, string(raw), `"partOfSpeech":"Verb"`)

	var decoded Entity
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, e.RowID, decoded.RowID)
	require.NotNil(t, decoded.TTL)
	assert.Equal(t, 3600, *decoded.TTL)
	assert.True(t, snap.Equal(decoded.Snapshot()))
}

func TestFillAndValidate_AggregatesViolations(t *testing.T) {
	t.Parallel()

	v := domain.NewVocabulary(domain.VocabularyBase{
		ID:             "en-x-de",
		Word:           "",
		Translation:    strings.Repeat("a", 600),
		SourceLanguage: "en",
		TargetLanguage: "de",
	}, domain.PartOfSpeechNotSet)

	_, err := FillAndValidate(v)

	require.ErrorIs(t, err, domain.ErrValidation)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 2)
	assert.Equal(t, domain.FieldError{Field: "word", Message: "required"}, ve.Errors[0])
	assert.Equal(t, domain.FieldError{Field: "translation", Message: "too long (max 500)"}, ve.Errors[1])
}

func TestEntity_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *Entity { return FromSnapshot(fullSnapshot()) }

	tests := []struct {
		name   string
		mutate func(e *Entity)
		fields []string
	}{
		{name: "valid", mutate: func(*Entity) {}},
		{
			name:   "description too long",
			mutate: func(e *Entity) { e.Description = ptr(strings.Repeat("d", 1001)) },
			fields: []string{"description"},
		},
		{
			name:   "example sentences too long",
			mutate: func(e *Entity) { e.ExampleSentenceSrc = ptr(strings.Repeat("s", 2001)); e.ExampleSentenceTense = ptr(strings.Repeat("t", 101)) },
			fields: []string{"exampleSentenceSrc", "exampleSentenceTense"},
		},
		{
			name:   "pronunciation too long",
			mutate: func(e *Entity) { e.Pronunciation = ptr(strings.Repeat("p", 501)) },
			fields: []string{"pronunciation"},
		},
		{
			name:   "version missing",
			mutate: func(e *Entity) { e.Version = "" },
			fields: []string{"version"},
		},
		{
			name:   "version too long",
			mutate: func(e *Entity) { e.Version = strings.Repeat("9", 51) },
			fields: []string{"version"},
		},
		{
			name:   "audio url invalid",
			mutate: func(e *Entity) { e.PronunciationAudioURL = ptr("not a url") },
			fields: []string{"pronunciationAudioUrl"},
		},
		{
			name:   "unknown part of speech",
			mutate: func(e *Entity) { e.PartOfSpeech = "Gerund" },
			fields: []string{"partOfSpeech"},
		},
		{
			name: "verb lengths",
			mutate: func(e *Entity) {
				e.Verb = &Verb{Infinitiv: strings.Repeat("i", 101), Person: strings.Repeat("p", 51), Tense: strings.Repeat("t", 51)}
			},
			fields: []string{"verb.person", "verb.infinitiv", "verb.tense"},
		},
		{
			name: "conjugation form missing",
			mutate: func(e *Entity) {
				e.Verb.Conjugations["Präsens"]["du"] = Conjugation{}
			},
			fields: []string{"verb.conjugations[Präsens][du].form"},
		},
		{
			name: "conjugations on a conjugated form",
			mutate: func(e *Entity) {
				e.Verb.IsBaseForm = false
			},
			fields: []string{"verb.conjugations"},
		},
		{
			name: "noun rules",
			mutate: func(e *Entity) {
				e.Verb = nil
				e.PartOfSpeech = domain.PartOfSpeechNoun
				e.Noun = &Noun{Genus: "Common", UndeterminedArticle: strings.Repeat("e", 101)}
			},
			fields: []string{"noun.determinedArticle", "noun.genus", "noun.undeterminedArticle"},
		},
		{
			name: "idiomatic usage incomplete",
			mutate: func(e *Entity) {
				e.IdiomaticUsages = append(e.IdiomaticUsages, IdiomaticUsage{Phrase: "x"})
			},
			fields: []string{"idiomaticUsages[1].translation"},
		},
		{
			name: "noun and verb together",
			mutate: func(e *Entity) {
				e.Noun = &Noun{DeterminedArticle: "das"}
			},
			fields: []string{"verb"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := valid()
			tt.mutate(e)
			err := e.Validate()

			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			var got []string
			for _, fe := range ve.Errors {
				got = append(got, fe.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestToDomain_RejectsContradictoryDocument(t *testing.T) {
	t.Parallel()

	e := FromSnapshot(fullSnapshot())
	e.PartOfSpeech = domain.PartOfSpeechAdjective

	_, err := ToDomain(e)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
