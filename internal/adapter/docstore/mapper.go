package docstore

import "github.com/heartmarshall/vocab-catalog/internal/domain"

// FillAndValidate converts the aggregate into its storage form, computes the
// partition key and validates the result. Every violated constraint is
// reported in a single *domain.ValidationError.
func FillAndValidate(v *domain.Vocabulary) (*Entity, error) {
	e := FromSnapshot(v.Snapshot())
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// FromSnapshot maps a snapshot to an entity without validating it.
func FromSnapshot(s domain.VocabularySnapshot) *Entity {
	e := &Entity{
		PartitionKey:             domain.PartitionKey(s.SourceLanguage, s.TargetLanguage),
		ID:                       s.ID,
		Word:                     s.Word,
		Translation:              s.Translation,
		SourceLanguage:           s.SourceLanguage,
		TargetLanguage:           s.TargetLanguage,
		PartOfSpeech:             s.PartOfSpeech,
		Description:              s.Description,
		Pronunciation:            s.Pronunciation,
		PronunciationAudioURL:    s.PronunciationAudioURL,
		ExampleSentenceSrc:       s.ExampleSentenceSrc,
		ExampleSentenceTarget:    s.ExampleSentenceTarget,
		ExampleSentenceTense:     s.ExampleSentenceTense,
		ExampleSentenceTargetURL: s.ExampleSentenceTargetURL,
		UpdatedAt:                s.UpdatedAt,
		Version:                  s.Version,
	}

	for _, rf := range s.RelatedForms {
		e.RelatedForms = append(e.RelatedForms, RelatedForm(rf))
	}
	for _, iu := range s.IdiomaticUsages {
		e.IdiomaticUsages = append(e.IdiomaticUsages, IdiomaticUsage(iu))
	}
	if s.Noun != nil {
		e.Noun = &Noun{
			DeterminedArticle:   s.Noun.DeterminedArticle,
			Genus:               s.Noun.Genus,
			UndeterminedArticle: s.Noun.UndeterminedArticle,
		}
	}
	if s.Verb != nil {
		e.Verb = &Verb{
			IsBaseForm:  s.Verb.IsBaseForm,
			BaseFormRef: s.Verb.BaseFormRef,
			Person:      s.Verb.Person,
			Infinitiv:   s.Verb.Infinitiv,
			Tense:       s.Verb.Tense,
		}
		if s.Verb.Conjugations != nil {
			e.Verb.Conjugations = make(map[string]map[string]Conjugation, len(s.Verb.Conjugations))
			for tense, persons := range s.Verb.Conjugations {
				row := make(map[string]Conjugation, len(persons))
				for person, d := range persons {
					row[person] = Conjugation(d)
				}
				e.Verb.Conjugations[tense] = row
			}
		}
	}

	return e
}

// Snapshot maps the entity back to the canonical domain representation.
// Storage bookkeeping fields are dropped.
func (e *Entity) Snapshot() domain.VocabularySnapshot {
	s := domain.VocabularySnapshot{
		VocabularyBase: domain.VocabularyBase{
			ID:             e.ID,
			Word:           e.Word,
			Translation:    e.Translation,
			SourceLanguage: e.SourceLanguage,
			TargetLanguage: e.TargetLanguage,
		},
		PartOfSpeech:             e.PartOfSpeech,
		Description:              e.Description,
		Pronunciation:            e.Pronunciation,
		PronunciationAudioURL:    e.PronunciationAudioURL,
		ExampleSentenceSrc:       e.ExampleSentenceSrc,
		ExampleSentenceTarget:    e.ExampleSentenceTarget,
		ExampleSentenceTense:     e.ExampleSentenceTense,
		ExampleSentenceTargetURL: e.ExampleSentenceTargetURL,
		UpdatedAt:                e.UpdatedAt,
		Version:                  e.Version,
	}

	for _, rf := range e.RelatedForms {
		s.RelatedForms = append(s.RelatedForms, domain.VocabularyBase(rf))
	}
	for _, iu := range e.IdiomaticUsages {
		s.IdiomaticUsages = append(s.IdiomaticUsages, domain.IdiomaticUsage(iu))
	}
	if e.Noun != nil {
		s.Noun = &domain.NounDetails{
			DeterminedArticle:   e.Noun.DeterminedArticle,
			Genus:               e.Noun.Genus,
			UndeterminedArticle: e.Noun.UndeterminedArticle,
		}
	}
	if e.Verb != nil {
		d := verbDetails(e.Verb)
		s.Verb = &d
	}

	return s.Clone()
}

// ToDomain rehydrates an aggregate from a stored entity. The result has no
// unsaved changes.
func ToDomain(e *Entity, opts ...domain.Option) (*domain.Vocabulary, error) {
	return domain.NewVocabularyFrom(e.Snapshot(), opts...)
}

func verbDetails(v *Verb) domain.VerbDetails {
	d := domain.VerbDetails{
		IsBaseForm:  v.IsBaseForm,
		BaseFormRef: v.BaseFormRef,
		Person:      v.Person,
		Infinitiv:   v.Infinitiv,
		Tense:       v.Tense,
	}
	if v.Conjugations != nil {
		d.Conjugations = make(domain.Conjugations, len(v.Conjugations))
		for tense, persons := range v.Conjugations {
			row := make(map[string]domain.ConjugationDetails, len(persons))
			for person, c := range persons {
				row[person] = domain.ConjugationDetails(c)
			}
			d.Conjugations[tense] = row
		}
	}
	return d
}
