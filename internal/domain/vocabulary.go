package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Saver persists a vocabulary aggregate and returns its stored form.
type Saver interface {
	Save(ctx context.Context, v *Vocabulary) (*Vocabulary, error)
}

// Option configures a Vocabulary at construction time.
type Option func(*Vocabulary)

// WithSaver injects the collaborator used by Save.
func WithSaver(s Saver) Option {
	return func(v *Vocabulary) { v.saver = s }
}

// WithClock overrides the time source used to stamp UpdatedAt on Save.
func WithClock(now func() time.Time) Option {
	return func(v *Vocabulary) { v.now = now }
}

// Vocabulary is the aggregate root of a vocabulary item. It keeps the
// part-of-speech/detail invariant, records which fields changed since the
// last save and orchestrates persistence through a Saver.
//
// A Vocabulary is not safe for concurrent mutation.
type Vocabulary struct {
	data    VocabularySnapshot
	changes changeSet
	saver   Saver
	now     func() time.Time
}

// NewVocabulary creates a fresh aggregate with no unsaved changes.
func NewVocabulary(base VocabularyBase, pos PartOfSpeech, opts ...Option) *Vocabulary {
	if pos == "" {
		pos = PartOfSpeechNotSet
	}
	v := &Vocabulary{
		data: VocabularySnapshot{
			VocabularyBase: base,
			PartOfSpeech:   pos,
			Version:        DefaultVersion,
		},
	}
	v.apply(opts)
	return v
}

// NewVocabularyFrom copy-constructs an aggregate from a snapshot produced by a
// DTO, a storage entity or another aggregate. Every field is reproduced; an
// empty version falls back to DefaultVersion and an empty part of speech to
// NotSet. Details that contradict the part of speech yield ErrInvalidState.
func NewVocabularyFrom(s VocabularySnapshot, opts ...Option) (*Vocabulary, error) {
	data := s.Clone()
	data.Noun, data.Verb = nil, nil
	if data.PartOfSpeech == "" {
		data.PartOfSpeech = PartOfSpeechNotSet
	}
	if data.Version == "" {
		data.Version = DefaultVersion
	}

	v := &Vocabulary{data: data}
	v.apply(opts)

	if s.Noun != nil && s.Verb != nil {
		return nil, InvalidStateError("an item cannot carry both noun and verb details")
	}
	if s.Noun != nil {
		if err := v.SetNoun(*s.Noun); err != nil {
			return nil, err
		}
	}
	if s.Verb != nil {
		if err := v.SetVerb(*s.Verb); err != nil {
			return nil, err
		}
	}
	v.changes.clear()

	return v, nil
}

func (v *Vocabulary) apply(opts []Option) {
	for _, opt := range opts {
		opt(v)
	}
	if v.now == nil {
		v.now = time.Now
	}
}

// ---------------------------------------------------------------------------
// Read access
// ---------------------------------------------------------------------------

// Snapshot returns a deep copy of the aggregate's fields.
func (v *Vocabulary) Snapshot() VocabularySnapshot { return v.data.Clone() }

func (v *Vocabulary) ID() string { return v.data.ID }
func (v *Vocabulary) Base() VocabularyBase { return v.data.VocabularyBase }
func (v *Vocabulary) PartOfSpeech() PartOfSpeech { return v.data.PartOfSpeech }
func (v *Vocabulary) Version() string { return v.data.Version }
func (v *Vocabulary) PartitionKey() string {
	return PartitionKey(v.data.SourceLanguage, v.data.TargetLanguage)
}

// UpdatedAt returns the time of the last save, or the zero time if never saved.
func (v *Vocabulary) UpdatedAt() time.Time {
	if v.data.UpdatedAt == nil {
		return time.Time{}
	}
	return *v.data.UpdatedAt
}

// Noun returns a copy of the noun details, if any.
func (v *Vocabulary) Noun() (NounDetails, bool) {
	if v.data.Noun == nil {
		return NounDetails{}, false
	}
	return *v.data.Noun, true
}

// Verb returns a copy of the verb details, if any.
func (v *Vocabulary) Verb() (VerbDetails, bool) {
	if v.data.Verb == nil {
		return VerbDetails{}, false
	}
	return v.data.Verb.Clone(), true
}

// Equal reports structural equality of the two aggregates' fields.
func (v *Vocabulary) Equal(o *Vocabulary) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.data.Equal(o.data)
}

// ---------------------------------------------------------------------------
// Change tracking
// ---------------------------------------------------------------------------

// HasUnsavedChanges reports whether any field changed since construction or
// the last successful save.
func (v *Vocabulary) HasUnsavedChanges() bool { return !v.changes.empty() }

// ChangedFields lists the dirty fields, lowest bit first.
func (v *Vocabulary) ChangedFields() []Field { return v.changes.fields() }

// IsChanged reports whether any of the fields in mask is dirty.
func (v *Vocabulary) IsChanged(mask Field) bool { return v.changes.has(mask) }

// MarkDirty flags fields as changed without modifying them.
func (v *Vocabulary) MarkDirty(fields ...Field) {
	for _, f := range fields {
		v.changes.mark(f)
	}
}

// MarkClean discards the change record.
func (v *Vocabulary) MarkClean() { v.changes.clear() }

// ---------------------------------------------------------------------------
// Setters
// ---------------------------------------------------------------------------

func (v *Vocabulary) SetID(id string) {
	v.data.ID = id
	v.changes.mark(FieldID)
}

func (v *Vocabulary) SetWord(word string) {
	v.data.Word = word
	v.changes.mark(FieldWord)
}

func (v *Vocabulary) SetTranslation(translation string) {
	v.data.Translation = translation
	v.changes.mark(FieldTranslation)
}

func (v *Vocabulary) SetSourceLanguage(lang string) {
	v.data.SourceLanguage = lang
	v.changes.mark(FieldSourceLanguage)
}

func (v *Vocabulary) SetTargetLanguage(lang string) {
	v.data.TargetLanguage = lang
	v.changes.mark(FieldTargetLanguage)
}

// SetPartOfSpeech changes the category. It fails with ErrInvalidState when
// the item already carries details of another category.
func (v *Vocabulary) SetPartOfSpeech(pos PartOfSpeech) error {
	if pos == "" {
		pos = PartOfSpeechNotSet
	}
	if v.data.Noun != nil && pos != PartOfSpeechNoun {
		return InvalidStateError(fmt.Sprintf("cannot change part of speech to %s: item has noun details", pos))
	}
	if v.data.Verb != nil && pos != PartOfSpeechVerb {
		return InvalidStateError(fmt.Sprintf("cannot change part of speech to %s: item has verb details", pos))
	}
	v.data.PartOfSpeech = pos
	v.changes.mark(FieldPartOfSpeech)
	return nil
}

func (v *Vocabulary) SetDescription(s *string) {
	v.data.Description = cloneString(s)
	v.changes.mark(FieldDescription)
}

func (v *Vocabulary) SetPronunciation(s *string) {
	v.data.Pronunciation = cloneString(s)
	v.changes.mark(FieldPronunciation)
}

func (v *Vocabulary) SetPronunciationAudioURL(s *string) {
	v.data.PronunciationAudioURL = cloneString(s)
	v.changes.mark(FieldPronunciationAudioURL)
}

func (v *Vocabulary) SetExampleSentenceSrc(s *string) {
	v.data.ExampleSentenceSrc = cloneString(s)
	v.changes.mark(FieldExampleSentenceSrc)
}

func (v *Vocabulary) SetExampleSentenceTarget(s *string) {
	v.data.ExampleSentenceTarget = cloneString(s)
	v.changes.mark(FieldExampleSentenceTarget)
}

func (v *Vocabulary) SetExampleSentenceTense(s *string) {
	v.data.ExampleSentenceTense = cloneString(s)
	v.changes.mark(FieldExampleSentenceTense)
}

func (v *Vocabulary) SetExampleSentenceTargetURL(s *string) {
	v.data.ExampleSentenceTargetURL = cloneString(s)
	v.changes.mark(FieldExampleSentenceTargetURL)
}

func (v *Vocabulary) SetVersion(version string) {
	v.data.Version = version
	v.changes.mark(FieldVersion)
}

// SetRelatedForms replaces the related forms with copies of forms.
func (v *Vocabulary) SetRelatedForms(forms []VocabularyBase) {
	v.data.RelatedForms = slices.Clone(forms)
	v.changes.mark(FieldRelatedForms)
}

func (v *Vocabulary) AddRelatedForm(form VocabularyBase) {
	v.data.RelatedForms = append(v.data.RelatedForms, form)
	v.changes.mark(FieldRelatedForms)
}

// SetIdiomaticUsages replaces the idiomatic usages with copies of usages.
func (v *Vocabulary) SetIdiomaticUsages(usages []IdiomaticUsage) {
	v.data.IdiomaticUsages = slices.Clone(usages)
	v.changes.mark(FieldIdiomaticUsages)
}

func (v *Vocabulary) AddIdiomaticUsage(u IdiomaticUsage) {
	v.data.IdiomaticUsages = append(v.data.IdiomaticUsages, u)
	v.changes.mark(FieldIdiomaticUsages)
}

// SetNoun attaches a copy of the noun details. A NotSet item becomes a Noun;
// an item committed to another part of speech yields ErrInvalidState. An
// empty genus is stored as GenusNotSet.
func (v *Vocabulary) SetNoun(n NounDetails) error {
	switch {
	case !v.data.PartOfSpeech.IsSet():
		v.data.PartOfSpeech = PartOfSpeechNoun
		v.changes.mark(FieldPartOfSpeech)
	case v.data.PartOfSpeech != PartOfSpeechNoun:
		return InvalidStateError("cannot set noun details for a non-noun item")
	}
	n = n.normalized()
	v.data.Noun = &n
	v.changes.mark(FieldNoun)
	return nil
}

// SetVerb attaches a deep copy of the verb details. A NotSet item becomes a
// Verb; an item committed to another part of speech yields ErrInvalidState.
func (v *Vocabulary) SetVerb(d VerbDetails) error {
	switch {
	case !v.data.PartOfSpeech.IsSet():
		v.data.PartOfSpeech = PartOfSpeechVerb
		v.changes.mark(FieldPartOfSpeech)
	case v.data.PartOfSpeech != PartOfSpeechVerb:
		return InvalidStateError("cannot set verb details for a non-verb item")
	}
	cp := d.Clone()
	v.data.Verb = &cp
	v.changes.mark(FieldVerb)
	return nil
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

// DeriveID computes the canonical id from the current fields.
func (v *Vocabulary) DeriveID() string { return DeriveID(v.data) }

// Save persists the aggregate through its Saver and returns the stored form.
//
// Without unsaved changes it returns the receiver and performs no write. An
// empty id is derived before delegating. UpdatedAt is stamped with the current
// UTC time. If the Saver fails the change record is restored.
func (v *Vocabulary) Save(ctx context.Context) (*Vocabulary, error) {
	if v.changes.empty() {
		return v, nil
	}
	if v.saver == nil {
		return nil, ErrNotConfigured
	}

	pending := v.changes
	if strings.TrimSpace(v.data.ID) == "" {
		if err := v.checkDerivable(); err != nil {
			return nil, err
		}
		v.data.ID = DeriveID(v.data)
		pending.mark(FieldID)
	}

	now := v.now().UTC().Truncate(time.Microsecond)
	v.data.UpdatedAt = &now
	pending.mark(FieldUpdatedAt)
	v.changes.clear()

	saved, err := v.saver.Save(ctx, v)
	if err != nil {
		v.changes = pending
		return nil, fmt.Errorf("save vocabulary %s: %w", v.data.ID, err)
	}
	return saved, nil
}

func (v *Vocabulary) checkDerivable() error {
	var missing []string
	if strings.TrimSpace(v.data.SourceLanguage) == "" {
		missing = append(missing, "sourceLanguage")
	}
	if strings.TrimSpace(v.data.TargetLanguage) == "" {
		missing = append(missing, "targetLanguage")
	}
	conjugated := v.data.PartOfSpeech == PartOfSpeechVerb && v.data.Verb != nil && v.data.Verb.IsConjugatedForm()
	if !conjugated && NormalizeIDSegment(v.data.Word) == "" {
		missing = append(missing, "word")
	}
	if len(missing) > 0 {
		return InvalidStateError("cannot derive id without " + strings.Join(missing, ", "))
	}
	return nil
}
