package domain

import "testing"

func TestPartOfSpeech_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  PartOfSpeech
		want bool
	}{
		{PartOfSpeechNotSet, true},
		{PartOfSpeechNoun, true},
		{PartOfSpeechVerb, true},
		{PartOfSpeechPhrase, true},
		{PartOfSpeech("noun"), false},
		{PartOfSpeech(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			t.Parallel()
			if got := tt.pos.IsValid(); got != tt.want {
				t.Errorf("PartOfSpeech(%q).IsValid() = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestPartOfSpeech_IsSet(t *testing.T) {
	t.Parallel()

	if PartOfSpeechNotSet.IsSet() || PartOfSpeech("").IsSet() {
		t.Error("NotSet and empty must not count as set")
	}
	if !PartOfSpeechAdjective.IsSet() {
		t.Error("Adjective should count as set")
	}
}

func TestParsePartOfSpeech(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    PartOfSpeech
		wantErr bool
	}{
		{in: "Noun", want: PartOfSpeechNoun},
		{in: "verb", want: PartOfSpeechVerb},
		{in: " ADVERB ", want: PartOfSpeechAdverb},
		{in: "", want: PartOfSpeechNotSet},
		{in: "NotSet", want: PartOfSpeechNotSet},
		{in: "gerund", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePartOfSpeech(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePartOfSpeech(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePartOfSpeech(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseGenus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Genus
		wantErr bool
	}{
		{in: "Masculine", want: GenusMasculine},
		{in: "feminine", want: GenusFeminine},
		{in: "NEUTER", want: GenusNeuter},
		{in: "", want: GenusNotSet},
		{in: "common", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseGenus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGenus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseGenus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
