package domain

import (
	"catboard/internal/validation"
)

// RawCat is the loosely-typed breed record as assembled from TheCatAPI,
// before normalization. Numeric trait fields default to zero when the
// upstream omits them, which NewCat clamps to the trait's range minimum.
type RawCat struct {
	ID          string
	Name        string
	AltNames    string
	Temperament string
	Origin      string
	Description string
	LifeSpan    string

	Adaptability  float64
	Affection     float64
	Intelligence  float64
	ChildFriendly float64
	DogFriendly   float64
	HealthIssues  float64
	Vocalisation  float64
	Energy        float64

	ShortLegs bool
	Hairless  bool

	// Image is nil when the breed has no reference image or its
	// metadata fetch failed.
	Image *RawImage
}

// RawImage is the resolved image metadata for a breed.
type RawImage struct {
	URL    string
	Width  float64
	Height float64
}

// Traits are the eight behavioral scores of a breed. All are clamped
// into 1-5 except HealthIssues, which ranges 0-5.
type Traits struct {
	Adaptability  int `json:"adaptability"`
	Affection     int `json:"affection"`
	Intelligence  int `json:"intelligence"`
	ChildFriendly int `json:"child_friendly"`
	DogFriendly   int `json:"dog_friendly"`
	HealthIssues  int `json:"health_issues"`
	Vocalisation  int `json:"vocalisation"`
	Energy        int `json:"energy"`
}

// Physical are the two boolean physical flags of a breed.
type Physical struct {
	ShortLegs bool `json:"short_legs"`
	Hairless  bool `json:"hairless"`
}

// Image describes a breed picture.
type Image struct {
	URL    string   `json:"url"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// Cat is a normalized breed record. It is constructed once per API
// response item and not mutated afterwards; the list holding it lives
// for the page session only.
type Cat struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	AltNames    *string  `json:"alt_names"`
	Temperament string   `json:"temperament"`
	Origin      string   `json:"origin"`
	Description string   `json:"description"`
	LifeSpan    string   `json:"life_span"`
	Traits      Traits   `json:"traits"`
	Physical    Physical `json:"physical"`
	Image       *Image   `json:"image"`
}

// NewCat builds a Cat from a raw record by running every field through
// the validators. It never fails: invalid fields silently degrade to
// their defaults (empty text, clamped scores, nil markers), so callers
// cannot distinguish "absent" from "invalid" beyond those markers.
func NewCat(raw RawCat) *Cat {
	cat := &Cat{
		ID:          validation.String(raw.ID),
		Name:        validation.String(raw.Name),
		AltNames:    validation.NullableString(raw.AltNames),
		Temperament: validation.String(raw.Temperament),
		Origin:      validation.String(raw.Origin),
		Description: validation.String(raw.Description),
		LifeSpan:    validation.String(raw.LifeSpan),
		Traits: Traits{
			Adaptability:  validation.RangeInt(int(raw.Adaptability), 1, 5),
			Affection:     validation.RangeInt(int(raw.Affection), 1, 5),
			Intelligence:  validation.RangeInt(int(raw.Intelligence), 1, 5),
			ChildFriendly: validation.RangeInt(int(raw.ChildFriendly), 1, 5),
			DogFriendly:   validation.RangeInt(int(raw.DogFriendly), 1, 5),
			HealthIssues:  validation.RangeInt(int(raw.HealthIssues), 0, 5),
			Vocalisation:  validation.RangeInt(int(raw.Vocalisation), 1, 5),
			Energy:        validation.RangeInt(int(raw.Energy), 1, 5),
		},
		Physical: Physical{
			ShortLegs: raw.ShortLegs,
			Hairless:  raw.Hairless,
		},
	}

	if raw.Image != nil {
		if url := validation.NullableString(raw.Image.URL); url != nil {
			cat.Image = &Image{
				URL:    *url,
				Width:  validation.NullableNumber(raw.Image.Width),
				Height: validation.NullableNumber(raw.Image.Height),
			}
		}
	}

	return cat
}
