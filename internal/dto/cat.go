package dto

import "catboard/internal/domain"

// PostResponse is one cat rendered as a post card: name, origin, a
// truncated excerpt of the description, and the image when present.
type PostResponse struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Origin  string        `json:"origin"`
	Excerpt string        `json:"excerpt"`
	Image   *domain.Image `json:"image"`
}

// PostsResponse is the posts view payload.
type PostsResponse struct {
	Posts []PostResponse `json:"posts"`
	Count int            `json:"count"`
}

// TraitEntry is one row of the detail view's trait list, e.g.
// "Dog Friendly: 4/5".
type TraitEntry struct {
	Label string `json:"label"`
	Score int    `json:"score"`
	OutOf int    `json:"out_of"`
}

// CatDetailResponse is the full record behind a post's detail control:
// the generated descriptive paragraphs, the trait list, and the image
// when present.
type CatDetailResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Origin      string        `json:"origin"`
	Description []string      `json:"description"`
	Traits      []TraitEntry  `json:"traits"`
	Image       *domain.Image `json:"image"`
}

// SlideResponse is one carousel slide. ImageURL is nil for breeds
// without a picture, which render as a "No image" placeholder.
type SlideResponse struct {
	ImageURL *string `json:"image_url"`
	Alt      string  `json:"alt"`
}

// CarouselResponse is the auto-playing slide deck. Initialized reports
// whether this call built the deck or returned the one built earlier.
type CarouselResponse struct {
	Slides      []SlideResponse `json:"slides"`
	Initialized bool            `json:"initialized"`
}
