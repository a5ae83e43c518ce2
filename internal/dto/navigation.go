package dto

// LayoutResponse describes the shared content region for a page. The
// posts page is the only one that shows the carousel region and spans
// the full grid width.
type LayoutResponse struct {
	ShowCarousel bool   `json:"show_carousel"`
	GridArea     string `json:"grid_area"`
}

// NavigationResponse is the result of a router dispatch. View carries
// the target page's payload and is nil for unknown page keys, which
// render nothing.
type NavigationResponse struct {
	ActivePage string         `json:"active_page"`
	Layout     LayoutResponse `json:"layout"`
	View       any            `json:"view"`
}
