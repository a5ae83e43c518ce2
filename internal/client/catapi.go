package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"catboard/internal/domain"
	"catboard/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const catAPITimeout = 15 * time.Second

// CatAPIClient talks to TheCatAPI breed catalog.
type CatAPIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewCatAPIClient creates a client for the given base URL. The API key
// is optional; without one the public rate limits apply.
func NewCatAPIClient(baseURL, apiKey string) *CatAPIClient {
	return &CatAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: catAPITimeout},
	}
}

// breedRecord mirrors the consumed fields of one catalog entry.
// short_legs and hairless arrive as 0/1 integers.
type breedRecord struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AltNames         string  `json:"alt_names"`
	Temperament      string  `json:"temperament"`
	Origin           string  `json:"origin"`
	Description      string  `json:"description"`
	Adaptability     float64 `json:"adaptability"`
	AffectionLevel   float64 `json:"affection_level"`
	Intelligence     float64 `json:"intelligence"`
	ChildFriendly    float64 `json:"child_friendly"`
	DogFriendly      float64 `json:"dog_friendly"`
	HealthIssues     float64 `json:"health_issues"`
	Vocalisation     float64 `json:"vocalisation"`
	EnergyLevel      float64 `json:"energy_level"`
	ShortLegs        int     `json:"short_legs"`
	Hairless         int     `json:"hairless"`
	LifeSpan         string  `json:"life_span"`
	ReferenceImageID string  `json:"reference_image_id"`
}

type imageRecord struct {
	URL    string  `json:"url"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GetCats fetches the full breed list, keeps the first limit entries in
// catalog order, and resolves each entry's image metadata concurrently.
// An entry without a reference image id keeps a nil image; a failed
// image fetch degrades to a nil image instead of failing the call. The
// result order is the catalog order regardless of fetch completion order.
func (c *CatAPIClient) GetCats(ctx context.Context, limit int) ([]domain.RawCat, error) {
	breeds, err := c.listBreeds(ctx)
	if err != nil {
		return nil, err
	}

	if limit > 0 && limit < len(breeds) {
		breeds = breeds[:limit]
	}

	cats := make([]domain.RawCat, len(breeds))
	g, gctx := errgroup.WithContext(ctx)

	for i, breed := range breeds {
		cats[i] = domain.RawCat{
			ID:            breed.ID,
			Name:          breed.Name,
			AltNames:      breed.AltNames,
			Temperament:   breed.Temperament,
			Origin:        breed.Origin,
			Description:   breed.Description,
			LifeSpan:      breed.LifeSpan,
			Adaptability:  breed.Adaptability,
			Affection:     breed.AffectionLevel,
			Intelligence:  breed.Intelligence,
			ChildFriendly: breed.ChildFriendly,
			DogFriendly:   breed.DogFriendly,
			HealthIssues:  breed.HealthIssues,
			Vocalisation:  breed.Vocalisation,
			Energy:        breed.EnergyLevel,
			ShortLegs:     breed.ShortLegs != 0,
			Hairless:      breed.Hairless != 0,
		}

		if breed.ReferenceImageID == "" {
			continue
		}

		i, imageID := i, breed.ReferenceImageID
		g.Go(func() error {
			image, err := c.getImage(gctx, imageID)
			if err != nil {
				// Per-image failures degrade to a nil image and are
				// never surfaced to the caller.
				logger.Get().Warn("image fetch failed, keeping null image",
					zap.String("image_id", imageID),
					zap.Error(err),
				)
				return nil
			}
			cats[i].Image = image
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cats, nil
}

func (c *CatAPIClient) listBreeds(ctx context.Context) ([]breedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/breeds", nil)
	if err != nil {
		return nil, domain.NewUpstreamError("thecatapi", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("thecatapi", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError("thecatapi",
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL))
	}

	var breeds []breedRecord
	if err := json.NewDecoder(resp.Body).Decode(&breeds); err != nil {
		return nil, domain.NewUpstreamError("thecatapi", fmt.Errorf("decoding breeds: %w", err))
	}
	return breeds, nil
}

func (c *CatAPIClient) getImage(ctx context.Context, imageID string) (*domain.RawImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/images/"+imageID, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL)
	}

	var image imageRecord
	if err := json.NewDecoder(resp.Body).Decode(&image); err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", imageID, err)
	}

	return &domain.RawImage{URL: image.URL, Width: image.Width, Height: image.Height}, nil
}
