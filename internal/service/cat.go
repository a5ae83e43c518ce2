package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"catboard/internal/cache"
	"catboard/internal/config"
	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/logger"
	"catboard/internal/util"

	"go.uber.org/zap"
)

const postExcerptLength = 50

// CatService serves the posts view, the carousel, and the detail modal.
type CatService interface {
	// GetPosts returns up to limit cats as post cards. limit <= 0
	// falls back to the configured default.
	GetPosts(ctx context.Context, limit int) (*dto.PostsResponse, error)

	// GetCatDetail returns the full record behind one post.
	GetCatDetail(ctx context.Context, id string) (*dto.CatDetailResponse, error)

	// GetCarousel returns the slide deck. The deck is built at most
	// once per process; later calls return the same slides even if
	// the cat list has changed underneath.
	GetCarousel(ctx context.Context) (*dto.CarouselResponse, error)

	// Invalidate drops every cached cat list so the next call hits
	// the upstream catalog again.
	Invalidate(ctx context.Context) error
}

type catServiceImpl struct {
	catalog domain.CatCatalog
	cache   domain.Cache
	cfg     config.CatAPIConfig

	mu           sync.Mutex
	usedLimits   map[int]struct{}
	slides       []dto.SlideResponse
	carouselInit bool
}

// NewCatService creates a CatService backed by the given catalog and cache.
func NewCatService(catalog domain.CatCatalog, cacheAdapter domain.Cache, cfg config.CatAPIConfig) CatService {
	return &catServiceImpl{
		catalog:    catalog,
		cache:      cacheAdapter,
		cfg:        cfg,
		usedLimits: make(map[int]struct{}),
	}
}

func (s *catServiceImpl) cacheKey(limit int) string {
	return cache.GenerateCacheKey("cats", "list", "breeds", fmt.Sprintf("limit_%d", limit))
}

// getCats returns the normalized cat list for limit, serving the cached
// list when one exists. The cache is keyed by limit: the same limit
// within one session always returns the identical list, even if the
// upstream would answer differently, until Invalidate is called.
func (s *catServiceImpl) getCats(ctx context.Context, limit int) ([]*domain.Cat, error) {
	if limit <= 0 {
		limit = s.cfg.Limit
	}

	key := s.cacheKey(limit)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var cats []*domain.Cat
		if err := json.Unmarshal([]byte(cached), &cats); err == nil {
			logger.Get().Debug("serving cats from cache", zap.String("key", key), zap.Int("count", len(cats)))
			return cats, nil
		}
		logger.Get().Warn("dropping undecodable cached cat list", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		// A broken cache degrades to an upstream fetch.
		logger.Get().Warn("cat cache read failed", zap.String("key", key), zap.Error(err))
	}

	raws, err := s.catalog.GetCats(ctx, limit)
	if err != nil {
		return nil, err
	}

	cats := make([]*domain.Cat, 0, len(raws))
	for _, raw := range raws {
		cats = append(cats, domain.NewCat(raw))
	}

	if data, err := json.Marshal(cats); err == nil {
		if err := s.cache.Set(ctx, key, string(data), s.cfg.CacheTTL); err != nil {
			logger.Get().Warn("cat cache write failed", zap.String("key", key), zap.Error(err))
		} else {
			s.mu.Lock()
			s.usedLimits[limit] = struct{}{}
			s.mu.Unlock()
		}
	}

	return cats, nil
}

func (s *catServiceImpl) GetPosts(ctx context.Context, limit int) (*dto.PostsResponse, error) {
	cats, err := s.getCats(ctx, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]dto.PostResponse, 0, len(cats))
	for _, cat := range cats {
		posts = append(posts, dto.PostResponse{
			ID:      cat.ID,
			Name:    cat.Name,
			Origin:  cat.Origin,
			Excerpt: util.Truncate(cat.Description, postExcerptLength),
			Image:   cat.Image,
		})
	}

	return &dto.PostsResponse{Posts: posts, Count: len(posts)}, nil
}

func (s *catServiceImpl) GetCatDetail(ctx context.Context, id string) (*dto.CatDetailResponse, error) {
	cats, err := s.getCats(ctx, s.cfg.Limit)
	if err != nil {
		return nil, err
	}

	for _, cat := range cats {
		if cat.ID == id {
			return &dto.CatDetailResponse{
				ID:          cat.ID,
				Name:        cat.Name,
				Origin:      cat.Origin,
				Description: buildDescription(cat),
				Traits:      buildTraitList(cat.Traits),
				Image:       cat.Image,
			}, nil
		}
	}

	return nil, domain.NewNotFoundError(fmt.Sprintf("cat not found: %s", id))
}

func (s *catServiceImpl) GetCarousel(ctx context.Context) (*dto.CarouselResponse, error) {
	s.mu.Lock()
	if s.carouselInit {
		slides := s.slides
		s.mu.Unlock()
		return &dto.CarouselResponse{Slides: slides, Initialized: false}, nil
	}
	s.mu.Unlock()

	cats, err := s.getCats(ctx, s.cfg.Limit)
	if err != nil {
		return nil, err
	}

	slides := make([]dto.SlideResponse, 0, len(cats))
	for _, cat := range cats {
		slide := dto.SlideResponse{Alt: slideAlt(cat.Name)}
		if cat.Image != nil {
			url := cat.Image.URL
			slide.ImageURL = &url
		}
		slides = append(slides, slide)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.carouselInit {
		// Lost the race to another initializer; keep the first deck.
		return &dto.CarouselResponse{Slides: s.slides, Initialized: false}, nil
	}
	s.slides = slides
	s.carouselInit = true
	return &dto.CarouselResponse{Slides: slides, Initialized: true}, nil
}

func (s *catServiceImpl) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	limits := make([]int, 0, len(s.usedLimits))
	for limit := range s.usedLimits {
		limits = append(limits, limit)
	}
	s.usedLimits = make(map[int]struct{})
	s.mu.Unlock()

	for _, limit := range limits {
		key := s.cacheKey(limit)
		if err := s.cache.Delete(ctx, key); err != nil {
			return domain.NewInternalError(fmt.Sprintf("failed to invalidate cat cache key %s", key), err)
		}
	}
	logger.Get().Info("cat cache invalidated", zap.Int("keys", len(limits)))
	return nil
}

func slideAlt(name string) string {
	if name == "" {
		name = "cat"
	}
	return name + "-image"
}

// buildDescription generates the two descriptive paragraphs of the
// detail modal from the record's name, origin, temperament and
// physical flags.
func buildDescription(cat *domain.Cat) []string {
	alsoKnown := ""
	if cat.AltNames != nil {
		alsoKnown = fmt.Sprintf(", also known as %s,", *cat.AltNames)
	}
	first := fmt.Sprintf("The %s%s is a breed originating from %s. It is known for its %s temperament.",
		cat.Name, alsoKnown, cat.Origin, strings.ToLower(cat.Temperament))

	coatText := "It has a traditional coat"
	if cat.Physical.Hairless {
		coatText = "It is a hairless breed"
	}
	legsText := "a well-proportioned body"
	if cat.Physical.ShortLegs {
		legsText = "short legs"
	}
	second := fmt.Sprintf("%s and %s, which directly shapes its appearance and care. It stands out for its intelligence and its adaptability to family life.",
		coatText, legsText)

	return []string{first, second}
}

// buildTraitList renders the eight trait scores as labeled entries in a
// fixed order.
func buildTraitList(traits domain.Traits) []dto.TraitEntry {
	return []dto.TraitEntry{
		{Label: "Adaptability", Score: traits.Adaptability, OutOf: 5},
		{Label: "Affection", Score: traits.Affection, OutOf: 5},
		{Label: "Intelligence", Score: traits.Intelligence, OutOf: 5},
		{Label: "Child Friendly", Score: traits.ChildFriendly, OutOf: 5},
		{Label: "Dog Friendly", Score: traits.DogFriendly, OutOf: 5},
		{Label: "Health Issues", Score: traits.HealthIssues, OutOf: 5},
		{Label: "Vocalisation", Score: traits.Vocalisation, OutOf: 5},
		{Label: "Energy", Score: traits.Energy, OutOf: 5},
	}
}
