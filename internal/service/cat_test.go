package service

import (
	"context"
	"testing"

	"catboard/internal/config"
	"catboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catTestConfig() config.CatAPIConfig {
	return config.CatAPIConfig{Limit: 3, CacheTTL: 0}
}

func rawCatFixture(id, name string) domain.RawCat {
	return domain.RawCat{
		ID:           id,
		Name:         name,
		Origin:       "Egypt",
		Temperament:  "Curious, Playful",
		Description:  "A very curious companion that follows its people from room to room and inspects everything.",
		Adaptability: 5,
		Intelligence: 4,
		Image:        &domain.RawImage{URL: "https://cdn.example/" + id + ".jpg", Width: 800, Height: 600},
	}
}

func TestCatService_GetPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("MapsCatalogRecordsToPosts", func(t *testing.T) {
		catalog := new(MockCatCatalog)
		catalog.On("GetCats", mock.Anything, 3).Return([]domain.RawCat{
			rawCatFixture("abys", "Abyssinian"),
			rawCatFixture("beng", "Bengal"),
		}, nil).Once()

		svc := NewCatService(catalog, NewManualMockCache(), catTestConfig())

		posts, err := svc.GetPosts(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, 2, posts.Count)
		assert.Equal(t, "abys", posts.Posts[0].ID)
		assert.Equal(t, "Bengal", posts.Posts[1].Name)
		// Excerpts are truncated for the card view.
		assert.LessOrEqual(t, len([]rune(posts.Posts[0].Excerpt)), postExcerptLength+3)
		catalog.AssertExpectations(t)
	})

	t.Run("SecondCallServedFromCache", func(t *testing.T) {
		catalog := new(MockCatCatalog)
		// The catalog answers once; a second upstream call would
		// return different data, which must never surface.
		catalog.On("GetCats", mock.Anything, 3).Return([]domain.RawCat{
			rawCatFixture("abys", "Abyssinian"),
		}, nil).Once()

		svc := NewCatService(catalog, NewManualMockCache(), catTestConfig())

		first, err := svc.GetPosts(ctx, 3)
		require.NoError(t, err)
		second, err := svc.GetPosts(ctx, 3)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		catalog.AssertNumberOfCalls(t, "GetCats", 1)
	})

	t.Run("DistinctLimitsUseDistinctCacheEntries", func(t *testing.T) {
		catalog := new(MockCatCatalog)
		catalog.On("GetCats", mock.Anything, 3).Return([]domain.RawCat{
			rawCatFixture("abys", "Abyssinian"),
		}, nil).Once()
		catalog.On("GetCats", mock.Anything, 5).Return([]domain.RawCat{
			rawCatFixture("abys", "Abyssinian"),
			rawCatFixture("beng", "Bengal"),
		}, nil).Once()

		svc := NewCatService(catalog, NewManualMockCache(), catTestConfig())

		three, err := svc.GetPosts(ctx, 3)
		require.NoError(t, err)
		five, err := svc.GetPosts(ctx, 5)
		require.NoError(t, err)

		assert.Equal(t, 1, three.Count)
		assert.Equal(t, 2, five.Count)
		catalog.AssertExpectations(t)
	})

	t.Run("UpstreamErrorPropagates", func(t *testing.T) {
		catalog := new(MockCatCatalog)
		catalog.On("GetCats", mock.Anything, 3).
			Return(nil, domain.NewUpstreamError("thecatapi", assert.AnError)).Once()

		svc := NewCatService(catalog, NewManualMockCache(), catTestConfig())

		_, err := svc.GetPosts(ctx, 3)
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrCodeUpstream, domainErr.Code)
	})

	t.Run("MissingImageYieldsNilImage", func(t *testing.T) {
		raw := rawCatFixture("sphy", "Sphynx")
		raw.Image = nil

		catalog := new(MockCatCatalog)
		catalog.On("GetCats", mock.Anything, 3).Return([]domain.RawCat{raw}, nil).Once()

		svc := NewCatService(catalog, NewManualMockCache(), catTestConfig())

		posts, err := svc.GetPosts(ctx, 3)
		require.NoError(t, err)
		assert.Nil(t, posts.Posts[0].Image)
	})
}

func TestCatService_GetCatDetail(t *testing.T) {
	ctx := context.Background()

	catalog := new(MockCatCatalog)
	raw := rawCatFixture("abys", "Abyssinian")
	raw.Hairless = true
	catalog.On("GetCats", mock.Anything, 3).Return([]domain.RawCat{raw}, nil).Once()

	svc := NewCatService(catalog, NewManualMockCache(), catTestConfig())

	t.Run("Found", func(t *testing.T) {
		detail, err := svc.GetCatDetail(ctx, "abys")
		require.NoError(t, err)
		assert.Equal(t, "Abyssinian", detail.Name)
		require.Len(t, detail.Description, 2)
		assert.Contains(t, detail.Description[0], "originating from Egypt")
		assert.Contains(t, detail.Description[1], "hairless breed")
		require.Len(t, detail.Traits, 8)
		assert.Equal(t, "Adaptability", detail.Traits[0].Label)
		assert.Equal(t, 5, detail.Traits[0].Score)
		// Omitted scores clamp to the range minimum.
		assert.Equal(t, "Energy", detail.Traits[7].Label)
		assert.Equal(t, 1, detail.Traits[7].Score)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.GetCatDetail(ctx, "nope")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrCodeNotFound, domainErr.Code)
	})
}

func TestCatService_GetCarousel(t *testing.T) {
	ctx := context.Background()

	catalog := new(MockCatCatalog)
	noImage := rawCatFixture("sphy", "Sphynx")
	noImage.Image = nil
	catalog.On("GetCats", mock.Anything, 3).Return([]domain.RawCat{
		rawCatFixture("abys", "Abyssinian"),
		noImage,
	}, nil).Once()

	svc := NewCatService(catalog, NewManualMockCache(), catTestConfig())

	first, err := svc.GetCarousel(ctx)
	require.NoError(t, err)
	assert.True(t, first.Initialized)
	require.Len(t, first.Slides, 2)
	assert.Equal(t, "Abyssinian-image", first.Slides[0].Alt)
	require.NotNil(t, first.Slides[0].ImageURL)
	assert.Nil(t, first.Slides[1].ImageURL)

	// The deck is built once; a repeat call returns the same slides
	// without reinitializing.
	second, err := svc.GetCarousel(ctx)
	require.NoError(t, err)
	assert.False(t, second.Initialized)
	assert.Equal(t, first.Slides, second.Slides)
	catalog.AssertNumberOfCalls(t, "GetCats", 1)
}

func TestCatService_Invalidate(t *testing.T) {
	ctx := context.Background()

	catalog := new(MockCatCatalog)
	catalog.On("GetCats", mock.Anything, 3).Return([]domain.RawCat{
		rawCatFixture("abys", "Abyssinian"),
	}, nil).Twice()

	cache := NewManualMockCache()
	svc := NewCatService(catalog, cache, catTestConfig())

	_, err := svc.GetPosts(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	require.NoError(t, svc.Invalidate(ctx))
	assert.Equal(t, 0, cache.Len())

	// The next call goes back to the upstream.
	_, err = svc.GetPosts(ctx, 3)
	require.NoError(t, err)
	catalog.AssertNumberOfCalls(t, "GetCats", 2)
}
