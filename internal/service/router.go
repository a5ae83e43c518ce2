package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"catboard/internal/dto"
	"catboard/internal/logger"
)

// Page keys the router knows about.
const (
	PagePosts  = "posts"
	PageClock  = "clock"
	PageSignIn = "signIn"
	PageQuiz   = "quiz"
)

// LoaderFunc produces the view payload for a page. The context is
// cancelled when a newer navigation supersedes this one.
type LoaderFunc func(ctx context.Context) (any, error)

// Router dispatches page navigations. Each navigation cancels the
// previous one's context, so a stale in-flight load cannot publish into
// the now-inactive view. Leaving the clock page stops its ticker.
type Router struct {
	routes map[string]LoaderFunc
	clock  *ClockService

	mu     sync.Mutex
	active string
	cancel context.CancelFunc
}

// NewRouter wires the default route table over the page services. The
// default cat list limit applies to the posts view.
func NewRouter(cats CatService, quiz QuizService, signup SignupService, clock *ClockService, catLimit int) *Router {
	r := &Router{clock: clock}
	r.routes = map[string]LoaderFunc{
		PagePosts: func(ctx context.Context) (any, error) {
			return cats.GetPosts(ctx, catLimit)
		},
		PageQuiz: func(ctx context.Context) (any, error) {
			return quiz.StartSession(ctx)
		},
		PageSignIn: func(ctx context.Context) (any, error) {
			return signup.Form(), nil
		},
		PageClock: func(ctx context.Context) (any, error) {
			return clock.Current(), nil
		},
	}
	return r
}

// ActivePage returns the most recently navigated page key.
func (r *Router) ActivePage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Navigate switches to page and dispatches its loader. The active page
// is recorded even for unknown keys, which carry a nil view. The clock
// runner follows the navigation: stopped when leaving its page, started
// when entering it.
func (r *Router) Navigate(ctx context.Context, page string) (*dto.NavigationResponse, error) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	navCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	previous := r.active
	r.active = page
	loader := r.routes[page]
	r.mu.Unlock()

	if previous == PageClock && page != PageClock {
		r.clock.Stop()
	}
	if page == PageClock {
		r.clock.Start()
	}

	resp := &dto.NavigationResponse{
		ActivePage: page,
		Layout:     layoutFor(page),
	}

	if loader == nil {
		logger.Get().Debug("no route for page", zap.String("page", page))
		return resp, nil
	}

	view, err := loader(navCtx)
	if err != nil {
		return nil, err
	}
	if navCtx.Err() != nil {
		// A newer navigation won while this load was in flight.
		return resp, navCtx.Err()
	}
	resp.View = view
	return resp, nil
}

// layoutFor maps a page to its content region. Only the posts page
// shows the carousel and spans the full grid width.
func layoutFor(page string) dto.LayoutResponse {
	if page == PagePosts {
		return dto.LayoutResponse{ShowCarousel: true, GridArea: "2 / 1 / 3 / 5"}
	}
	return dto.LayoutResponse{ShowCarousel: false, GridArea: "2 / 2 / 3 / 5"}
}
