package domain

import "context"

// CatCatalog is the port for the breed catalog API. GetCats returns up
// to limit raw cat records in original catalog order, each with its
// image metadata resolved or nil.
type CatCatalog interface {
	GetCats(ctx context.Context, limit int) ([]RawCat, error)
}

// TriviaAPI is the port for the trivia question API. Failures propagate
// to the caller; there is no caching and no retry.
type TriviaAPI interface {
	GetQuizQuestions(ctx context.Context, amount, category int) ([]QuizQuestion, error)
}

// SignupGateway is the port for the user registration API.
type SignupGateway interface {
	SubmitUser(ctx context.Context, user *User) error
}
