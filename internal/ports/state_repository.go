package ports

import (
	"context"

	"github.com/marquito38/meow-macros/internal/domain"
)

type StateRepository interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

// DraftRepository holds the workout being recorded between invocations.
// LoadDraft returns an empty draft when none is stored.
type DraftRepository interface {
	LoadDraft(ctx context.Context) (domain.Draft, error)
	SaveDraft(ctx context.Context, draft domain.Draft) error
	DeleteDraft(ctx context.Context) error
}
