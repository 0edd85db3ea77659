package ask

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Route classifies the query, looks up the catalog and summarizes supplier text when needed.
	Route(ctx context.Context, input AskInput) (AskOutput, error)
}
