package agent

import (
	"context"
)

type Repository interface {
	FetchAgentByID(ctx context.Context, uuid UUID) (*Agent, error)
	FetchAgentByEmail(ctx context.Context, email string) (*Agent, error)
	CreateAgent(ctx context.Context, req Agent) (*Agent, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)

	// FetchAvatar re-reads the authoritative canonical basename. Mutations
	// must start from this value, never from anything cached.
	FetchAvatar(ctx context.Context, id ID) (string, error)

	// SwapAvatar commits newBasename only if the stored value still equals
	// prevBasename (compare-and-swap). Returns false on a lost race, in
	// which case the caller re-reads and retries.
	SwapAvatar(ctx context.Context, id ID, newBasename, prevBasename string) (bool, error)
}
