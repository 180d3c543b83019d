package ports

import (
	"context"

	"listings-media-api/internal/domain/agent"
)

type AgentService interface {
	FindAgentByID(ctx context.Context, uuid agent.UUID) (*agent.Agent, error)
	FindByEmail(ctx context.Context, email string) (*agent.Agent, error)
	RegisterAgent(ctx context.Context, a agent.Agent, password string) (*agent.Agent, error)
}
