package ports

import (
	"listings-media-api/internal/domain/agent"
)

type Auth interface {
	GenerateToken(a *agent.Agent, requestPassword string) (string, error)
	HashPassword(password string) (string, error)
}
