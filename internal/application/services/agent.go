package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"listings-media-api/internal/application/ports"
	domain "listings-media-api/internal/domain/agent"
)

type AgentService struct {
	agentRepository domain.Repository
	auth            ports.Auth
	mCounter        *prometheus.CounterVec
}

func NewAgentService(
	agentRepository domain.Repository,
	auth ports.Auth,
	mCounter *prometheus.CounterVec,
) ports.AgentService {
	return &AgentService{
		agentRepository: agentRepository,
		auth:            auth,
		mCounter:        mCounter,
	}
}

func (as *AgentService) FindAgentByID(ctx context.Context, uuid domain.UUID) (*domain.Agent, error) {
	return as.agentRepository.FetchAgentByID(ctx, uuid)
}

func (as *AgentService) FindByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	return as.agentRepository.FetchAgentByEmail(ctx, email)
}

func (as *AgentService) RegisterAgent(ctx context.Context, a domain.Agent, password string) (*domain.Agent, error) {
	hash, err := as.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	a.PasswordHash = &hash

	created, err := as.agentRepository.CreateAgent(ctx, a)
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues("agent_registered_total").Inc()

	return created, nil
}
