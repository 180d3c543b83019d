package agent

import (
	"listings-media-api/internal/domain/agent"
)

func ToResponseAgent(aDomain agent.Agent) Agent {
	var a = Agent{
		UUID:           aDomain.UUID,
		Email:          aDomain.Email,
		Name:           aDomain.Name,
		Phone:          aDomain.Phone,
		Role:           aDomain.Role,
		ProfilePicture: aDomain.ProfilePicture,
	}

	return a
}

func ToDomainAgent(email, name, phone string) agent.Agent {
	return agent.Agent{
		Email: email,
		Name:  name,
		Phone: phone,
		Role:  "agent",
	}
}
