package agent

import (
	domain "listings-media-api/internal/domain/agent"
)

func fromDBModel(model *Agent) *domain.Agent {
	var a = &domain.Agent{
		UUID:           model.UUID,
		Email:          model.Email,
		PasswordHash:   model.PasswordHash,
		Role:           model.Role,
		Name:           model.Name,
		Phone:          model.Phone,
		ProfilePicture: model.ProfilePicture,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}

	return a
}
