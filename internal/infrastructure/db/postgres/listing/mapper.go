package listing

import (
	agentDomain "listings-media-api/internal/domain/agent"
	domain "listings-media-api/internal/domain/listing"
)

func fromDBModel(model *Listing) *domain.Listing {
	var agentID *agentDomain.ID
	if model.AgentID != nil {
		id := agentDomain.ID(*model.AgentID)
		agentID = &id
	}

	var l = &domain.Listing{
		UUID:    model.UUID,
		AgentID: agentID,

		Title:        model.Title,
		Description:  model.Description,
		Price:        model.Price,
		Location:     model.Location,
		PropertyType: model.PropertyType,
		Bedrooms:     model.Bedrooms,
		Bathrooms:    model.Bathrooms,
		AreaSqft:     model.AreaSqft,
		Features:     model.Features,
		ContactInfo:  model.ContactInfo,

		Images: model.Images,
		Videos: model.Videos,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		ExpiresAt: model.ExpiresAt,
	}

	return l
}
