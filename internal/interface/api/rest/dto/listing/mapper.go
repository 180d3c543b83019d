package listing

import (
	"listings-media-api/internal/application/ports"
	"listings-media-api/internal/domain/listing"
)

func ToResponseListing(lDomain listing.Listing) Listing {
	var l = Listing{
		UUID:         lDomain.UUID,
		Title:        lDomain.Title,
		Description:  lDomain.Description,
		Price:        lDomain.Price,
		Location:     lDomain.Location,
		PropertyType: lDomain.PropertyType,
		Bedrooms:     lDomain.Bedrooms,
		Bathrooms:    lDomain.Bathrooms,
		AreaSqft:     lDomain.AreaSqft,
		Features:     lDomain.Features,
		ContactInfo:  lDomain.ContactInfo,
		Images:       lDomain.Images,
		Videos:       lDomain.Videos,
		CreatedAt:    lDomain.CreatedAt,
		ExpiresAt:    lDomain.ExpiresAt,
	}

	return l
}

func ToDomainListing(r Request) listing.Listing {
	return listing.Listing{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Location:     r.Location,
		PropertyType: r.PropertyType,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		AreaSqft:     r.AreaSqft,
		Features:     r.Features,
		ContactInfo:  r.ContactInfo,
	}
}

func ToSkippedItems(items []ports.SkippedItem) []SkippedItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]SkippedItem, len(items))
	for idx, it := range items {
		out[idx] = SkippedItem{FileName: it.Filename, Reason: it.Reason}
	}

	return out
}
