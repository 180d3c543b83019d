package listing

// Request binds the multipart form fields of a new property post; media
// files travel in the same form under images[] and videos[].
type Request struct {
	Title        string  `form:"title"`
	Description  string  `form:"description"`
	Price        float64 `form:"price"`
	Location     string  `form:"location"`
	PropertyType string  `form:"property_type"`
	Bedrooms     int     `form:"bedrooms"`
	Bathrooms    int     `form:"bathrooms"`
	AreaSqft     int     `form:"area_sqft"`
	Features     string  `form:"features"`
	ContactInfo  string  `form:"contact_info"`
}
