package filters

// PropertyFilter filters property listings. Min/Max rent ranges over the
// listing price; address fields compare against the embedded address columns.
type PropertyFilter struct {
	Street  *string `json:"street" form:"street"`
	City    *string `json:"city" form:"city"`
	State   *string `json:"state" form:"state"`
	ZipCode *string `json:"zip_code" form:"zip_code"`
	Country *string `json:"country" form:"country"`

	MinRent *float64 `json:"min_rent" form:"min_rent"`
	MaxRent *float64 `json:"max_rent" form:"max_rent"`

	MinBeds       *int `json:"min_beds" form:"min_beds"`
	MaxBeds       *int `json:"max_beds" form:"max_beds"`
	MinBaths      *int `json:"min_baths" form:"min_baths"`
	MaxBaths      *int `json:"max_baths" form:"max_baths"`
	MinSquareFeet *int `json:"min_square_feet" form:"min_square_feet"`
	MaxSquareFeet *int `json:"max_square_feet" form:"max_square_feet"`
}

func (f PropertyFilter) Predicates() []Predicate {
	var preds []Predicate
	preds = appendString(preds, "address_street", Equal, f.Street)
	preds = appendString(preds, "address_city", Equal, f.City)
	preds = appendString(preds, "address_state", Equal, f.State)
	preds = appendString(preds, "address_zip_code", Equal, f.ZipCode)
	preds = appendString(preds, "address_country", Equal, f.Country)
	preds = appendFloat(preds, "price", Min, f.MinRent)
	preds = appendFloat(preds, "price", Max, f.MaxRent)
	preds = appendInt(preds, "beds", Min, f.MinBeds)
	preds = appendInt(preds, "beds", Max, f.MaxBeds)
	preds = appendInt(preds, "baths", Min, f.MinBaths)
	preds = appendInt(preds, "baths", Max, f.MaxBaths)
	preds = appendInt(preds, "square_feet", Min, f.MinSquareFeet)
	preds = appendInt(preds, "square_feet", Max, f.MaxSquareFeet)
	return preds
}
