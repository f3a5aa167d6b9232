package filters

// LeaseFilter filters leases by status and rent range.
type LeaseFilter struct {
	Status  *string  `json:"status" form:"status"`
	MinRent *float64 `json:"min_rent" form:"min_rent"`
	MaxRent *float64 `json:"max_rent" form:"max_rent"`
}

func (f LeaseFilter) Predicates() []Predicate {
	var preds []Predicate
	preds = appendString(preds, "status", Equal, f.Status)
	preds = appendFloat(preds, "rent_amount", Min, f.MinRent)
	preds = appendFloat(preds, "rent_amount", Max, f.MaxRent)
	return preds
}
