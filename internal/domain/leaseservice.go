package domain

// CreateLease is the cross-entity rule for leasing a property. It is a pure
// decision function: the caller supplies the tenant's leases with payments
// loaded. Checks run in a fixed order and the first failure wins.
func CreateLease(bus *EventBus, tenant *User, property *Property, period DateRange, rent Money, tenantLeases []*Lease) (*Lease, error) {
	if !property.IsAvailable() {
		return nil, &PropertyNotAvailableError{PropertyID: property.ID}
	}

	if !period.IsValid() {
		return nil, &InvalidLeasePeriodError{Start: period.Start, End: period.End}
	}

	for _, lease := range tenantLeases {
		for _, payment := range lease.Payments {
			if payment.Status == PaymentStatusPending {
				return nil, &OverduePaymentError{TenantID: tenant.ID}
			}
		}
	}

	return NewLease(bus, property.ID, tenant.ID, period, rent)
}
