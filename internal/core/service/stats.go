package service

import "github.com/pdam/billing-console/internal/core/domain"

// CustomerStats are the summary cards above the customer table.
type CustomerStats struct {
	Total    int
	Active   int
	Services int // distinct service packages in use
	Contacts int // every customer is a contact
}

// ComputeCustomerStats folds a customer list into its summary.
func ComputeCustomerStats(customers []domain.Customer) CustomerStats {
	st := CustomerStats{Total: len(customers), Contacts: len(customers)}
	seen := make(map[int64]struct{})
	for _, c := range customers {
		if c.IsActive() {
			st.Active++
		}
		seen[c.ServiceID] = struct{}{}
	}
	st.Services = len(seen)
	return st
}

// ServiceStats are the summary cards above the service table.
type ServiceStats struct {
	Total        int
	AveragePrice float64
	Capacity     float64
	Active       int
}

// ComputeServiceStats folds a service list into its summary. The average of
// an empty list is 0.
func ComputeServiceStats(services []domain.Service) ServiceStats {
	st := ServiceStats{Total: len(services)}
	var sum float64
	for _, s := range services {
		sum += s.Price
		st.Capacity += s.MaxUsage
		if s.IsActive() {
			st.Active++
		}
	}
	if st.Total > 0 {
		st.AveragePrice = sum / float64(st.Total)
	}
	return st
}
