package dto

// ServiceInfo is the root endpoint payload.
type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse reports a reachable store plus the product row count.
type HealthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	ProductsCount int    `json:"products_count"`
}

// UnhealthyResponse carries the failure description when the store probe
// fails. It is served with a 503.
type UnhealthyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
