package response

// ServiceInfo is served on GET / as a static description of the service.
type ServiceInfo struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Methods     []string          `json:"methods"`
	Endpoints   map[string]string `json:"endpoints"`
}

// Health is the GET /health liveness and capability summary.
type Health struct {
	Status           string   `json:"status"`
	Service          string   `json:"service"`
	Version          string   `json:"version"`
	Methods          []string `json:"methods"`
	TavilyConfigured bool     `json:"tavily_configured"`
}
