package api

// HealthCheckResponse represents the health check result.
type HealthCheckResponse struct {
	Healthy bool                   `json:"healthy"`
	Checks  map[string]CheckResult `json:"checks"`
}

// CheckResult represents a single health check result.
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
