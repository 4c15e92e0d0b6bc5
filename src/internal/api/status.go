package api

import "net/http"

var (
	// Version information set via ldflags at build time
	Version = "dev"
	Date    = "n/a"
	Commit  = "n/a"
)

// GetVersion returns build version information.
// GET /api/version
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, VersionInfo{
		Version: Version,
		Date:    Date,
		Commit:  Commit,
	})
}
