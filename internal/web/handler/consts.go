package handler

const (
	// APIPrefix is the path prefix shared by all JSON API routes.
	APIPrefix = "/api"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilACSFatalLogMsg is used if app or cfg or store var pointer is nil.
	ErrNilACSFatalLogMsg = "app, cfg or store is nil"
)
