package api

// Variant selects the route set and identity of a deployment.
type Variant struct {
	Name        string
	AppName     string
	HomeMessage string
	DefaultPort int
	// Skeleton enables the placeholder routes under /api/.
	Skeleton bool
}

var (
	// Minimal serves only /, /health and /test.
	Minimal = Variant{
		Name:        "minimal",
		AppName:     "minimal-test",
		HomeMessage: "Minimal test app is running!",
		DefaultPort: 5001,
	}

	// Skeleton adds the screener placeholder routes.
	Skeleton = Variant{
		Name:        "skeleton",
		AppName:     "screener-skeleton",
		HomeMessage: "Screener skeleton app is running!",
		DefaultPort: 5002,
		Skeleton:    true,
	}
)
