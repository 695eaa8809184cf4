// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, CORS, and request body size
// limits. AppConfig is where everything specific to this service lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// API key authentication (for external API consumers)
	// When set, enables Bearer token authentication for /users routes.
	// Leave empty to run the API open, which is the default for local
	// development.
	APIKey string

	// Demo user seeding configuration. When SeedUsername is set, a
	// demo account is created on startup if it does not already exist.
	SeedUsername string
	SeedEmail    string
	SeedName     string
	SeedPassword string
}
