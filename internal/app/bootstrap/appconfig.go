// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging
// level, CORS). AppConfig is everything specific to FolioHub: the MongoDB
// connection, the session cookie, the owner allow list, OAuth credentials,
// upload storage, and the diagnostic sink mode.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// AllowedLogins enrolls the site owner(s): "email:bcrypt-hash" pairs
	// separated by commas. Use `folioctl hash` to produce entries.
	AllowedLogins string

	// Google OAuth configuration (optional second sign-in path)
	GoogleClientID     string
	GoogleClientSecret string

	// BaseURL is the externally visible origin, used for OAuth callbacks.
	BaseURL string

	// File storage configuration for image uploads
	StorageLocalPath string // Local storage path (e.g., "./uploads/images")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files/images")

	// DiagLogMode routes diagnostic entries: "all" (db+log), "db", "log",
	// or "off".
	DiagLogMode string
}
