// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	aboutfeature "github.com/rohithbabu/foliohub/internal/app/features/about"
	achievementsfeature "github.com/rohithbabu/foliohub/internal/app/features/achievements"
	authgooglefeature "github.com/rohithbabu/foliohub/internal/app/features/authgoogle"
	certificationsfeature "github.com/rohithbabu/foliohub/internal/app/features/certifications"
	diagnosticsfeature "github.com/rohithbabu/foliohub/internal/app/features/diagnostics"
	educationfeature "github.com/rohithbabu/foliohub/internal/app/features/education"
	healthfeature "github.com/rohithbabu/foliohub/internal/app/features/health"
	hobbiesfeature "github.com/rohithbabu/foliohub/internal/app/features/hobbies"
	loginfeature "github.com/rohithbabu/foliohub/internal/app/features/login"
	projectsfeature "github.com/rohithbabu/foliohub/internal/app/features/projects"
	skillsfeature "github.com/rohithbabu/foliohub/internal/app/features/skills"
	sociallinksfeature "github.com/rohithbabu/foliohub/internal/app/features/sociallinks"
	uploadsfeature "github.com/rohithbabu/foliohub/internal/app/features/uploads"
	"github.com/rohithbabu/foliohub/internal/app/store/debuglogs"
	"github.com/rohithbabu/foliohub/internal/app/store/oauthstate"
	"github.com/rohithbabu/foliohub/internal/app/system/auth"
	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The content API lives under /api, the
// auth endpoints under /auth, and /health serves orchestrator checks.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Validated at startup; the error path here is unreachable.
	allowed, err := auth.ParseAllowList(appCfg.AllowedLogins)
	if err != nil {
		return nil, err
	}

	// Diagnostic sink: zap plus the debug_logs collection, routed by mode.
	debugStore := debuglogs.New(deps.MongoDatabase)
	diag := diaglog.New(debugStore, logger, diaglog.Config{Mode: appCfg.DiagLogMode})

	uploadStore, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
	if err != nil {
		logger.Error("upload storage init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded images, served straight from local storage
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Authentication
	loginHandler := loginfeature.NewHandler(sessionMgr, allowed, logger)
	r.Mount("/auth", loginfeature.Routes(loginHandler))

	googleHandler := authgooglefeature.NewHandler(
		sessionMgr, allowed, oauthstate.New(db),
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL,
		logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Content API
	r.Route("/api", func(r chi.Router) {
		r.Mount("/about", aboutfeature.Routes(aboutfeature.NewHandler(db, diag, logger), sessionMgr))
		r.Mount("/education", educationfeature.Routes(educationfeature.NewHandler(db, diag, logger), sessionMgr))
		r.Mount("/hobbies", hobbiesfeature.Routes(hobbiesfeature.NewHandler(db, diag, logger), sessionMgr))
		r.Mount("/projects", projectsfeature.Routes(projectsfeature.NewHandler(db, diag, logger), sessionMgr))
		r.Mount("/skills", skillsfeature.Routes(skillsfeature.NewHandler(db, diag, logger), sessionMgr))
		r.Mount("/achievements", achievementsfeature.Routes(achievementsfeature.NewHandler(db, diag, logger), sessionMgr))
		r.Mount("/certifications", certificationsfeature.Routes(certificationsfeature.NewHandler(db, diag, logger), sessionMgr))
		r.Mount("/social-links", sociallinksfeature.Routes(sociallinksfeature.NewHandler(db, diag, logger), sessionMgr))

		r.Mount("/diagnostics", diagnosticsfeature.Routes(diagnosticsfeature.NewHandler(diag, debugStore, logger), sessionMgr))
		r.Mount("/uploads", uploadsfeature.Routes(uploadsfeature.NewHandler(uploadStore, logger), sessionMgr))
	})

	return r, nil
}
