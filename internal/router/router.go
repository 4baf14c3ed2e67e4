package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	mem "dog-walking-app/internal/adapters/storage/memory"
	pg "dog-walking-app/internal/adapters/storage/postgres"
	"dog-walking-app/internal/domain/auth"
	"dog-walking-app/internal/domain/dogs"
	"dog-walking-app/internal/domain/users"
	"dog-walking-app/internal/middleware"
	"dog-walking-app/internal/platform/logger"
	portauth "dog-walking-app/internal/ports/auth"
	"dog-walking-app/internal/ports/hash"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Issuer y Verifier son obligatorios (normalmente el mismo jwtauth.Service).
	Issuer   portauth.TokenIssuer
	Verifier portauth.TokenVerifier

	Hasher hash.PasswordHasher

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log logger.Logger

	// Seed del primer admin si el store arranca vacío (ver users.EnsureAdmin).
	AdminEmail    string
	AdminPassword string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	var (
		userRepo users.Repository
		dogRepo  dogs.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		userRepo = pg.NewUsersRepo(db)
		dogRepo = pg.NewDogsRepo(db)
	} else {
		userRepo = mem.NewUserRepo()
		dogRepo = mem.NewDogRepo()
	}

	if opts.AdminEmail != "" && opts.AdminPassword != "" {
		created, err := users.EnsureAdmin(context.Background(), userRepo, opts.Hasher, opts.AdminEmail, opts.AdminPassword)
		if err != nil {
			log.Error("admin seed failed", map[string]any{"error": err.Error()})
		} else if created {
			log.Warn("seed admin account created", map[string]any{"email": users.NormalizeEmail(opts.AdminEmail)})
		}
	}

	// Resolver de principal: verify + re-fetch por request
	resolver := users.NewResolver(opts.Verifier, userRepo)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.AuthContext(resolver))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Services por módulo
	usersSvc := users.NewService(userRepo, opts.Hasher)
	dogsSvc := dogs.NewService(dogRepo)
	authSvc := auth.NewService(userRepo, opts.Hasher, opts.Issuer)

	// Rutas por módulo
	auth.RegisterRoutes(r, authSvc)
	users.RegisterRoutes(r, usersSvc)
	dogs.RegisterRoutes(r, dogsSvc)

	return r
}
