package main

import (
	"net/http"
	"os"
	"time"

	"dog-walking-app/internal/adapters/auth/jwtauth"
	"dog-walking-app/internal/adapters/hash/bcrypt"
	"dog-walking-app/internal/platform/logger"
	"dog-walking-app/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	// Sin secret no arrancamos: operar con una clave de firma predecible
	// no es un modo degradado aceptable.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Error("JWT_SECRET is required", nil)
		os.Exit(1)
	}

	tokens, err := jwtauth.New(jwtauth.Config{
		Secret: secret,
		TTL:    jwtauth.DefaultTTL,
	})
	if err != nil {
		log.Error("token service init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{
		Issuer:        tokens,
		Verifier:      tokens,
		Hasher:        bcrypt.New(),
		Log:           log,
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
