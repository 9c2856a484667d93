// Package main runs rolegate without a database using the in-memory role
// repository. This is useful for:
// - Quick development and testing
// - Demo/prototype environments
// - Learning the API without database setup
//
// Note: All data is lost when the server stops. For production, use
// cmd/rolegate with PostgreSQL.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/tendant/chi-demo/app"

	"github.com/rolegate/rolegate/pkg/client"
	"github.com/rolegate/rolegate/pkg/role"
	"github.com/rolegate/rolegate/pkg/tokengenerator"
)

const (
	jwtSecret = "inmem-dev-secret-change-in-production"
	issuer    = "rolegate-inmem"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting in-memory rolegate service (no database required)")

	roleRepo := role.NewInMemoryRoleRepository()
	roleService := role.NewRoleService(roleRepo)
	roleHandler := role.NewHandler(roleService)

	adminUserID := seedDemoData(roleService)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)

	tokenAuth := jwtauth.New("HS256", []byte(jwtSecret), nil)

	server.R.Group(func(r chi.Router) {
		r.Use(client.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))
		r.Use(client.AuthUserMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(role.RequireRole(roleService, "admin"))
			roleHandler.RegisterRoleRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(role.RequireAnyRole(roleService))
			roleHandler.RegisterUserRoutes(r)
		})
	})

	printDemoToken(adminUserID)

	server.Run()
}

// seedDemoData creates an admin role bound to a throwaway user so the guarded
// routes are reachable out of the box.
func seedDemoData(roleService *role.RoleService) uuid.UUID {
	ctx := context.Background()

	if _, err := roleService.CreateRole(ctx, "admin"); err != nil {
		slog.Error("Failed seeding admin role", "err", err)
		os.Exit(-1)
	}

	adminUserID := uuid.New()
	if err := roleService.AssignRole(ctx, adminUserID, "admin"); err != nil {
		slog.Error("Failed binding demo admin user", "err", err)
		os.Exit(-1)
	}

	slog.Info("Seeded demo data", "role", "admin", "user", adminUserID)
	return adminUserID
}

func printDemoToken(adminUserID uuid.UUID) {
	tokenGen := tokengenerator.NewJwtTokenGenerator(jwtSecret, issuer, issuer)
	tokenStr, expiry, err := tokenGen.GenerateToken(adminUserID.String(), tokengenerator.DefaultAccessTokenExpiry, nil)
	if err != nil {
		slog.Error("Failed generating demo token", "err", err)
		return
	}
	slog.Info("Demo admin token", "token", tokenStr, "expires", expiry)
}
