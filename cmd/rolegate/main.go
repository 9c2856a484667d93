package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/rolegate/rolegate/pkg/client"
	pkgconfig "github.com/rolegate/rolegate/pkg/config"
	"github.com/rolegate/rolegate/pkg/role"
	"github.com/rolegate/rolegate/pkg/role/roledb"
)

type Config struct {
	DbConfig   pkgconfig.DatabaseConfig
	JwtConfig  pkgconfig.JWTConfig
	AppConfig  app.AppConfig
	AdminRoles string `env:"ROLEGATE_ADMIN_ROLES" env-default:""`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	loadEnvFile()

	config := Config{}
	cleanenv.ReadEnv(&config)

	server := app.DefaultApp()

	app.RoutesHealthz(server.R)

	dbConfig := config.DbConfig.ToDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}

	roleQueries := roledb.New(pool)
	roleRepo := role.NewPostgresRoleRepository(roleQueries)
	roleService := role.NewRoleService(roleRepo)
	roleHandler := role.NewHandler(roleService)

	adminRoles := pkgconfig.ParseAdminRoleNames(config.AdminRoles)
	slog.Info("Admin roles configured", "roles", adminRoles)

	tokenAuth := jwtauth.New("HS256", []byte(config.JwtConfig.Secret), nil)

	server.R.Group(func(r chi.Router) {
		r.Use(client.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))
		r.Use(client.AuthUserMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(role.RequireRole(roleService, adminRoles...))
			roleHandler.RegisterRoleRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(role.RequireAnyRole(roleService))
			roleHandler.RegisterUserRoutes(r)
		})
	})

	server.Run()
}

// loadEnvFile loads environment variables from .env file if it exists
// Only sets variables that are not already set in the environment
func loadEnvFile() {
	execPath, err := os.Executable()
	if err != nil {
		slog.Error("Failed to get executable path", "error", err)
		return
	}

	execDir := filepath.Dir(execPath)
	envFile := filepath.Join(execDir, ".env")

	// Also check current working directory
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		cwd, err := os.Getwd()
		if err != nil {
			slog.Error("Failed to get current working directory", "error", err)
			return
		}
		envFile = filepath.Join(cwd, ".env")
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return
	}

	slog.Info("Loading configuration from .env file", "path", envFile)

	err = godotenv.Load(envFile)
	if err != nil {
		slog.Error("Failed to load .env file", "error", err, "path", envFile)
		return
	}
}
