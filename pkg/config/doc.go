// Package config provides configuration loading for rolegate services.
//
// Configuration comes from environment variables, either through cleanenv
// struct tags or the helper functions in this package:
//
//	// Struct-based loading
//	var cfg struct {
//		Database config.DatabaseConfig
//		JWT      config.JWTConfig
//	}
//	cleanenv.ReadEnv(&cfg)
//
//	// Direct helpers
//	host := config.GetEnvOrDefault("ROLEGATE_PG_HOST", "localhost")
//	admins := config.ParseAdminRoleNames(os.Getenv("ADMIN_ROLES"))
package config
