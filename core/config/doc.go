// Package config loads the application settings.
//
// Values come from struct tag defaults, a .env file and the process
// environment, in increasing order of precedence. Nested keys map to
// environment variables by replacing dots with underscores, so
// reference.staleness is REFERENCE_STALENESS.
//
// # Configuration Structure
//
//   - Workspace: data and work directories
//   - Reference: reference table path and side-car staleness policy
//   - Log: logging level and format
//   - Database: optional report history (MySQL or SQLite)
//   - Storage: optional S3/MinIO bucket for reports and the reference table
//
// Relation registries and per-relation overrides are domain data and live
// in YAML files under the data directory; see core/relations.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reference.Path)
package config
