// Package database opens the optional report history database.
//
// It wraps GORM and configures either a MySQL server or a local SQLite file
// from the application's configuration. The connection pool is bounded and
// the connection is verified with a ping before it is handed out.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled", zap.Error(err))
//	}
package database
