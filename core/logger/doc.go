// Package logger provides a structured logging facility based on Zap.
//
// The debug level selects zap's development configuration, any other
// level the production one. Console output uses colored capital levels
// and no stack traces; json output is meant for log shippers.
//
// # Context
//
// Work is always done for one relation at a time. WithRelation attaches
// the relation name so entries from a batch run can be told apart.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log = logger.WithRelation(log, "budafok")
//	log.Info("Report ready", zap.Int("missing", n))
package logger
