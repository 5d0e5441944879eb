// Package cmd holds the housenumber-audit command line.
//
// Every command loads its settings through core/config, so the same
// environment variables and .env file drive all of them. Database and
// object storage are only opened by the commands that use them.
package cmd
