// Package migrations contains the schema migration files. Each file
// registers itself through init(); cmd/cartinhas imports this package
// so registration happens at CLI startup.
package migrations
