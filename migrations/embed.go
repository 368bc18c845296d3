// Package migrations embeds the MongoDB index migrations.
package migrations

import (
	"embed"

	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo"
)

//go:embed *.json
var files embed.FS

// Source returns the embedded migrations for the mongo module.
func Source() mongo.MigrationSource {
	return mongo.MigrationSource{FS: files, Dir: "."}
}
