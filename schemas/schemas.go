// Package schemas embeds the JSON Schemas that every dataset snapshot file
// must satisfy before the catalog will index it.
package schemas

import "embed"

// Schema file names, one per snapshot file.
const (
	Skills   = "skills.schema.json"
	Careers  = "careers.schema.json"
	Peers    = "peers.schema.json"
	Keywords = "keywords.schema.json"
	QA       = "qa.schema.json"
)

//go:embed *.schema.json
var fs embed.FS

// Read returns the raw schema bytes for one of the named schemas.
func Read(name string) ([]byte, error) {
	return fs.ReadFile(name)
}
