package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/career-advisor/schemas"
)

// Snapshot file names expected inside a dataset directory.
const (
	skillsFile   = "skills.json"
	careersFile  = "careers.json"
	peersFile    = "peers.json"
	keywordsFile = "keywords.json"
	qaFile       = "qa.json"
)

// LoadDir reads a dataset snapshot from a directory of JSON files,
// validating each file against its JSON Schema before decoding. Any schema
// violation fails the whole load; the caller must refuse to start.
func LoadDir(dir string) (*Snapshot, error) {
	var snap Snapshot

	var skillsDoc struct {
		Version string          `json:"version"`
		Skills  json.RawMessage `json:"skills"`
	}
	if err := loadValidated(filepath.Join(dir, skillsFile), schemas.Skills, &skillsDoc); err != nil {
		return nil, err
	}
	snap.Version = skillsDoc.Version
	if err := json.Unmarshal(skillsDoc.Skills, &snap.Skills); err != nil {
		return nil, fmt.Errorf("decode %s: %w", skillsFile, err)
	}

	var careersDoc struct {
		Careers json.RawMessage `json:"careers"`
	}
	if err := loadValidated(filepath.Join(dir, careersFile), schemas.Careers, &careersDoc); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(careersDoc.Careers, &snap.Careers); err != nil {
		return nil, fmt.Errorf("decode %s: %w", careersFile, err)
	}

	var peersDoc struct {
		Peers json.RawMessage `json:"peers"`
	}
	if err := loadValidated(filepath.Join(dir, peersFile), schemas.Peers, &peersDoc); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(peersDoc.Peers, &snap.Peers); err != nil {
		return nil, fmt.Errorf("decode %s: %w", peersFile, err)
	}

	var keywordsDoc struct {
		Keywords json.RawMessage `json:"keywords"`
	}
	if err := loadValidated(filepath.Join(dir, keywordsFile), schemas.Keywords, &keywordsDoc); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(keywordsDoc.Keywords, &snap.Keywords); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keywordsFile, err)
	}

	var qaDoc struct {
		QA json.RawMessage `json:"qa"`
	}
	if err := loadValidated(filepath.Join(dir, qaFile), schemas.QA, &qaDoc); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(qaDoc.QA, &snap.QA); err != nil {
		return nil, fmt.Errorf("decode %s: %w", qaFile, err)
	}

	return &snap, nil
}

// loadValidated reads one snapshot file, checks it against the named schema
// and decodes it into out.
func loadValidated(path, schemaName string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot file: %w", err)
	}

	schemaBytes, err := schemas.Read(schemaName)
	if err != nil {
		return fmt.Errorf("load schema %s: %w", schemaName, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate %s: %w", filepath.Base(path), err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return fmt.Errorf("snapshot file %s failed schema validation: %s",
			filepath.Base(path), strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
