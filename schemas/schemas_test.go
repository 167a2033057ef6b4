package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"cv.schema.json",
	"facture.schema.json",
	"rapport.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			// Check for required JSON Schema fields
			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType && hasSchema && hasProps,
				"schema should declare type, $schema, and properties")
		})
	}
}

func TestCVSchema_ValidatesNormalizedRecord(t *testing.T) {
	testJSON := `{
		"name": "Marie Dupont",
		"email": "marie@example.com",
		"experience_entries": ["Ingénieure at Acme (2020-2024)"],
		"education_entries": ["Master Informatique, Paris (2019)"],
		"skills": ["Go", "Python"]
	}`

	schemaData, err := os.ReadFile("cv.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), testJSON)
	assert.NoError(t, err, "canonical CV record should pass its schema")
}

func TestFactureSchema_RejectsNegativeTotal(t *testing.T) {
	testJSON := `{
		"invoice_number": "FACT-001",
		"date": "2026-01-15T00:00:00Z",
		"client_name": "Client unspecified",
		"line_items": [],
		"total_amount": -5,
		"tax_rate": 20.0
	}`

	schemaData, err := os.ReadFile("facture.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), testJSON)
	require.Error(t, err)
	var vErr *schemas.ValidationError
	assert.ErrorAs(t, err, &vErr, "negative total should surface as a validation error")
}

func TestRapportSchema_RequiresSections(t *testing.T) {
	testJSON := `{
		"title": "Rapport annuel",
		"author": "Author unspecified",
		"date": "2026-01-15T00:00:00Z"
	}`

	schemaData, err := os.ReadFile("rapport.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), testJSON)
	assert.Error(t, err, "record without sections should fail")
}
