package schemas

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "number"}
	}
}`

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", testSchema)
	jsonPath := writeTempFile(t, dir, "doc.json", `{"name": "test", "age": 3}`)

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", testSchema)
	jsonPath := writeTempFile(t, dir, "doc.json", `{"age": 3}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_WrongType(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", testSchema)
	jsonPath := writeTempFile(t, dir, "doc.json", `{"name": "test", "age": "three"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTempFile(t, dir, "doc.json", `{"name": "test"}`)

	err := ValidateJSON(filepath.Join(dir, "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", testSchema)
	jsonPath := writeTempFile(t, dir, "doc.json", `{ invalid json }`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "test"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"age": 30}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "total_amount", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "total_amount")
}

func TestSchemaPathFor(t *testing.T) {
	tests := []struct {
		docType types.DocumentType
		want    string
	}{
		{types.DocumentCV, filepath.Join("schemas", "cv.schema.json")},
		{types.DocumentInvoice, filepath.Join("schemas", "facture.schema.json")},
		{types.DocumentReport, filepath.Join("schemas", "rapport.schema.json")},
		{types.DocumentType("unknown"), filepath.Join("schemas", "rapport.schema.json")},
	}

	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			assert.Equal(t, tt.want, SchemaPathFor(tt.docType))
		})
	}
}

func TestValidateRecord_CV(t *testing.T) {
	record := &types.CVRecord{
		Name:              "Marie Dupont",
		ExperienceEntries: []string{"Ingénieure at Acme (2020-2024)"},
		EducationEntries:  []string{},
		Skills:            []string{"Go"},
	}

	err := ValidateRecord(types.DocumentCV, record)
	assert.NoError(t, err)
}

func TestValidateRecord_Invoice(t *testing.T) {
	record := &types.InvoiceRecord{
		InvoiceNumber: "FACT-042",
		Date:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		ClientName:    "Acme SARL",
		LineItems: []types.LineItem{
			{Description: "Consulting", Quantity: 2, UnitPrice: 100, Priced: true},
		},
		TotalAmount: 200,
		TaxRate:     types.DefaultTaxRate,
	}

	err := ValidateRecord(types.DocumentInvoice, record)
	assert.NoError(t, err)
}

func TestValidateRecord_Report(t *testing.T) {
	record := &types.ReportRecord{
		Title:    "Rapport annuel",
		Author:   "Jean Martin",
		Date:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Sections: []types.Section{{Title: "Introduction", Content: "Contexte."}},
	}

	err := ValidateRecord(types.DocumentReport, record)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	path := ResolveSchemaPath(filepath.Join("schemas", "cv.schema.json"))
	require.NotEmpty(t, path, "repo schema should resolve from the package directory")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
