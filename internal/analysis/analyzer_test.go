package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// stubClient returns canned responses without touching the network.
type stubClient struct {
	contentResponse string
	jsonResponse    string
	err             error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ ModelTier) (string, error) {
	return s.contentResponse, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ ModelTier) (string, error) {
	return s.jsonResponse, s.err
}

func (s *stubClient) Close() error { return nil }

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		docType    types.DocumentType
		confidence float64
	}{
		{"cv with score", "CV|0.95", types.DocumentCV, 0.95},
		{"facture with score", "FACTURE|0.8", types.DocumentInvoice, 0.8},
		{"rapport with score", "RAPPORT|0.7", types.DocumentReport, 0.7},
		{"synonym resume", "resume|0.9", types.DocumentCV, 0.9},
		{"synonym invoice", "invoice|0.85", types.DocumentInvoice, 0.85},
		{"synonym report", "report|0.6", types.DocumentReport, 0.6},
		{"no score defaults to 0.5", "CV", types.DocumentCV, 0.5},
		{"bad score defaults to 0.5", "CV|high", types.DocumentCV, 0.5},
		{"whitespace tolerated", "  FACTURE | 0.75 ", types.DocumentInvoice, 0.75},
		{"unknown label degrades to report", "MEMO|0.9", types.DocumentReport, 0.3},
		{"empty response degrades to report", "", types.DocumentReport, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docType, confidence := parseClassification(tt.response)
			assert.Equal(t, tt.docType, docType)
			assert.Equal(t, tt.confidence, confidence)
		})
	}
}

func TestClassify(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{contentResponse: "CV|0.9"}, nil)

	docType, confidence, err := analyzer.Classify(context.Background(), "some resume text")
	require.NoError(t, err)
	assert.Equal(t, types.DocumentCV, docType)
	assert.Equal(t, 0.9, confidence)
}

func TestClassifyAPIError(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{err: errors.New("boom")}, nil)

	_, _, err := analyzer.Classify(context.Background(), "text")
	require.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name     string
		response string
		check    func(t *testing.T, bag types.Bag)
	}{
		{
			name:     "plain object",
			response: `{"nom": "Marie", "age": 34}`,
			check: func(t *testing.T, bag types.Bag) {
				assert.Equal(t, types.String("Marie"), bag["nom"])
				assert.Equal(t, types.Number(34), bag["age"])
			},
		},
		{
			name:     "markdown fenced",
			response: "```json\n{\"nom\": \"Marie\"}\n```",
			check: func(t *testing.T, bag types.Bag) {
				assert.Equal(t, types.String("Marie"), bag["nom"])
			},
		},
		{
			name:     "single-key envelope unwrapped",
			response: `{"CV": {"nom": "Marie"}}`,
			check: func(t *testing.T, bag types.Bag) {
				assert.Equal(t, types.String("Marie"), bag["nom"])
			},
		},
		{
			name:     "single-key scalar not unwrapped",
			response: `{"nom": "Marie"}`,
			check: func(t *testing.T, bag types.Bag) {
				assert.Equal(t, types.String("Marie"), bag["nom"])
			},
		},
		{
			name:     "invalid JSON yields fallback bag",
			response: "The document describes a CV for...",
			check: func(t *testing.T, bag types.Bag) {
				assert.Equal(t, types.String("The document describes a CV for..."), bag["raw_response"])
				assert.Equal(t, types.String("fallback"), bag["extraction_method"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ParseExtraction(tt.response))
		})
	}
}

func TestAnalyze(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{
		contentResponse: "FACTURE|0.85",
		jsonResponse:    `{"client_nom": "ABC", "montant_total": 100}`,
	}, nil)

	result, err := analyzer.Analyze(context.Background(), "invoice text")
	require.NoError(t, err)

	assert.Equal(t, types.DocumentInvoice, result.DocumentType)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, types.String("ABC"), result.Data["client_nom"])
	assert.Equal(t, "invoice text", result.RawText)
}
