package analysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/prompts"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// Confidence values used when the classifier response carries no usable score.
const (
	fallbackConfidence = 0.5
	unknownConfidence  = 0.3
)

// Fallback bag keys used when extraction output is not valid JSON. The
// normalization layer downstream treats such a bag like any other sparse
// extraction result.
const (
	rawResponseKey      = "raw_response"
	extractionMethodKey = "extraction_method"
)

// Analyzer performs document classification and structured field extraction.
// The LLM client is injected; the Analyzer holds no global state and is safe
// for concurrent use.
type Analyzer struct {
	client Client
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer around an existing client. The caller owns
// the client lifecycle.
func NewAnalyzer(client Client, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{client: client, logger: logger}
}

// Classify determines the document type of the text with a confidence score.
// The model answers "TYPE|SCORE"; parsing is lenient, and an unrecognized
// label degrades to the report type with low confidence rather than failing.
func (a *Analyzer) Classify(ctx context.Context, text string) (types.DocumentType, float64, error) {
	template := prompts.MustGet("analysis.json", "classify-document")
	prompt := prompts.Format(template, map[string]string{"Input": text})

	response, err := a.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", 0, &APICallError{Message: "classification request failed", Cause: err}
	}

	docType, confidence := parseClassification(response)
	a.logger.Debug("document classified",
		"document_type", string(docType),
		"confidence", confidence)
	return docType, confidence, nil
}

// parseClassification interprets a raw "TYPE|SCORE" classifier response.
func parseClassification(response string) (types.DocumentType, float64) {
	label := strings.TrimSpace(response)
	score := fallbackConfidence

	if before, after, found := strings.Cut(label, "|"); found {
		label = strings.TrimSpace(before)
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(after), 64); err == nil {
			score = parsed
		}
	}

	switch strings.ToLower(label) {
	case "cv", "curriculum", "resume", "résumé":
		return types.DocumentCV, score
	case "facture", "invoice", "bill":
		return types.DocumentInvoice, score
	case "rapport", "report":
		return types.DocumentReport, score
	default:
		return types.DocumentReport, unknownConfidence
	}
}

// Extract pulls a structured field bag from the text for the given document
// type. Responses that are not valid JSON produce a fallback bag carrying
// the raw response instead of an error: extraction output is best-effort by
// contract, and the normalizer copes with whatever shape comes back.
func (a *Analyzer) Extract(ctx context.Context, text string, docType types.DocumentType) (types.Bag, error) {
	template := prompts.MustGet("analysis.json", "extract-fields")
	prompt := prompts.Format(template, map[string]string{
		"Input":        text,
		"DocumentType": strings.ToUpper(string(docType)),
	})

	response, err := a.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "extraction request failed", Cause: err}
	}

	return ParseExtraction(response), nil
}

// ParseExtraction decodes a raw extraction response into a field bag.
// A response wrapped under a single document-type key ({"CV": {...}}) is
// unwrapped. Invalid JSON yields the fallback bag, never an error.
func ParseExtraction(response string) types.Bag {
	cleaned := CleanJSONBlock(response)

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return types.Bag{
			rawResponseKey:      types.String(cleaned),
			extractionMethodKey: types.String("fallback"),
		}
	}

	// Unwrap {"CV": {...}} style single-key envelopes.
	if len(raw) == 1 {
		for _, v := range raw {
			if inner, isObj := v.(map[string]any); isObj {
				raw = inner
			}
		}
	}

	return types.BagFromMap(raw)
}

// Analyze runs classification then extraction over the raw text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*types.Analysis, error) {
	docType, confidence, err := a.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	bag, err := a.Extract(ctx, text, docType)
	if err != nil {
		return nil, err
	}

	return &types.Analysis{
		DocumentType: docType,
		Confidence:   confidence,
		Data:         bag,
		RawText:      text,
	}, nil
}
