package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/pipeline"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// maxRequestBody bounds the accepted input text (2 MiB).
const maxRequestBody = 2 << 20

// GenerateRequest is the request body for POST /generate.
type GenerateRequest struct {
	Text string `json:"text"`
	// Type forces the document type (cv, facture, rapport) and skips
	// classification when set.
	Type     string `json:"type,omitempty"`
	KeepHTML bool   `json:"keep_html,omitempty"`
}

// GenerateResponse is the response body for POST /generate.
type GenerateResponse struct {
	RunID        string             `json:"run_id"`
	DocumentType types.DocumentType `json:"document_type"`
	Confidence   float64            `json:"confidence"`
	Record       types.Record       `json:"record"`
	PDFPath      string             `json:"pdf_path"`
	HTMLPath     string             `json:"html_path,omitempty"`
	Defaulted    bool               `json:"defaulted"`
}

// handleGenerate runs the full pipeline on the posted text and returns
// the canonical record along with the generated artifact paths.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.runner.Run(r.Context(), pipeline.RunOptions{
		RawText:    req.Text,
		OutputDir:  s.outputDir,
		ForcedType: req.Type,
		KeepHTML:   req.KeepHTML,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("generation failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		RunID:        result.RunID,
		DocumentType: result.DocumentType,
		Confidence:   result.Confidence,
		Record:       result.Record,
		PDFPath:      result.PDFPath,
		HTMLPath:     result.HTMLPath,
		Defaulted:    result.Defaulted,
	})
}

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
	Type string `json:"type,omitempty"`
}

// AnalyzeResponse is the response body for POST /analyze.
type AnalyzeResponse struct {
	DocumentType types.DocumentType `json:"document_type"`
	Confidence   float64            `json:"confidence"`
	Fields       types.Bag          `json:"fields"`
}

// handleAnalyze classifies and extracts without normalizing or rendering,
// exposing the raw field bag for inspection.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		s.errorResponse(w, http.StatusNotImplemented, "analysis is not configured")
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "validation error: text - must not be empty")
		return
	}

	docType := types.ParseDocumentType(req.Type)
	confidence := 1.0
	if req.Type == "" {
		var err error
		docType, confidence, err = s.analyzer.Classify(r.Context(), req.Text)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("classification failed: %v", err))
			return
		}
	}

	bag, err := s.analyzer.Extract(r.Context(), req.Text, docType)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("extraction failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		DocumentType: docType,
		Confidence:   confidence,
		Fields:       bag,
	})
}

func decodeGenerateRequest(r *http.Request) (*GenerateRequest, error) {
	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody)).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &ErrValidation{Field: "text", Message: "input too large"}
		}
		return nil, &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if req.Text == "" {
		return nil, &ErrValidation{Field: "text", Message: "must not be empty"}
	}

	switch req.Type {
	case "", "cv", "facture", "rapport":
	default:
		return nil, &ErrValidation{Field: "type", Message: "must be one of cv, facture, rapport"}
	}

	return &req, nil
}
