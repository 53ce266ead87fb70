// Command server exposes the sentiment analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/health
//	POST /api/analyze        body: {"text":"..."}
//	POST /api/analyze-batch  body: {"texts":["...", ...]}  (max 10)
//	POST /api/analyze-file   multipart form, field "file", .txt only
//	POST /api/stats          body: {"text":"..."}
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"github.com/subosito/gotenv"

	"github.com/opine-nlp/opine"
)

const (
	maxBatchSize  = 10
	maxUploadSize = 1 << 20 // 1 MiB
)

// ---- JSON request/response types ----------------------------------------

type analyzeRequest struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

type batchItemJSON struct {
	Index  int                   `json:"index"`
	Text   string                `json:"text"`
	Result *opine.AnalysisResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItemJSON `json:"results"`
	Total   int             `json:"total"`
}

type fileResponse struct {
	Filename string                 `json:"filename"`
	Report   *opine.ParagraphReport `json:"report"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// apiResponse is the envelope every endpoint answers with: success plus
// data, or failure plus an error message.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeData(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: v})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiResponse{Error: msg})
}

// truncate shortens the echoed input so batch responses stay small.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// statusFor maps analyzer errors to HTTP codes. Validation problems are the
// caller's fault; anything else is ours.
func statusFor(err error) int {
	var verr *opine.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ---- handlers -----------------------------------------------------------

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeData(w, healthResponse{Status: "healthy", Service: "opine"})
}

func handleAnalyze(an *opine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}
		res, err := an.Analyze(body.Text)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeData(w, res)
	}
}

func handleAnalyzeBatch(an *opine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body batchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'texts' array")
			return
		}
		if len(body.Texts) == 0 {
			writeError(w, http.StatusBadRequest, "'texts' must be a non-empty array")
			return
		}
		if len(body.Texts) > maxBatchSize {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("at most %d texts per batch", maxBatchSize))
			return
		}

		results := an.AnalyzeBatch(body.Texts)
		out := make([]batchItemJSON, len(results))
		for i, br := range results {
			out[i] = batchItemJSON{Index: i, Text: truncate(body.Texts[i], 100), Result: br.Result}
			if br.Err != nil {
				out[i].Error = br.Err.Error()
			}
		}
		writeData(w, batchResponse{Results: out, Total: len(out)})
	}
}

func handleAnalyzeFile(an *opine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "multipart form must include a 'file' field")
			return
		}
		defer file.Close()

		if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".txt" {
			writeError(w, http.StatusBadRequest, "only .txt files are supported")
			return
		}
		content, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read uploaded file")
			return
		}

		report, err := an.AnalyzeParagraphs(string(content))
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeData(w, fileResponse{Filename: header.Filename, Report: report})
	}
}

func handleStats(an *opine.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}
		stats, err := an.ComputeStats(body.Text)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeData(w, stats)
	}
}

// ---- main ---------------------------------------------------------------

func initLogger() {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}

func listenAddr(flagAddr string) string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return flagAddr
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	initLogger()
	if err := gotenv.Load(); err != nil {
		slog.Debug("no .env file, using OS environment")
	}

	an := opine.NewAnalyzer(opine.DefaultConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "unknown endpoint")
	})
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/analyze", handleAnalyze(an))
	mux.HandleFunc("/api/analyze-batch", handleAnalyzeBatch(an))
	mux.HandleFunc("/api/analyze-file", handleAnalyzeFile(an))
	mux.HandleFunc("/api/stats", handleStats(an))

	handler := cors.Default().Handler(mux)

	final := listenAddr(*addr)
	slog.Info("listening", "addr", final)
	if err := http.ListenAndServe(final, handler); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
