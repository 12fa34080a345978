// cmd/mcp-server/main.go — polynomial tools over HTTP
//
// Agents post a tool name and params; polynomials travel either as text
// ("x^2 + 4x") or as the {"type":"poly","terms":[...]} object.
//
//   go run ./cmd/mcp-server -port 8080
//   curl -d '{"tool":"product","params":{"text":"(x+1)(x-1)"}}' localhost:8080/tool
//
// Parse failures come back with "error" and a caret "diagnostic".
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/njchilds90/gopoly"
)

// Polynomial requests are short; anything bigger is rejected.
const maxBodyBytes = 64 << 10

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("gopoly: serving parse/product/multiply/normalize tools on %s (POST /tool, GET /schema, GET /health)", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()

	// One polynomial tool call per request, answered with a ToolResponse.
	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic in /tool: %v\n%s", rec, string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req gopoly.ToolRequest
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if dec.More() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
			return
		}

		resp := gopoly.HandleToolCall(req)
		if resp.Error != "" {
			log.Printf("tool %s: %s", req.Tool, resp.Error)
		}
		writeJSON(w, http.StatusOK, resp)
	})

	// Tool names and their param types.
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, gopoly.MCPToolSpec())
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
