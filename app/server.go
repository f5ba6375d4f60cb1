package app

import (
	"encoding/json"
	"log"
	"net/http"

	"arapipe/nlp/format/mada"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/rs/cors"
)

type parseResponse struct {
	Diac   []string `json:"diac"`
	Undiac []string `json:"undiac"`
	Lex    []string `json:"lex"`
	LexPOS []string `json:"lexpos"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

// handleParse accepts a raw MADA report as the request body and returns the
// four reconstructed track sequences.
func handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return
	}
	strictParse := r.URL.Query().Get("strict") == "true"
	output, err := mada.Parse(r.Body, strictParse, 0)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{
		Diac:   output.Diac,
		Undiac: output.Undiac,
		Lex:    output.Lex,
		LexPOS: output.LexPOS,
	})
}

func Server(cmd *commander.Command, args []string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse)
	handler := cors.Default().Handler(mux)

	log.Println("Listening on", addr)
	return http.ListenAndServe(addr, handler)
}

func ServerCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Server,
		UsageLine: "server [arguments]",
		Short:     "serve the report parser as a JSON API",
		Long: `
serve the MADA report parser over HTTP

	$ ./arapipe server [-addr :8080]

	POST /api/parse[?strict=true]   body: a raw MADA report

`,
		Flag: *flag.NewFlagSet("server", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}
