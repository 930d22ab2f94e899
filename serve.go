package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mekane/Grimdark-Future-Rules-Parser/parser"
)

type parseRequest struct {
	Line string `json:"line"`
}

var parseFuncs = map[string]func(string) (interface{}, error){
	"unit": func(line string) (interface{}, error) {
		return parser.ParseUnit(line)
	},
	"upgrade": func(line string) (interface{}, error) {
		return parser.ParseUpgrade(line)
	},
	"group": func(line string) (interface{}, error) {
		return parser.ParseUpgradeGroup(line)
	},
	"split": func(line string) (interface{}, error) {
		return parser.SplitByCommas(line), nil
	},
}

func newRouter(logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/parse/{kind}", parseHandler(logger)).Methods(http.MethodPost)
	return r
}

// parseHandler serves POST /api/parse/{kind} with a {"line": "..."} body.
func parseHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := mux.Vars(r)["kind"]
		parse, ok := parseFuncs[kind]
		if !ok {
			writeError(w, http.StatusNotFound, "unknown record kind "+kind)
			return
		}

		var req parseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		record, err := parse(req.Line)
		if err != nil {
			logger.Debug("parse failed", zap.String("kind", kind), zap.String("line", req.Line), zap.Error(err))
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func newServer(addr string, logger *zap.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
