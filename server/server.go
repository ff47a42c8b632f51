package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	ladyluck "github.com/duskforge/ladyluck-server"
	"github.com/duskforge/ladyluck-server/catalog"
	"github.com/duskforge/ladyluck-server/config"
	"github.com/duskforge/ladyluck-server/history"
	"github.com/duskforge/ladyluck-server/ledger"
	"github.com/duskforge/ladyluck-server/luck"
	"github.com/duskforge/ladyluck-server/player"
)

type Server struct {
	cfg     *config.Config
	session *luck.Session
	history *history.Store
}

func New(cfg *config.Config) *Server {
	table, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Printf("catalog: %v, using built-in table", err)
		table = catalog.Default()
	}
	log.Printf("catalog: %d rewards, total weight %.2f", len(table.Rewards()), table.TotalWeight())

	var store player.Store
	if db, err := ladyluck.GetDB(); err == nil && db != nil {
		pg, perr := player.NewPGStore(db)
		if perr != nil {
			log.Printf("player: postgres store unavailable (%v), falling back to file store", perr)
		} else {
			store = pg
			log.Printf("player: using postgres store")
		}
	} else if err != nil {
		log.Printf("player: database unavailable (%v), falling back to file store", err)
	}
	if store == nil {
		store = player.NewFileStore(cfg.DataDir)
	}

	hist := history.NewStore(cfg.DataDir)
	lg := ledger.NewClient(cfg.LedgerURL, cfg.LedgerSecret)
	return &Server{
		cfg:     cfg,
		session: luck.NewSession(store, lg, table, hist, nil),
		history: hist,
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /luck/status", s.handleStatus)
	mux.HandleFunc("POST /luck/roll", s.handleRoll)
	mux.HandleFunc("POST /luck/claim", s.handleClaim)
	mux.HandleFunc("GET /luck/history", s.handleHistory)
	mux.HandleFunc("POST /luck/tickets/add", s.handleAddTickets)
	// Admin: remediation for stuck/corrupt pending slots.
	mux.HandleFunc("POST /luck/admin/pending/clear", s.handleClearPending)
	return cors(requestLogger(mux))
}

func (s *Server) Run() error {
	port := s.cfg.Port
	if port <= 0 {
		port = 8082
	}
	addr := ":" + strconv.Itoa(port)
	log.Printf("lady luck listening on %s (ledger: %s)", addr, s.cfg.LedgerURL)
	return http.ListenAndServe(addr, s.routes())
}

func cors(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// requestLogger logs method and path for each request (no body or secrets).
func requestLogger(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("luck %s %s", r.Method, r.URL.Path)
		h.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "ladyluck"})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
