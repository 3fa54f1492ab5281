package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/adapter"
	"github.com/sells-group/investor-research/internal/model"
)

var servePort int

// researcher is the slice of the pipeline the HTTP handlers need.
type researcher interface {
	Run(ctx context.Context, name string) (*model.Result, error)
}

// successResponse wraps a research result in the API envelope.
type successResponse struct {
	Success bool `json:"success"`
	*model.Result
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the research HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p, err := initPipeline("serve")
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(p),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the HTTP routes.
func newRouter(p researcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", handleHealth)
	r.Get("/investors", handleInvestors)
	r.Get("/mock", handleMock)
	r.Post("/research", handleResearch(p))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleInvestors lists the quick-access investors the UI offers as
// one-click choices.
func handleInvestors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"investors": adapter.QuickAccessNames})
}

// handleMock serves a static demo payload for UI development.
func handleMock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, successResponse{Success: true, Result: sampleResult()})
}

// handleResearch runs a full research pass. The investor name arrives as a
// form field or a JSON body.
func handleResearch(p researcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := investorNameFromRequest(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		runID := uuid.NewString()
		log := zap.L().With(zap.String("run_id", runID), zap.String("investor", name))
		log.Info("research request received")

		result, rerr := p.Run(r.Context(), name)
		if rerr != nil {
			log.Error("research request failed", zap.Error(rerr))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: rerr.Error()})
			return
		}

		w.Header().Set("X-Run-ID", runID)
		writeJSON(w, http.StatusOK, successResponse{Success: true, Result: result})
	}
}

func investorNameFromRequest(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var body struct {
			InvestorName string `json:"investor_name"`
			Name         string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", eris.New("invalid request body")
		}
		name := strings.TrimSpace(body.InvestorName)
		if name == "" {
			name = strings.TrimSpace(body.Name)
		}
		if name == "" {
			return "", eris.New("investor_name is required")
		}
		return name, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", eris.New("invalid form body")
	}
	name := strings.TrimSpace(r.PostFormValue("investor_name"))
	if name == "" {
		name = strings.TrimSpace(r.PostFormValue("name"))
	}
	if name == "" {
		return "", eris.New("investor_name is required")
	}
	return name, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
