package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var serveAddr string

// serve: a development-only HTTP feed. It stands in for the OS handing
// URIs to the app, so deep-link flows can be driven from scripts and
// watched via /state. Not a product network layer.
func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Development HTTP feed for deep links",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			kit.Start(ctx)

			r := mux.NewRouter()
			r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintln(w, "OK")
			}).Methods("GET")
			r.HandleFunc("/state", handleState).Methods("GET")
			r.HandleFunc("/deeplink", handleDeepLink).Methods("POST")
			r.HandleFunc("/session/expire", handleExpire).Methods("POST")

			srv := &http.Server{
				Addr:              serveAddr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}
			fmt.Println("listening on", serveAddr)
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8459", "listen address")
	return cmd
}

func handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, snapshotDTO(kit))
}

func handleDeepLink(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URI string `json:"uri"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URI == "" {
		http.Error(w, "expected JSON body with a uri field", http.StatusBadRequest)
		return
	}
	// Bad URIs are dropped inside the coordinator, same as on-device; the
	// feed accepts anything and the resulting state tells the story.
	kit.App.HandleDeepLink(body.URI)
	writeJSON(w, http.StatusAccepted, snapshotDTO(kit))
}

func handleExpire(w http.ResponseWriter, r *http.Request) {
	kit.Auth.ExpireSession()
	kit.App.SessionExpired()
	writeJSON(w, http.StatusOK, snapshotDTO(kit))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
