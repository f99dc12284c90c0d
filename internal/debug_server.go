// Package internal hosts the diagnostics surface: a read-only inspector over
// the record table, a counters endpoint, and the outbound network identity
// probe. None of it is part of chat semantics.
package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

// StatsProvider supplies the dashboard counters, typically
// observability.ChatMetrics.Snapshot.
type StatsProvider func() map[string]any

type InspectRow struct {
	Key          string
	ConnectionID string
	Category     string
	Value        string
	ExpiresAt    string
}

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

const ipProbeURL = "http://api.ipify.org/"

// StartDebugServer serves /inspect, /stats and /ip on the given port. Runs
// in the background; errors only get logged since diagnostics must never
// take the router down.
func StartDebugServer(db *badger.DB, port int, statsProvider StatsProvider, log *slog.Logger) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "conn:"
		}

		data := PageData{Prefix: prefix, Stats: map[string]any{}}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				data.Items = append(data.Items, rowFromItem(it.Item()))
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		stats := map[string]any{}
		if statsProvider != nil {
			stats = statsProvider()
		}
		_ = json.NewEncoder(w).Encode(stats)
	})

	// Outbound network identity, useful behind NAT or an egress proxy.
	mux.HandleFunc("/ip", func(w http.ResponseWriter, r *http.Request) {
		client := http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get(ipProbeURL)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"ip": string(body)})
	})

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", port)
		log.Info("Debug server listening", "address", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("Debug server stopped", "error", err)
		}
	}()
}

// rowFromItem decodes one table row for display. Keys look like
// conn:{connection_id}:{category}_{value} or idx:{slot}:{connection_id}.
func rowFromItem(item *badger.Item) InspectRow {
	key := string(item.Key())
	row := InspectRow{Key: key, Category: "raw"}

	if item.ExpiresAt() > 0 {
		row.ExpiresAt = time.Unix(int64(item.ExpiresAt()), 0).UTC().Format(time.TimeOnly)
	}

	rest, found := strings.CutPrefix(key, "conn:")
	if !found {
		return row
	}
	id, slot, ok := strings.Cut(rest, ":")
	if !ok {
		return row
	}
	row.ConnectionID = id
	if category, value, ok := strings.Cut(slot, "_"); ok {
		row.Category = category
		row.Value = value
	}
	return row
}
