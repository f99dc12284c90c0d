// Command badger_inspect dumps the record table of a (possibly live) router
// as a text table. Read-only; safe to run next to a serving process.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

type rowMeta struct {
	RefreshedAt time.Time `json:"refreshed_at"`
}

func main() {
	dbPath := flag.String("db", "./badger-data", "Path to badger DB")
	// Default to the primary range; pass idx: to inspect the reverse index.
	prefix := flag.String("prefix", "conn:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Connection", "Category", "Value", "Refreshed", "Expires"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			refreshed := "-"
			err := item.Value(func(v []byte) error {
				var meta rowMeta
				if err := json.Unmarshal(v, &meta); err == nil {
					refreshed = meta.RefreshedAt.Format(time.TimeOnly)
				}
				return nil
			})
			if err != nil {
				fmt.Printf("Error reading key %s: %v\n", key, err)
				continue
			}

			expires := "-"
			if item.ExpiresAt() > 0 {
				expires = time.Unix(int64(item.ExpiresAt()), 0).UTC().Format(time.TimeOnly)
			}

			connectionID, category, value := splitKey(key)
			table.Append([]string{key, connectionID, category, value, refreshed, expires})
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
}

// splitKey decodes conn:{id}:{category}_{value} keys; anything else renders
// raw.
func splitKey(key string) (connectionID, category, value string) {
	rest, found := strings.CutPrefix(key, "conn:")
	if !found {
		return "-", "raw", "-"
	}
	id, slot, ok := strings.Cut(rest, ":")
	if !ok {
		return "-", "raw", "-"
	}
	category, value, ok = strings.Cut(slot, "_")
	if !ok {
		return id, "raw", slot
	}
	return id, category, value
}

// openDB opens badger without taking the write lock, so a serving router
// keeps running.
func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}
