// Package client bootstraps local persistence for the volunteer CLI: it
// opens the SQLite file, applies the embedded goose migrations, and hands
// back a ready store.Store.
package client
