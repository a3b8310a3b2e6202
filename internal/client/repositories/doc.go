// Package repositories holds the in-memory record collections of the client.
//
// # Overview
//
// Each repository owns exactly one store slot and is the only writer of it:
//
//   - Profile: single-assignment registration record (slot "profile")
//   - Events: append-only list (slot "events")
//   - Reports: append-only list (slot "reports")
//   - Messages: append-only activity log (slot "messages")
//
// Load reads the slot once at startup; an absent slot yields the empty value.
// Every mutation rewrites the whole slot through the store before returning.
// If the write fails the in-memory change is undone, so memory and storage
// never diverge.
//
// Typical Usage
//
//	events := repositories.NewEvents(st)
//	_ = events.Load(ctx)
//	_ = events.Append(ctx, ev)
//	all := events.All()
package repositories
