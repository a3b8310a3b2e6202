// Package render writes the client's views as plain text: the profile card,
// the events list, and the activity feed. Every call renders the full view.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/volunteer/internal/client/feed"
	"github.com/dmitrijs2005/volunteer/internal/client/models"
)

// NoEvents is printed when the events list is empty.
const NoEvents = "No events yet"

// Renderer writes views to W, formatting dates in Loc.
type Renderer struct {
	W   io.Writer
	Loc *time.Location
}

func New(w io.Writer, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{W: w, Loc: loc}
}

// Profile prints the registration card. Nothing is printed without a profile.
func (r *Renderer) Profile(p models.Profile, ok bool) {
	if !ok {
		return
	}
	names := make([]string, len(p.Interests))
	for i, tag := range p.Interests {
		names[i] = tag.DisplayName()
	}

	rows := [][2]string{
		{"First name", p.FirstName},
		{"Last name", p.LastName},
		{"City", p.City},
		{"Organization", p.Organization},
		{"WhatsApp", p.WhatsApp},
		{"Interests", strings.Join(names, ", ")},
	}
	for _, row := range rows {
		fmt.Fprintf(r.W, "%-13s %s\n", row[0]+":", row[1])
	}
	if p.Avatar != "" {
		fmt.Fprintf(r.W, "%-13s %s\n", "Avatar:", "attached")
	}
}

// Events prints every event in insertion order.
func (r *Renderer) Events(events []models.Event) {
	if len(events) == 0 {
		fmt.Fprintln(r.W, NoEvents)
		return
	}
	for _, e := range events {
		fmt.Fprintf(r.W, "# %s\n", e.Title)
		fmt.Fprintf(r.W, "  %s\n", e.Description)
		fmt.Fprintf(r.W, "  Organizer: %s\n", e.Organizer)
		fmt.Fprintf(r.W, "  City: %s\n", e.City)
		fmt.Fprintf(r.W, "  %s %s\n", feed.IconEvent, FormatDateTime(e.DateTime, r.Loc))
		fmt.Fprintf(r.W, "  Address: %s\n", e.Address)
		if e.Photo != "" {
			fmt.Fprintln(r.W, "  Photo: attached")
		}
	}
}

// Feed prints projected feed items.
func (r *Renderer) Feed(items []feed.Item) {
	for _, it := range items {
		fmt.Fprintf(r.W, "%s %s\n", it.Icon, it.Title)
		fmt.Fprintf(r.W, "   %s\n", it.Content)
		fmt.Fprintf(r.W, "   %s\n", FormatDateTime(it.Timestamp, r.Loc))
	}
}
