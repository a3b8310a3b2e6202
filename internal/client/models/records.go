package models

// AnonymousAuthor is stored as organizer/author when no profile exists.
const AnonymousAuthor = "Anonymous"

// Event is a volunteer activity announced by a user. Immutable once created.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// DateTime is user supplied and not required to lie in the future.
	DateTime  string `json:"dateTime"`
	Address   string `json:"address"`
	Photo     string `json:"photo"`
	Organizer string `json:"organizer"`
	City      string `json:"city"`
	CreatedAt string `json:"createdAt"`
}

// Report describes how an event went. Immutable once created.
type Report struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Participants string `json:"participants"`
	// Photos holds up to MaxReportPhotos rendered images.
	Photos    string `json:"photos"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
}

// MaxReportPhotos caps the images attached to one report.
const MaxReportPhotos = 6
