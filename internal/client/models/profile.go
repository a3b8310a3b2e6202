package models

import "strings"

// Interest is a category tag a volunteer can pick at registration.
type Interest string

const (
	InterestAnimals Interest = "animals"
	InterestEcology Interest = "ecology"
	InterestHealth  Interest = "health"
	InterestCulture Interest = "culture"
)

// Interests lists every known tag in display order.
var Interests = []Interest{InterestAnimals, InterestEcology, InterestHealth, InterestCulture}

var interestNames = map[Interest]string{
	InterestAnimals: "Animals",
	InterestEcology: "Ecology",
	InterestHealth:  "Healthy living",
	InterestCulture: "Culture",
}

// DisplayName returns the human label for the tag, or the raw tag when it is
// not one of the known values.
func (i Interest) DisplayName() string {
	if n, ok := interestNames[i]; ok {
		return n
	}
	return string(i)
}

// Known reports whether i is one of the enumerated tags.
func (i Interest) Known() bool {
	_, ok := interestNames[i]
	return ok
}

// Profile is the locally registered volunteer. At most one exists per device.
type Profile struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	City         string     `json:"city"`
	Organization string     `json:"organization"`
	WhatsApp     string     `json:"whatsapp"`
	Interests    []Interest `json:"interests"`
	// Avatar is rendered image markup or empty.
	Avatar           string `json:"avatar"`
	RegistrationDate string `json:"registrationDate"`
}

// FullName is "First Last".
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
