package site

import (
	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/hours"
)

// Practice is the identity published in structured data.
type Practice struct {
	Name       string
	Phone      string
	Email      string
	Street     string
	City       string
	Region     string
	PostalCode string
	Country    string
	URL        string
}

// PostalAddress is the schema.org PostalAddress type.
type PostalAddress struct {
	Type          string `json:"@type"`
	StreetAddress string `json:"streetAddress,omitempty"`
	Locality      string `json:"addressLocality,omitempty"`
	Region        string `json:"addressRegion,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"addressCountry,omitempty"`
}

// OpeningHours is the schema.org OpeningHoursSpecification type.
type OpeningHours struct {
	Type      string `json:"@type"`
	DayOfWeek string `json:"dayOfWeek"`
	Opens     string `json:"opens"`
	Closes    string `json:"closes"`
}

// Dentist is the JSON-LD document embedded in the home and contact pages.
type Dentist struct {
	Context      string         `json:"@context"`
	Type         string         `json:"@type"`
	Name         string         `json:"name"`
	URL          string         `json:"url,omitempty"`
	Telephone    string         `json:"telephone,omitempty"`
	Email        string         `json:"email,omitempty"`
	Address      PostalAddress  `json:"address"`
	OpeningHours []OpeningHours `json:"openingHoursSpecification,omitempty"`
}

var schemaDays = [hours.DaysPerWeek]string{
	"https://schema.org/Monday",
	"https://schema.org/Tuesday",
	"https://schema.org/Wednesday",
	"https://schema.org/Thursday",
	"https://schema.org/Friday",
	"https://schema.org/Saturday",
	"https://schema.org/Sunday",
}

// StructuredData builds the Dentist document. Days that are closed or whose
// hours cannot be parsed are left out.
func StructuredData(p Practice, week []domain.ScheduleEntry) Dentist {
	d := Dentist{
		Context:   "https://schema.org",
		Type:      "Dentist",
		Name:      p.Name,
		URL:       p.URL,
		Telephone: p.Phone,
		Email:     p.Email,
		Address: PostalAddress{
			Type:          "PostalAddress",
			StreetAddress: p.Street,
			Locality:      p.City,
			Region:        p.Region,
			PostalCode:    p.PostalCode,
			Country:       p.Country,
		},
	}
	for i, e := range week {
		if i >= hours.DaysPerWeek {
			break
		}
		r, err := hours.ParseRange(e.Hours)
		if err != nil {
			continue
		}
		d.OpeningHours = append(d.OpeningHours, OpeningHours{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: schemaDays[i],
			Opens:     r.Open.String(),
			Closes:    r.Close.String(),
		})
	}
	return d
}
