// Package listing fetches pages of records from a server-paginated listing API.
package listing

import "strconv"

// Artwork is a single record returned by the artworks listing endpoint.
// Only ID participates in selection matching; the remaining fields are
// display data.
type Artwork struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     *int   `json:"date_start"`
	DateEnd       *int   `json:"date_end"`
}

// Key returns the stable identity of the artwork.
func (a Artwork) Key() string {
	return strconv.Itoa(a.ID)
}

// DefaultFields lists the artwork fields requested from the API. They match
// the columns rendered by the table view.
var DefaultFields = []string{
	"id",
	"title",
	"place_of_origin",
	"artist_display",
	"inscriptions",
	"date_start",
	"date_end",
}

// Page is one fetched slice of records plus the total number of records
// the server reports for the whole listing.
type Page[R any] struct {
	Records []R
	Total   int
}
