package domain

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	MinCapacity = 1
	MaxCapacity = 200

	// DepartureDateLayout is the only date format the flights API accepts.
	DepartureDateLayout = "2006-01-02"

	// FlightStatusProcessing marks a flight whose photo is still being processed.
	FlightStatusProcessing = "processing"
)

var flightCodePattern = regexp.MustCompile(`^[a-zA-Z]{6}$`)

type Flight struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Capacity      int    `json:"capacity"`
	DepartureDate string `json:"departureDate"`
	Img           string `json:"img,omitempty"`
	Status        string `json:"status,omitempty"`
}

// HasPhoto reports whether a photo can be fetched for the flight.
func (f Flight) HasPhoto() bool {
	return f.Img != "" && f.Status != FlightStatusProcessing
}

type FlightPage struct {
	Resources []Flight `json:"resources"`
	Count     int      `json:"count"`
}

// FlightFilter selects one page of the flight listing.
type FlightFilter struct {
	Page int    `json:"page"`
	Size int    `json:"size"`
	Code string `json:"code"`
}

func DefaultFlightFilter() FlightFilter {
	return FlightFilter{Page: DefaultPage, Size: DefaultPageSize}
}

// WithDefaults fills unset paging fields.
func (f FlightFilter) WithDefaults() FlightFilter {
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.Size == 0 {
		f.Size = DefaultPageSize
	}
	f.Code = strings.TrimSpace(f.Code)
	return f
}

// Valid reports whether page and size are in range.
func (f FlightFilter) Valid() bool {
	return f.Page > 0 && f.Size > 0 && f.Size <= MaxPageSize
}

// Query encodes the filter as query parameters. Empty values are omitted.
func (f FlightFilter) Query() url.Values {
	values := url.Values{}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		values.Set("size", strconv.Itoa(f.Size))
	}
	if f.Code != "" {
		values.Set("code", f.Code)
	}
	return values
}

// Apply moves from f to next. Changing anything other than the page starts
// over from the first page.
func (f FlightFilter) Apply(next FlightFilter) FlightFilter {
	if next.Size == f.Size && next.Code == f.Code {
		return next
	}
	next.Page = DefaultPage
	return next
}

// Photo is an image attached to a flight.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FlightInput carries the editable fields of a flight.
type FlightInput struct {
	ID            string
	Code          string
	Capacity      int
	DepartureDate string
	Photo         *Photo

	// PreviousCode is the code the flight had when it was loaded. Only
	// meaningful for updates.
	PreviousCode string
}

func (in FlightInput) IsUpdate() bool {
	return in.ID != ""
}

// CodeChanged reports whether the code needs an availability check before saving.
func (in FlightInput) CodeChanged() bool {
	if !in.IsUpdate() {
		return true
	}
	return in.PreviousCode != "" && !strings.EqualFold(in.PreviousCode, in.Code)
}

// Problems lists the field rules the input breaks.
func (in FlightInput) Problems() []string {
	var problems []string
	if !flightCodePattern.MatchString(in.Code) {
		problems = append(problems, "code must be 6 letters")
	}
	if in.Capacity < MinCapacity || in.Capacity > MaxCapacity {
		problems = append(problems, "capacity must be between 1 and 200")
	}
	if _, err := time.Parse(DepartureDateLayout, in.DepartureDate); err != nil {
		problems = append(problems, "departureDate must be formatted as YYYY-MM-DD")
	}
	return problems
}
