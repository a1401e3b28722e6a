package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightFilter_WithDefaultsAndValid_TableDriven(t *testing.T) {
	tests := []struct {
		name   string
		filter FlightFilter
		expect FlightFilter
		valid  bool
	}{
		{name: "zero value gets defaults", filter: FlightFilter{}, expect: FlightFilter{Page: 1, Size: 10}, valid: true},
		{name: "code is trimmed", filter: FlightFilter{Page: 2, Size: 20, Code: " abcdef "}, expect: FlightFilter{Page: 2, Size: 20, Code: "abcdef"}, valid: true},
		{name: "negative page is kept and invalid", filter: FlightFilter{Page: -1}, expect: FlightFilter{Page: -1, Size: 10}, valid: false},
		{name: "size above max is invalid", filter: FlightFilter{Size: MaxPageSize + 1}, expect: FlightFilter{Page: 1, Size: MaxPageSize + 1}, valid: false},
		{name: "max size is valid", filter: FlightFilter{Size: MaxPageSize}, expect: FlightFilter{Page: 1, Size: MaxPageSize}, valid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.WithDefaults()
			assert.Equal(t, tc.expect, got)
			assert.Equal(t, tc.valid, got.Valid())
		})
	}
}

func TestFlightFilter_Query(t *testing.T) {
	assert.Equal(t, "page=3&size=25", FlightFilter{Page: 3, Size: 25}.Query().Encode())
	assert.Equal(t, "code=ABCDEF&page=1&size=10", FlightFilter{Page: 1, Size: 10, Code: "ABCDEF"}.Query().Encode())
	assert.Empty(t, FlightFilter{}.Query())
}

func TestFlightFilter_Apply_TableDriven(t *testing.T) {
	current := FlightFilter{Page: 4, Size: 10, Code: "AB"}

	tests := []struct {
		name   string
		next   FlightFilter
		expect FlightFilter
	}{
		{name: "page change is kept", next: FlightFilter{Page: 5, Size: 10, Code: "AB"}, expect: FlightFilter{Page: 5, Size: 10, Code: "AB"}},
		{name: "size change resets page", next: FlightFilter{Page: 5, Size: 20, Code: "AB"}, expect: FlightFilter{Page: 1, Size: 20, Code: "AB"}},
		{name: "code change resets page", next: FlightFilter{Page: 4, Size: 10, Code: "ABC"}, expect: FlightFilter{Page: 1, Size: 10, Code: "ABC"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, current.Apply(tc.next))
		})
	}
}

func TestFlightInput_Problems_TableDriven(t *testing.T) {
	tests := []struct {
		name   string
		input  FlightInput
		expect []string
	}{
		{
			name:  "valid input",
			input: FlightInput{Code: "ABCdef", Capacity: 200, DepartureDate: "2026-01-31"},
		},
		{
			name:   "code with digits",
			input:  FlightInput{Code: "ABC123", Capacity: 1, DepartureDate: "2026-01-31"},
			expect: []string{"code must be 6 letters"},
		},
		{
			name:  "everything wrong",
			input: FlightInput{Code: "ABCDEFG", Capacity: 201, DepartureDate: "31/01/2026"},
			expect: []string{
				"code must be 6 letters",
				"capacity must be between 1 and 200",
				"departureDate must be formatted as YYYY-MM-DD",
			},
		},
		{
			name:   "zero capacity",
			input:  FlightInput{Code: "ABCDEF", Capacity: 0, DepartureDate: "2026-02-28"},
			expect: []string{"capacity must be between 1 and 200"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.input.Problems())
		})
	}
}

func TestFlightInput_CodeChanged_TableDriven(t *testing.T) {
	tests := []struct {
		name   string
		input  FlightInput
		expect bool
	}{
		{name: "create always checks", input: FlightInput{Code: "ABCDEF"}, expect: true},
		{name: "update with same code", input: FlightInput{ID: "1", Code: "abcdef", PreviousCode: "ABCDEF"}, expect: false},
		{name: "update with new code", input: FlightInput{ID: "1", Code: "ZZZZZZ", PreviousCode: "ABCDEF"}, expect: true},
		{name: "update without previous code", input: FlightInput{ID: "1", Code: "ZZZZZZ"}, expect: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.input.CodeChanged())
		})
	}
}

func TestFlight_HasPhoto(t *testing.T) {
	assert.True(t, Flight{Img: "a.png"}.HasPhoto())
	assert.False(t, Flight{Img: "a.png", Status: FlightStatusProcessing}.HasPhoto())
	assert.False(t, Flight{}.HasPhoto())
}
