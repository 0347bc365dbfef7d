package model

import "strconv"

// Kind identifies which page a record belongs to.
type Kind string

const (
	KindClient   Kind = "client"
	KindJob      Kind = "job"
	KindQuote    Kind = "quote"
	KindService  Kind = "service"
	KindLocation Kind = "location"
)

// Kinds lists every record kind in tab order.
var Kinds = []Kind{KindClient, KindJob, KindQuote, KindService, KindLocation}

// Record is the capability every business record exposes to the filter and
// aggregate engines.
type Record interface {
	RecordID() int64
	Kind() Kind
	// Field returns the string form of a named field. Unknown names
	// return false.
	Field(name string) (string, bool)
	// SearchFields returns the values free-text search looks at.
	SearchFields() []string
}

// Statused is implemented by records that carry a status enum.
type Statused interface {
	Record
	StatusValue() string
}

// Located is implemented by records that can be placed on the map.
type Located interface {
	Record
	Coordinates() (lat, lng float64)
}

func itoa(n int) string { return strconv.Itoa(n) }

func strconv64(n int64) string { return strconv.FormatInt(n, 10) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
