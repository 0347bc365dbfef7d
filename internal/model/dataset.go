package model

// Dataset is everything the dashboard shows, one ordered slice per kind.
type Dataset struct {
	Clients   []Client   `json:"clients" yaml:"clients"`
	Jobs      []Job      `json:"jobs" yaml:"jobs"`
	Quotes    []Quote    `json:"quotes" yaml:"quotes"`
	Services  []Service  `json:"services" yaml:"services"`
	Locations []Location `json:"locations" yaml:"locations"`
}

// Len returns the number of records of the given kind.
func (d Dataset) Len(k Kind) int {
	switch k {
	case KindClient:
		return len(d.Clients)
	case KindJob:
		return len(d.Jobs)
	case KindQuote:
		return len(d.Quotes)
	case KindService:
		return len(d.Services)
	case KindLocation:
		return len(d.Locations)
	}
	return 0
}
