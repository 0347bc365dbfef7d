package model

type LocationStatus string

const (
	LocationActive    LocationStatus = "active"
	LocationCompleted LocationStatus = "completed"
	LocationScheduled LocationStatus = "scheduled"
)

var LocationStatuses = []string{string(LocationActive), string(LocationCompleted), string(LocationScheduled)}

// Location is a job site shown on the map page.
type Location struct {
	ID        int64          `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Address   string         `json:"address" yaml:"address"`
	Status    LocationStatus `json:"status" yaml:"status"`
	Time      string         `json:"time" yaml:"time"`
	Phone     string         `json:"phone" yaml:"phone"`
	Service   string         `json:"service" yaml:"service"`
	Latitude  float64        `json:"latitude" yaml:"latitude"`
	Longitude float64        `json:"longitude" yaml:"longitude"`
}

func (l Location) RecordID() int64 { return l.ID }

func (l Location) Kind() Kind { return KindLocation }

func (l Location) StatusValue() string { return string(l.Status) }

// Coordinates are passed to the map unmodified.
func (l Location) Coordinates() (float64, float64) { return l.Latitude, l.Longitude }

func (l Location) SearchFields() []string {
	return []string{l.Name, l.Address}
}

func (l Location) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv64(l.ID), true
	case "name":
		return l.Name, true
	case "address":
		return l.Address, true
	case "status":
		return string(l.Status), true
	case "time":
		return l.Time, true
	case "phone":
		return l.Phone, true
	case "service":
		return l.Service, true
	case "latitude":
		return ftoa(l.Latitude), true
	case "longitude":
		return ftoa(l.Longitude), true
	}
	return "", false
}
