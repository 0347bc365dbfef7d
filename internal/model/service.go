package model

import "strings"

var ServiceCategories = []string{"Plumbing", "Electrical", "HVAC", "General", "Appliances"}

// Service is an offering in the price list. Services have no status; the
// page filters them by category instead.
type Service struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	BasePrice   string   `json:"base_price" yaml:"base_price"`
	AvgDuration string   `json:"avg_duration" yaml:"avg_duration"`
	Popularity  int      `json:"popularity" yaml:"popularity"`
	TotalJobs   int      `json:"total_jobs" yaml:"total_jobs"`
	Revenue     string   `json:"revenue" yaml:"revenue"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Tags        []string `json:"tags" yaml:"tags"`
}

func (s Service) RecordID() int64 { return s.ID }

func (s Service) Kind() Kind { return KindService }

func (s Service) SearchFields() []string {
	return []string{s.Name, s.Description}
}

func (s Service) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv64(s.ID), true
	case "name":
		return s.Name, true
	case "category":
		return s.Category, true
	case "description":
		return s.Description, true
	case "basePrice":
		return s.BasePrice, true
	case "avgDuration":
		return s.AvgDuration, true
	case "popularity":
		return itoa(s.Popularity), true
	case "totalJobs":
		return itoa(s.TotalJobs), true
	case "revenue":
		return s.Revenue, true
	case "rating":
		return ftoa(s.Rating), true
	case "tags":
		return strings.Join(s.Tags, ", "), true
	}
	return "", false
}
