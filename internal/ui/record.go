package ui

import (
	"fmt"
	"strings"

	"github.com/altinukshini/fieldops/internal/model"
)

// Field is one labelled value of a record.
type Field struct {
	Label string
	Value string
}

// Card is the display form of a record shared by rows, cards and the
// detail modal.
type Card struct {
	Title    string
	Subtitle string
	Status   string
	// Lines are the short facts shown on a grid card.
	Lines []string
	// Fields are shown in the detail modal.
	Fields      []Field
	Description string
}

// Describe builds the Card for any record kind.
func Describe(r model.Record) Card {
	switch v := r.(type) {
	case model.Client:
		return Card{
			Title:    v.Name,
			Subtitle: v.Email,
			Status:   string(v.Status),
			Lines: []string{
				v.Phone,
				fmt.Sprintf("%d jobs · %s", v.TotalJobs, v.TotalSpent),
				"Last job " + v.LastJob,
			},
			Fields: []Field{
				{"Email", v.Email},
				{"Phone", v.Phone},
				{"Address", v.Address},
				{"Total jobs", fmt.Sprint(v.TotalJobs)},
				{"Total spent", v.TotalSpent},
				{"Last job", v.LastJob},
				{"Status", string(v.Status)},
			},
		}
	case model.Job:
		return Card{
			Title:    v.Title,
			Subtitle: v.Client,
			Status:   string(v.Status),
			Lines: []string{
				v.Date + " " + v.Time,
				string(v.Priority) + " priority",
				v.Estimate + " · " + v.Duration,
			},
			Fields: []Field{
				{"Client", v.Client},
				{"Address", v.Address},
				{"Date", v.Date + " " + v.Time},
				{"Duration", v.Duration},
				{"Estimate", v.Estimate},
				{"Priority", string(v.Priority)},
				{"Status", string(v.Status)},
			},
			Description: v.Description,
		}
	case model.Quote:
		return Card{
			Title:    v.Number,
			Subtitle: v.Client,
			Status:   string(v.Status),
			Lines: []string{
				v.Service,
				v.Amount,
				"Valid until " + v.ValidUntil,
			},
			Fields: []Field{
				{"Client", v.Client},
				{"Service", v.Service},
				{"Amount", v.Amount},
				{"Date", v.Date},
				{"Valid until", v.ValidUntil},
				{"Status", string(v.Status)},
			},
			Description: v.Description,
		}
	case model.Service:
		return Card{
			Title:    v.Name,
			Subtitle: v.Category,
			Lines: []string{
				v.BasePrice + " · " + v.AvgDuration,
				fmt.Sprintf("★ %.1f · %d jobs", v.Rating, v.TotalJobs),
				v.Revenue + " revenue",
			},
			Fields: []Field{
				{"Category", v.Category},
				{"Base price", v.BasePrice},
				{"Avg. duration", v.AvgDuration},
				{"Popularity", fmt.Sprintf("%d%%", v.Popularity)},
				{"Total jobs", fmt.Sprint(v.TotalJobs)},
				{"Revenue", v.Revenue},
				{"Rating", fmt.Sprintf("%.1f", v.Rating)},
				{"Tags", strings.Join(v.Tags, ", ")},
			},
			Description: v.Description,
		}
	case model.Location:
		return Card{
			Title:    v.Name,
			Subtitle: v.Address,
			Status:   string(v.Status),
			Lines: []string{
				v.Service,
				v.Time,
				v.Phone,
			},
			Fields: []Field{
				{"Address", v.Address},
				{"Service", v.Service},
				{"Time", v.Time},
				{"Phone", v.Phone},
				{"Status", string(v.Status)},
				{"Coordinates", fmt.Sprintf("%.4f, %.4f", v.Latitude, v.Longitude)},
			},
		}
	}
	return Card{Title: fmt.Sprintf("%s #%d", r.Kind(), r.RecordID())}
}
