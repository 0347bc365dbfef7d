package model

type JobStatus string

const (
	JobScheduled  JobStatus = "scheduled"
	JobInProgress JobStatus = "in-progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

type JobPriority string

const (
	PriorityHigh   JobPriority = "high"
	PriorityMedium JobPriority = "medium"
	PriorityLow    JobPriority = "low"
)

var (
	JobStatuses   = []string{string(JobScheduled), string(JobInProgress), string(JobCompleted), string(JobCancelled)}
	JobPriorities = []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}
)

type Job struct {
	ID          int64       `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Client      string      `json:"client" yaml:"client"`
	Address     string      `json:"address" yaml:"address"`
	Date        string      `json:"date" yaml:"date"`
	Time        string      `json:"time" yaml:"time"`
	Status      JobStatus   `json:"status" yaml:"status"`
	Priority    JobPriority `json:"priority" yaml:"priority"`
	Estimate    string      `json:"estimate" yaml:"estimate"`
	Duration    string      `json:"duration" yaml:"duration"`
	Description string      `json:"description" yaml:"description"`
}

func (j Job) RecordID() int64 { return j.ID }

func (j Job) Kind() Kind { return KindJob }

func (j Job) StatusValue() string { return string(j.Status) }

func (j Job) SearchFields() []string {
	return []string{j.Title, j.Client, j.Address}
}

func (j Job) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv64(j.ID), true
	case "title":
		return j.Title, true
	case "client":
		return j.Client, true
	case "address":
		return j.Address, true
	case "date":
		return j.Date, true
	case "time":
		return j.Time, true
	case "status":
		return string(j.Status), true
	case "priority":
		return string(j.Priority), true
	case "estimate":
		return j.Estimate, true
	case "duration":
		return j.Duration, true
	case "description":
		return j.Description, true
	}
	return "", false
}
