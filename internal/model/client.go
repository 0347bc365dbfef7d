package model

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// ClientStatuses is the closed set of client statuses.
var ClientStatuses = []string{string(ClientActive), string(ClientInactive)}

type Client struct {
	ID         int64        `json:"id" yaml:"id"`
	Name       string       `json:"name" yaml:"name"`
	Email      string       `json:"email" yaml:"email"`
	Phone      string       `json:"phone" yaml:"phone"`
	Address    string       `json:"address" yaml:"address"`
	LastJob    string       `json:"last_job" yaml:"last_job"`
	TotalJobs  int          `json:"total_jobs" yaml:"total_jobs"`
	TotalSpent string       `json:"total_spent" yaml:"total_spent"`
	Status     ClientStatus `json:"status" yaml:"status"`
	Avatar     string       `json:"avatar" yaml:"avatar"`
}

func (c Client) RecordID() int64 { return c.ID }

func (c Client) Kind() Kind { return KindClient }

func (c Client) StatusValue() string { return string(c.Status) }

func (c Client) SearchFields() []string {
	return []string{c.Name, c.Email, c.Phone}
}

func (c Client) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv64(c.ID), true
	case "name":
		return c.Name, true
	case "email":
		return c.Email, true
	case "phone":
		return c.Phone, true
	case "address":
		return c.Address, true
	case "lastJob":
		return c.LastJob, true
	case "totalJobs":
		return itoa(c.TotalJobs), true
	case "totalSpent":
		return c.TotalSpent, true
	case "status":
		return string(c.Status), true
	case "avatar":
		return c.Avatar, true
	}
	return "", false
}
