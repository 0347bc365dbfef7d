package model

type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuotePending  QuoteStatus = "pending"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

var QuoteStatuses = []string{
	string(QuoteDraft), string(QuoteSent), string(QuotePending),
	string(QuoteAccepted), string(QuoteRejected),
}

type Quote struct {
	ID          int64       `json:"id" yaml:"id"`
	Number      string      `json:"number" yaml:"number"`
	Client      string      `json:"client" yaml:"client"`
	Service     string      `json:"service" yaml:"service"`
	Amount      string      `json:"amount" yaml:"amount"`
	Date        string      `json:"date" yaml:"date"`
	ValidUntil  string      `json:"valid_until" yaml:"valid_until"`
	Status      QuoteStatus `json:"status" yaml:"status"`
	Description string      `json:"description" yaml:"description"`
}

func (q Quote) RecordID() int64 { return q.ID }

func (q Quote) Kind() Kind { return KindQuote }

func (q Quote) StatusValue() string { return string(q.Status) }

func (q Quote) SearchFields() []string {
	return []string{q.Client, q.Service, q.Number}
}

func (q Quote) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv64(q.ID), true
	case "number":
		return q.Number, true
	case "client":
		return q.Client, true
	case "service":
		return q.Service, true
	case "amount":
		return q.Amount, true
	case "date":
		return q.Date, true
	case "validUntil":
		return q.ValidUntil, true
	case "status":
		return string(q.Status), true
	case "description":
		return q.Description, true
	}
	return "", false
}
