package ui

// OpenDetailMsg asks the app to show the detail modal for a record of the
// current page.
type OpenDetailMsg struct {
	ID int64
}

// OpenFilterMsg asks the app to show the filter panel for the current page.
type OpenFilterMsg struct{}

type StatusMsg struct {
	Text string
}
