package ui

import "futsal/internal/services"

// reportLoadedMsg carries a freshly built analysis report
type reportLoadedMsg struct {
	report services.Report
}

// storeChangedMsg is sent when another process wrote to the store
type storeChangedMsg struct{}

// resizeSettledMsg fires once the terminal size stopped changing.
// Only the message carrying the latest generation is applied.
type resizeSettledMsg struct {
	generation int
	height     int
	width      int
}

// recordSavedMsg is sent when the record form finished saving
type recordSavedMsg struct {
	err error
}
