package ui

// storeChangedMsg is sent when any store published a new snapshot
type storeChangedMsg struct{}

// pagerDoneMsg contains the result of the pager command
type pagerDoneMsg struct {
	err error
}
