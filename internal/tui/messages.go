package tui

type copiedMsg struct {
	err error
}
