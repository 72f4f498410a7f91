package domain

// LineKind tells the shell how to style a scrollback line
type LineKind int

const (
	LineOutput LineKind = iota
	LineCommand
	LineError
	LineGame
)

// TerminalLine is one line of terminal scrollback
type TerminalLine struct {
	Kind LineKind
	Text string
}
