// Package model defines shared data structures.
package model

// Format selects how the ranked report is written.
type Format string

const (
	// FormatText writes one "<token> <count>" line per entry.
	FormatText Format = "text"
	// FormatSQLite exports the ranking into a SQLite database file.
	FormatSQLite Format = "sqlite"
)

// RunConfig holds the resolved options for one analysis run.
type RunConfig struct {
	InputPath        string
	StripPunctuation bool
	Lowercase        bool
	Stem             bool
	RemoveStopWords  bool
	ProperNouns      bool
	NFC              bool
	StopWordsFile    string

	OutputPath string
	Format     Format
	PlotPath   string
	Top        int
	TermPlot   bool
}

// WritesStdout reports whether the report goes to standard output.
func (c RunConfig) WritesStdout() bool {
	return c.OutputPath == "" || c.OutputPath == "-"
}

// Entry is a token together with its number of occurrences.
type Entry struct {
	Token string
	Count uint32
}

// Less orders entries by count, then token. Ranked lists use its reverse.
func (e Entry) Less(other Entry) bool {
	if e.Count != other.Count {
		return e.Count < other.Count
	}
	return e.Token < other.Token
}
