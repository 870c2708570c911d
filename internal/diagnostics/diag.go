package diagnostics

import (
	"github.com/rs/zerolog"
)

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	LikelyCauses   []string       `json:"likely_causes,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
}

// List collects what went differently from the configured hardware while the
// board was being brought up.
type List []Diagnostic

func (l *List) Add(d Diagnostic) {
	*l = append(*l, d)
}

// Worst is the highest severity in the list, "" when empty.
func (l List) Worst() Severity {
	var worst Severity
	for _, d := range l {
		if rank(d.Severity) > rank(worst) {
			worst = d.Severity
		}
	}
	return worst
}

// Log writes each diagnostic at the level matching its severity.
func (l List) Log(logger zerolog.Logger) {
	for _, d := range l {
		ev := logger.WithLevel(level(d.Severity)).Str("code", d.Code)
		if d.Detail != "" {
			ev = ev.Str("detail", d.Detail)
		}
		if len(d.LikelyCauses) > 0 {
			ev = ev.Strs("causes", d.LikelyCauses)
		}
		if len(d.SuggestedFixes) > 0 {
			ev = ev.Strs("fixes", d.SuggestedFixes)
		}
		if len(d.Evidence) > 0 {
			ev = ev.Fields(d.Evidence)
		}
		ev.Msg(d.Summary)
	}
}

func rank(s Severity) int {
	switch s {
	case Info:
		return 1
	case Warn:
		return 2
	case Err:
		return 3
	}
	return 0
}

func level(s Severity) zerolog.Level {
	switch s {
	case Warn:
		return zerolog.WarnLevel
	case Err:
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}
