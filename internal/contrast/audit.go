// Package contrast audits component foreground/background token pairs
// against their required WCAG rating.
package contrast

import (
	"github.com/samber/lo"

	"github.com/jmylchreest/wex/internal/colour"
	"github.com/jmylchreest/wex/internal/tokens"
)

// Status is the audit outcome of a single pair.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	// StatusSkipped means a token was missing or unparseable.
	StatusSkipped Status = "skipped"
)

// Options tune an audit.
type Options struct {
	// Suggest attaches a passing foreground to every failing pair.
	Suggest bool
}

// Result is the audit of one contrast pair in one mode.
type Result struct {
	Pair       tokens.ContrastPair   `json:"pair"`
	Mode       tokens.Mode           `json:"mode"`
	Foreground string                `json:"foreground,omitempty"`
	Background string                `json:"background,omitempty"`
	Contrast   colour.ContrastResult `json:"contrast"`
	Status     Status                `json:"status"`
	// Reason explains a skipped pair.
	Reason string `json:"reason,omitempty"`
	// Suggestion is only set for failing pairs when requested.
	Suggestion *colour.RGB `json:"suggestion,omitempty"`
}

// Passed reports whether the pair met its requirement.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// Skipped reports whether the pair could not be evaluated.
func (r Result) Skipped() bool {
	return r.Status == StatusSkipped
}

// Report is the outcome of an audit, in pair order.
type Report struct {
	Mode    tokens.Mode `json:"mode"`
	Results []Result    `json:"results"`
}

// Summary counts results by status.
type Summary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Summary counts passed, failed and skipped pairs.
func (r Report) Summary() Summary {
	counts := lo.CountValuesBy(r.Results, func(res Result) Status { return res.Status })
	return Summary{
		Passed:  counts[StatusPass],
		Failed:  counts[StatusFail],
		Skipped: counts[StatusSkipped],
	}
}

// Failures returns the failing results.
func (r Report) Failures() []Result {
	return lo.Filter(r.Results, func(res Result, _ int) bool { return res.Status == StatusFail })
}

// OK reports whether no pair failed. Skipped pairs do not count as failures.
func (r Report) OK() bool {
	return r.Summary().Failed == 0
}

// Audit evaluates each pair against the token values of one mode.
func Audit(values map[string]string, mode tokens.Mode, pairs []tokens.ContrastPair, opts Options) Report {
	report := Report{Mode: mode, Results: make([]Result, 0, len(pairs))}
	for _, pair := range pairs {
		report.Results = append(report.Results, auditPair(values, mode, pair, opts))
	}
	return report
}

func auditPair(values map[string]string, mode tokens.Mode, pair tokens.ContrastPair, opts Options) Result {
	res := Result{Pair: pair, Mode: mode, Status: StatusSkipped}

	fgValue, ok := values[pair.Foreground]
	if !ok {
		res.Reason = "missing token " + pair.Foreground
		return res
	}
	bgValue, ok := values[pair.Background]
	if !ok {
		res.Reason = "missing token " + pair.Background
		return res
	}
	res.Foreground, res.Background = fgValue, bgValue

	fg, ok := colour.Parse(fgValue)
	if !ok {
		res.Reason = "unparseable colour for " + pair.Foreground
		return res
	}
	bg, ok := colour.Parse(bgValue)
	if !ok {
		res.Reason = "unparseable colour for " + pair.Background
		return res
	}

	res.Contrast = colour.Contrast(fg, bg)
	if res.Contrast.Rating.Meets(pair.Required()) {
		res.Status = StatusPass
		return res
	}

	res.Status = StatusFail
	if opts.Suggest {
		if s, ok := colour.SuggestForeground(fg, bg, pair.Required().MinRatio()); ok {
			res.Suggestion = &s
		}
	}
	return res
}
