package contrast

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/wex/internal/colour"
	"github.com/jmylchreest/wex/internal/theme"
	"github.com/jmylchreest/wex/internal/tokens"
)

func TestAuditDefaultTheme(t *testing.T) {
	th := theme.Default()
	pairs := tokens.ContrastPairs()

	for _, mode := range tokens.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			report := Audit(th.Values(mode), mode, pairs, Options{})

			want := Summary{Passed: len(pairs)}
			if diff := cmp.Diff(want, report.Summary()); diff != "" {
				for _, f := range report.Failures() {
					t.Logf("%s: %.2f (%s)", f.Pair.Name, f.Contrast.Ratio, f.Contrast.Rating)
				}
				t.Errorf("summary mismatch (-want +got):\n%s", diff)
			}
			if !report.OK() {
				t.Error("OK() = false for default theme")
			}
		})
	}
}

func TestAuditStatuses(t *testing.T) {
	values := map[string]string{
		"--fg-good":  "#000000",
		"--fg-weak":  "#999999",
		"--fg-bad":   "nonsense",
		"--bg-white": "#ffffff",
	}

	tests := []struct {
		name   string
		pair   tokens.ContrastPair
		status Status
		rating colour.Rating
	}{
		{
			name:   "black on white",
			pair:   tokens.ContrastPair{Name: "good", Foreground: "--fg-good", Background: "--bg-white"},
			status: StatusPass,
			rating: colour.RatingAAA,
		},
		{
			name:   "light grey on white",
			pair:   tokens.ContrastPair{Name: "weak", Foreground: "--fg-weak", Background: "--bg-white"},
			status: StatusFail,
			rating: colour.RatingFail,
		},
		{
			name:   "missing background",
			pair:   tokens.ContrastPair{Name: "missing", Foreground: "--fg-good", Background: "--bg-absent"},
			status: StatusSkipped,
		},
		{
			name:   "unparseable foreground",
			pair:   tokens.ContrastPair{Name: "bad", Foreground: "--fg-bad", Background: "--bg-white"},
			status: StatusSkipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Audit(values, tokens.Light, []tokens.ContrastPair{tt.pair}, Options{})
			res := report.Results[0]

			if res.Status != tt.status {
				t.Errorf("Status = %s, want %s", res.Status, tt.status)
			}
			if tt.status != StatusSkipped && res.Contrast.Rating != tt.rating {
				t.Errorf("Rating = %s, want %s", res.Contrast.Rating, tt.rating)
			}
			if res.Skipped() && res.Reason == "" {
				t.Error("skipped result has no reason")
			}
			if res.Suggestion != nil {
				t.Error("suggestion set without Options.Suggest")
			}
		})
	}
}

func TestAuditLargeTextRequirement(t *testing.T) {
	// #949494 on white is about 3.03:1.
	values := map[string]string{"--fg": "#949494", "--bg": "#ffffff"}

	normal := tokens.ContrastPair{Name: "normal", Foreground: "--fg", Background: "--bg"}
	large := tokens.ContrastPair{Name: "large", Foreground: "--fg", Background: "--bg", LargeText: true}

	report := Audit(values, tokens.Light, []tokens.ContrastPair{normal, large}, Options{})

	if report.Results[0].Passed() {
		t.Error("normal text pair should need AA")
	}
	if !report.Results[1].Passed() {
		t.Errorf("large text pair should pass at %.2f", report.Results[1].Contrast.Ratio)
	}
}

func TestAuditSuggest(t *testing.T) {
	values := map[string]string{"--fg": "#999999", "--bg": "#ffffff"}
	pair := tokens.ContrastPair{Name: "weak", Foreground: "--fg", Background: "--bg"}

	report := Audit(values, tokens.Dark, []tokens.ContrastPair{pair}, Options{Suggest: true})
	res := report.Results[0]

	if res.Suggestion == nil {
		t.Fatal("expected a suggestion for a failing pair")
	}
	if ratio := colour.ContrastRatio(*res.Suggestion, colour.MustParse("#ffffff")); ratio < colour.ThresholdAA {
		t.Errorf("suggested %s only reaches %.2f", res.Suggestion.Hex(), ratio)
	}
	if report.Mode != tokens.Dark || res.Mode != tokens.Dark {
		t.Error("mode not recorded")
	}
}

func TestReportSummary(t *testing.T) {
	report := Report{Results: []Result{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusFail},
		{Status: StatusSkipped},
	}}

	if diff := cmp.Diff(Summary{Passed: 2, Failed: 1, Skipped: 1}, report.Summary()); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
	if report.OK() {
		t.Error("OK() = true with a failure")
	}
	if got := len(report.Failures()); got != 1 {
		t.Errorf("Failures() = %d, want 1", got)
	}

	skippedOnly := Report{Results: []Result{{Status: StatusSkipped}}}
	if !skippedOnly.OK() {
		t.Error("skipped pairs must not count as failures")
	}
}
