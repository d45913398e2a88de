package analyzer

// Verdict classifies a single URL found in a submission.
type Verdict int

const (
	VerdictSafe Verdict = iota
	VerdictPhishing
)

// Label returns the text shown next to the URL in the results panel.
func (v Verdict) Label() string {
	switch v {
	case VerdictSafe:
		return "Safe"
	case VerdictPhishing:
		return "Potential Phishing Attempt"
	default:
		return "Unknown"
	}
}

// Flagged reports whether the verdict should be rendered as a warning.
func (v Verdict) Flagged() bool {
	return v != VerdictSafe
}

// RiskLevel is the aggregate verdict shown in the Overall Safety banner.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskModerate
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "Low Risk"
	case RiskModerate:
		return "Moderate Risk"
	case RiskHigh:
		return "High Risk"
	default:
		return "Unknown Risk"
	}
}

// URLFinding pairs a URL with its reputation verdict.
type URLFinding struct {
	URL     string
	Verdict Verdict
}

// Line renders the finding the way the URL tab lists it.
func (f URLFinding) Line() string {
	return f.URL + " - " + f.Verdict.Label()
}

// Report is the outcome of one analysis run.
type Report struct {
	URLs                  []URLFinding
	HiddenContentDetected bool
	Risk                  RiskLevel
	RiskDetail            string
}

// HiddenContentLine is the single sentence shown on the Hidden Content tab.
func (r Report) HiddenContentLine() string {
	if r.HiddenContentDetected {
		return "Hidden content or steganography detected"
	}
	return "No hidden content or steganography detected"
}

// Banner is the Overall Safety text, eg. "Moderate Risk: Suspicious URL detected. Exercise caution."
func (r Report) Banner() string {
	if r.RiskDetail == "" {
		return r.Risk.String()
	}
	return r.Risk.String() + ": " + r.RiskDetail
}

// FixedReport returns the literal result every static run produces. The
// values do not depend on the submitted email or file.
func FixedReport() Report {
	return Report{
		URLs: []URLFinding{
			{URL: "https://example.com", Verdict: VerdictSafe},
			{URL: "https://suspicious-link.com", Verdict: VerdictPhishing},
		},
		HiddenContentDetected: false,
		Risk:                  RiskModerate,
		RiskDetail:            "Suspicious URL detected. Exercise caution.",
	}
}

// Tab identifies one section of the results panel.
type Tab int

const (
	TabURL Tab = iota
	TabHiddenContent
	TabOverallSafety
)

// Tabs lists the results panel sections in display order.
var Tabs = []Tab{TabURL, TabHiddenContent, TabOverallSafety}

func (t Tab) Title() string {
	switch t {
	case TabURL:
		return "URL Analysis"
	case TabHiddenContent:
		return "Hidden Content"
	case TabOverallSafety:
		return "Overall Safety"
	default:
		return ""
	}
}

// Next cycles to the neighbouring tab; delta is usually 1 or -1.
func (t Tab) Next(delta int) Tab {
	n := len(Tabs)
	idx := (int(t) + delta) % n
	if idx < 0 {
		idx += n
	}
	return Tabs[idx]
}
