package landing

// Anchor names a scroll target on the page.
type Anchor string

const (
	AnchorHero       Anchor = "hero"
	AnchorFeatures   Anchor = "features"
	AnchorHowItWorks Anchor = "how-it-works"
	AnchorAnalyzer   Anchor = "analyzer"
	AnchorResults    Anchor = "results"
)

// NavItem is one link in the top bar.
type NavItem struct {
	Key    string
	Label  string
	Anchor Anchor
}

// Feature is a product feature card.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Step represents one numbered stage of the "how it works" list.
type Step struct {
	Number      int
	Title       string
	Description string
}

// Hero is the headline block at the top of the page.
type Hero struct {
	Headline string
	Tagline  string
	CTA      string
}

// AnalyzerCopy is the static text surrounding the analyzer widget.
type AnalyzerCopy struct {
	SectionTitle   string
	CardTitle      string
	CardSubtitle   string
	Placeholder    string
	DropzonePrompt string
	ButtonIdle     string
	ButtonBusy     string
	ResultsTitle   string
	ReportButton   string
}

// Page is everything the landing page says.
type Page struct {
	Brand           string
	Nav             []NavItem
	Hero            Hero
	FeaturesTitle   string
	Features        []Feature
	HowItWorksTitle string
	Steps           []Step
	Analyzer        AnalyzerCopy
}

// Sections lists scroll targets top to bottom.
var Sections = []Anchor{
	AnchorHero,
	AnchorFeatures,
	AnchorHowItWorks,
	AnchorAnalyzer,
	AnchorResults,
}

// SafeGuard returns the copy for the SafeGuard landing page.
func SafeGuard() Page {
	return Page{
		Brand: "SafeGuard",
		Nav: []NavItem{
			{Key: "1", Label: "Features", Anchor: AnchorFeatures},
			{Key: "2", Label: "How It Works", Anchor: AnchorHowItWorks},
			{Key: "3", Label: "Analyzer", Anchor: AnchorAnalyzer},
		},
		Hero: Hero{
			Headline: "Fortify Your Inbox with AI",
			Tagline:  "SafeGuard employs cutting-edge AI to detect and neutralize email threats before they reach you.",
			CTA:      "Analyze Your Email Now",
		},
		FeaturesTitle: "Unparalleled Email Protection",
		Features: []Feature{
			{
				Icon:        "⛨",
				Title:       "AI-Powered Defense",
				Description: "Our advanced AI algorithms provide real-time protection against evolving email threats.",
			},
			{
				Icon:        "ϟ",
				Title:       "Lightning-Fast Analysis",
				Description: "Scan and analyze emails in milliseconds, ensuring your productivity isn't compromised.",
			},
			{
				Icon:        "◉",
				Title:       "Deep Content Inspection",
				Description: "Go beyond surface-level scans with our thorough content and attachment analysis.",
			},
		},
		HowItWorksTitle: "How SafeGuard Works",
		Steps: []Step{
			{
				Number:      1,
				Title:       "Email Submission",
				Description: "Simply paste your email content or upload an email file to our secure platform.",
			},
			{
				Number:      2,
				Title:       "AI Analysis",
				Description: "Our advanced AI scans every aspect of the email, including links, attachments, and hidden content.",
			},
			{
				Number:      3,
				Title:       "Threat Detection",
				Description: "Potential threats are identified and categorized based on their level of risk.",
			},
			{
				Number:      4,
				Title:       "Detailed Reporting",
				Description: "Receive a comprehensive report outlining any detected threats and recommended actions.",
			},
		},
		Analyzer: AnalyzerCopy{
			SectionTitle:   "Email Threat Analyzer",
			CardTitle:      "Analyze Your Email",
			CardSubtitle:   "Paste your email content or upload a file for instant analysis",
			Placeholder:    "Paste your email content here...",
			DropzonePrompt: "Press u to upload a file",
			ButtonIdle:     "Analyze Now",
			ButtonBusy:     "Analyzing...",
			ResultsTitle:   "Analysis Results",
			ReportButton:   "Download Detailed Report",
		},
	}
}

// NavFor returns the nav item bound to key.
func (p Page) NavFor(key string) (NavItem, bool) {
	for _, item := range p.Nav {
		if item.Key == key {
			return item, true
		}
	}
	return NavItem{}, false
}
