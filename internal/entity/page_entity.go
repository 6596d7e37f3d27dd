package entity

// Page is one view of the dashboard's navigation.
type Page int

const (
	PageHome Page = iota
	PageSettings
	PageDashboard
	PageLeadIntake
	PageDealAnalyzer
	PageCalculators
	PageScriptGenerator
	PageLOIBuilder
	PageEmpireManual
)

// AllPages is the navigation order.
var AllPages = []Page{
	PageHome,
	PageSettings,
	PageDashboard,
	PageLeadIntake,
	PageDealAnalyzer,
	PageCalculators,
	PageScriptGenerator,
	PageLOIBuilder,
	PageEmpireManual,
}

type pageMeta struct {
	title string
	slug  string
}

var pages = map[Page]pageMeta{
	PageHome:            {title: "Home", slug: "home"},
	PageSettings:        {title: "Settings (API Key)", slug: "settings"},
	PageDashboard:       {title: "Dashboard", slug: "dashboard"},
	PageLeadIntake:      {title: "Lead Intake", slug: "lead-intake"},
	PageDealAnalyzer:    {title: "Deal Analyzer", slug: "deal-analyzer"},
	PageCalculators:     {title: "Calculators", slug: "calculators"},
	PageScriptGenerator: {title: "Script Generator", slug: "script-generator"},
	PageLOIBuilder:      {title: "LOI Builder", slug: "loi-builder"},
	PageEmpireManual:    {title: "Empire Manual", slug: "empire-manual"},
}

var pagesBySlug = func() map[string]Page {
	out := make(map[string]Page, len(pages))
	for p, m := range pages {
		out[m.slug] = p
	}
	return out
}()

func (p Page) Title() string {
	return pages[p].title
}

func (p Page) Slug() string {
	return pages[p].slug
}

func (p Page) String() string {
	return p.Title()
}

func (p Page) Valid() bool {
	_, ok := pages[p]
	return ok
}

func ParsePage(slug string) (Page, bool) {
	p, ok := pagesBySlug[slug]
	return p, ok
}
