package constant

const (
	AppTitle = "JB Housing Empire AI System"

	MessageCredentialSaved   = "API Key saved in session."
	MessageCredentialCleared = "API Key cleared from session."
	MessageMissingCredential = "Please enter your API key in the Settings tab."
	MessageGenerationBusy    = "A generation request is already running. Wait for it to finish."
	MessageCalculators       = "Use other tabs for full calculators (SubTo, Seller Finance, etc.)"
	MessageNoLeadFile        = "Choose a CSV file to upload."
)

// HomeModules is the module list on the landing page.
var HomeModules = []string{
	"Lead Scraping & CRM",
	"Full Deal Analyzer",
	"GPT-Powered Script Builder",
	"LOI Templates",
	"Multifamily Underwriting",
	"Empire Training Manual",
}

// DealTypes are the Script Generator's deal-type tags.
var DealTypes = []string{"SubTo", "Wrap", "Seller Finance", "Cash", "Hybrid"}

// DealStructures are the LOI Builder's deal-structure tags.
var DealStructures = []string{"SubTo", "Seller Finance", "Wrap", "Hybrid"}
