package entity

// KPISnapshot mirrors the KPI resource file. Absent keys stay zero.
type KPISnapshot struct {
	TotalLeads   int64   `json:"totalLeads"`
	ResponseRate float64 `json:"responseRate"`
	Conversions  int64   `json:"conversions"`
	CashFlow     float64 `json:"cashFlow"`
	ROI          float64 `json:"roi"`
}
