package dto

import (
	"html/template"

	"housing-empire-ai/internal/entity"
)

type BannerLevel string

const (
	BannerSuccess BannerLevel = "success"
	BannerInfo    BannerLevel = "info"
	BannerWarning BannerLevel = "warning"
	BannerError   BannerLevel = "error"
)

type Banner struct {
	Level   BannerLevel
	Message string
}

type NavItem struct {
	Slug   string
	Title  string
	Active bool
}

// PageView is everything a page template can read. Fields a page does not
// use stay zero.
type PageView struct {
	AppTitle      string
	Page          entity.Page
	Nav           []NavItem
	LogoURL       string
	Banners       []Banner
	CredentialSet bool

	Modules    []string
	KPI        *entity.KPISnapshot
	Leads      *entity.LeadSet
	ManualHTML template.HTML
	DealTypes  []string
	Structures []string

	Form   GenerationRequest
	Result *GenerationResult
}

func (v *PageView) AddBanner(level BannerLevel, message string) {
	v.Banners = append(v.Banners, Banner{Level: level, Message: message})
}
