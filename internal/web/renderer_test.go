package web

import (
	"bytes"
	"html/template"
	"testing"

	"housing-empire-ai/internal/dto"
	"housing-empire-ai/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, r *Renderer, view *dto.PageView) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, view))
	return buf.String()
}

func TestRenderEveryPageWithEmptyView(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range entity.AllPages {
		t.Run(page.Slug(), func(t *testing.T) {
			out := render(t, r, &dto.PageView{AppTitle: "JB Housing Empire AI System", Page: page})
			assert.Contains(t, out, "<title>"+template.HTMLEscapeString(page.Title()))
			assert.Contains(t, out, "JB Housing Empire AI System")
		})
	}
}

func TestRenderDashboard(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out := render(t, r, &dto.PageView{
		Page: entity.PageDashboard,
		KPI:  &entity.KPISnapshot{TotalLeads: 42, ResponseRate: 12.5, CashFlow: 1500, ROI: 8},
	})

	assert.Contains(t, out, "<strong>Total Leads:</strong> 42")
	assert.Contains(t, out, "<strong>Response Rate:</strong> 12.5%")
	assert.Contains(t, out, "<strong>Conversions:</strong> 0")
	assert.Contains(t, out, "<strong>Cash Flow:</strong> $1500")
	assert.Contains(t, out, "<strong>ROI:</strong> 8%")
}

func TestRenderLeadTableInColumnOrder(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out := render(t, r, &dto.PageView{
		Page: entity.PageLeadIntake,
		Leads: &entity.LeadSet{
			FileName: "deal_flow.csv",
			Columns:  []string{"Name", "Phone"},
			Rows:     []entity.LeadRow{{"Phone": "555", "Name": "<b>Jane</b>"}},
		},
	})

	assert.Contains(t, out, "<th>Name</th><th>Phone</th>")
	assert.Contains(t, out, "<td>&lt;b&gt;Jane&lt;/b&gt;</td><td>555</td>")
	assert.Contains(t, out, "deal_flow.csv: 1 rows")
}

func TestRenderBannersAndResult(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	view := &dto.PageView{
		Page:   entity.PageLOIBuilder,
		Form:   dto.GenerationRequest{Structure: "Wrap", SellerName: "Jane Doe", Price: 100000},
		Result: &dto.GenerationResult{Content: "Dear <Seller>"},
		Nav:    []dto.NavItem{{Slug: "loi-builder", Title: "LOI Builder", Active: true}},
	}
	view.AddBanner(dto.BannerSuccess, "GPT LOI:")
	out := render(t, r, view)

	assert.Contains(t, out, `<div class="banner success">GPT LOI:</div>`)
	assert.Contains(t, out, `<pre class="result">Dear &lt;Seller&gt;</pre>`)
	assert.Contains(t, out, `<option value="Wrap" selected>`)
	assert.Contains(t, out, `value="100000"`)
	assert.Contains(t, out, `<a href="/pages/loi-builder" class="active">LOI Builder</a>`)
}

func TestRenderManualIsNotEscaped(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out := render(t, r, &dto.PageView{Page: entity.PageEmpireManual, ManualHTML: template.HTML("<h1>Rules</h1>")})
	assert.Contains(t, out, "<article><h1>Rules</h1></article>")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, &dto.PageView{Page: entity.Page(99)}))
	assert.Zero(t, buf.Len())
}
