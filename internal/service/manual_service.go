package service

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"sync"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

type IManualService interface {
	// Render reads the manual and returns it as sanitized HTML.
	Render(ctx context.Context) (template.HTML, error)
}

type manualService struct {
	path string
}

func NewManualService(path string) IManualService {
	return &manualService{path: path}
}

func (s *manualService) Render(ctx context.Context) (template.HTML, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResource, err)
	}
	return RenderMarkdown(raw), nil
}

var (
	manualPolicyOnce sync.Once
	manualPolicy     *bluemonday.Policy
)

func manualSanitizer() *bluemonday.Policy {
	manualPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		manualPolicy = policy
	})
	return manualPolicy
}

// RenderMarkdown converts markdown to HTML and strips anything unsafe.
func RenderMarkdown(src []byte) template.HTML {
	// parsers keep state between documents, so one per call
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags,
	})

	out := markdown.ToHTML(src, p, renderer)
	return template.HTML(manualSanitizer().SanitizeBytes(out))
}
