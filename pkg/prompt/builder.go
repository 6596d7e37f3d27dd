package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"housing-empire-ai/internal/constant"
	"housing-empire-ai/internal/entity"
	"housing-empire-ai/pkg/llm"
)

// Heading is the banner shown above a successful completion.
func Heading(kind entity.GenerationKind) string {
	switch kind {
	case entity.GenerationAnalyze:
		return "GPT Analysis:"
	case entity.GenerationScript:
		return "GPT Script:"
	case entity.GenerationLOI:
		return "GPT LOI:"
	}
	return ""
}

// SystemInstruction returns the fixed system message for kind.
func SystemInstruction(kind entity.GenerationKind) (string, error) {
	switch kind {
	case entity.GenerationAnalyze:
		return constant.SystemPromptAnalyze, nil
	case entity.GenerationScript:
		return constant.SystemPromptScript, nil
	case entity.GenerationLOI:
		return constant.SystemPromptLOI, nil
	}
	return "", fmt.Errorf("no system instruction for kind %q", kind)
}

// UserInstruction interpolates fields into the kind's slash-command template.
func UserInstruction(kind entity.GenerationKind, f entity.GenerationFields) (string, error) {
	var b strings.Builder

	switch kind {
	case entity.GenerationAnalyze:
		b.WriteString("/analyze ")
		b.WriteString(f.Address)
	case entity.GenerationScript:
		b.WriteString("/script ")
		b.WriteString(f.DealType)
	case entity.GenerationLOI:
		b.WriteString("/loi ")
		b.WriteString(f.Structure)
		b.WriteString("\nSeller: ")
		b.WriteString(f.SellerName)
		b.WriteString("\nPrice: $")
		b.WriteString(FormatPrice(f.Price))
	default:
		return "", fmt.Errorf("no template for kind %q", kind)
	}

	return b.String(), nil
}

// Build returns the system + user message pair sent for one generation.
func Build(kind entity.GenerationKind, f entity.GenerationFields) ([]llm.Message, error) {
	system, err := SystemInstruction(kind)
	if err != nil {
		return nil, err
	}
	user, err := UserInstruction(kind, f)
	if err != nil {
		return nil, err
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, nil
}

// FormatPrice renders the shortest decimal that round-trips: 100000 -> "100000".
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
