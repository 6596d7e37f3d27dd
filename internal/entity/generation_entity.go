package entity

import "fmt"

type GenerationKind string

const (
	GenerationAnalyze GenerationKind = "analyze"
	GenerationScript  GenerationKind = "script"
	GenerationLOI     GenerationKind = "loi"
)

var AllGenerationKinds = []GenerationKind{GenerationAnalyze, GenerationScript, GenerationLOI}

func ParseGenerationKind(s string) (GenerationKind, error) {
	switch k := GenerationKind(s); k {
	case GenerationAnalyze, GenerationScript, GenerationLOI:
		return k, nil
	}
	return "", fmt.Errorf("unknown generation kind %q", s)
}

// GenerationFields are the free-text and numeric form values a prompt is
// built from. Each kind reads only its own fields.
type GenerationFields struct {
	Address    string
	DealType   string
	Structure  string
	SellerName string
	Price      float64
}
