package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"housing-empire-ai/internal/entity"
)

type IKPIService interface {
	// LoadSnapshot re-reads the KPI file on every call.
	LoadSnapshot(ctx context.Context) (*entity.KPISnapshot, error)
}

type kpiService struct {
	path string
}

func NewKPIService(path string) IKPIService {
	return &kpiService{path: path}
}

func (s *kpiService) LoadSnapshot(ctx context.Context) (*entity.KPISnapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResource, err)
	}
	return ParseKPISnapshot(raw)
}

// ParseKPISnapshot decodes a KPI JSON object; keys it does not carry are zero.
func ParseKPISnapshot(raw []byte) (*entity.KPISnapshot, error) {
	var snapshot entity.KPISnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: KPI file: %v", ErrResource, err)
	}
	return &snapshot, nil
}
