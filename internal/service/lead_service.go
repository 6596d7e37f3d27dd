package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"housing-empire-ai/internal/entity"
	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/internal/pkg/metrics"
	"housing-empire-ai/pkg/events"
	"housing-empire-ai/pkg/store"
)

type ILeadService interface {
	// LoadLeads parses data as comma-delimited rows under a header row and
	// replaces the session's lead set. On ErrParse the previous set stays.
	LoadLeads(ctx context.Context, sess *store.Session, fileName string, data []byte) (*entity.LeadSet, error)
}

type leadService struct {
	publisher IPublisherService
	logger    logger.ILogger
}

func NewLeadService(publisher IPublisherService, log logger.ILogger) ILeadService {
	return &leadService{publisher: publisher, logger: log}
}

func (s *leadService) LoadLeads(ctx context.Context, sess *store.Session, fileName string, data []byte) (*entity.LeadSet, error) {
	leads, err := ParseLeads(data)
	if err != nil {
		metrics.LeadUploads.WithLabelValues("rejected").Inc()
		s.publisher.Publish(ctx, events.New(events.TypeLeadsRejected, map[string]interface{}{
			"session_id": sess.ID,
			"file_name":  fileName,
			"error":      err.Error(),
		}))
		return nil, err
	}
	leads.FileName = fileName
	sess.SetLeads(leads)
	metrics.LeadUploads.WithLabelValues("loaded").Inc()

	s.publisher.Publish(ctx, events.New(events.TypeLeadsLoaded, map[string]interface{}{
		"session_id": sess.ID,
		"file_name":  fileName,
		"rows":       len(leads.Rows),
		"columns":    len(leads.Columns),
	}))
	return leads, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseLeads reads a header row followed by data rows. Every row must have
// as many fields as the header. A header with no rows yields an empty set.
func ParseLeads(data []byte) (*entity.LeadSet, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: no columns to parse from file", ErrParse)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 0

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	columns := uniqueColumns(header)

	leads := &entity.LeadSet{Columns: columns, Rows: []entity.LeadRow{}}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		row := make(entity.LeadRow, len(columns))
		for i, col := range columns {
			row[col] = record[i]
		}
		leads.Rows = append(leads.Rows, row)
	}

	return leads, nil
}

// uniqueColumns trims header names and suffixes repeats (".1", ".2") so no
// column shadows another in a row map. Blank names become "Unnamed: <i>".
func uniqueColumns(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if _, dup := seen[name]; dup {
			base := name
			for n := seen[base] + 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[candidate]; !taken {
					seen[base] = n
					name = candidate
					break
				}
			}
		}
		seen[name] = 0
		out[i] = name
	}
	return out
}
