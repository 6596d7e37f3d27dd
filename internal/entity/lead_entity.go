package entity

// LeadRow maps column name to the raw cell value.
type LeadRow map[string]string

// LeadSet is an uploaded deal-flow file. Columns keep header order.
type LeadSet struct {
	FileName string    `json:"file_name,omitempty"`
	Columns  []string  `json:"columns"`
	Rows     []LeadRow `json:"rows"`
}

func (l *LeadSet) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Rows)
}

// Cells returns the row's values in column order, for table rendering.
func (l *LeadSet) Cells(row LeadRow) []string {
	out := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = row[c]
	}
	return out
}
