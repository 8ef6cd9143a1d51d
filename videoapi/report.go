package videoapi

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout        = "2006-01-02"
	defaultReportDays = 30
)

// normalizeDates validates the query dates and fills missing ones: ToDate
// defaults to now and FromDate to thirty days before ToDate.
func normalizeDates(q AnalyticsQuery, now time.Time) (AnalyticsQuery, error) {
	to := now.UTC()
	if q.ToDate != "" {
		t, err := time.Parse(dateLayout, q.ToDate)
		if err != nil {
			return q, fmt.Errorf("invalid to_date %q: expected YYYY-MM-DD", q.ToDate)
		}
		to = t
	}

	from := to.AddDate(0, 0, -defaultReportDays)
	if q.FromDate != "" {
		t, err := time.Parse(dateLayout, q.FromDate)
		if err != nil {
			return q, fmt.Errorf("invalid from_date %q: expected YYYY-MM-DD", q.FromDate)
		}
		from = t
	}

	if from.After(to) {
		return q, fmt.Errorf("from_date %s is after to_date %s", from.Format(dateLayout), to.Format(dateLayout))
	}

	q.FromDate = from.Format(dateLayout)
	q.ToDate = to.Format(dateLayout)
	return q, nil
}

// reportDay converts YYYY-MM-DD to the platform's YYYYMMDD day format.
func reportDay(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// parseReportTable splits a report table's comma separated header and its
// data, whose rows are separated by ';'. Short rows leave trailing columns
// empty and extra cells are dropped.
func parseReportTable(header, data string) ([]string, []map[string]string) {
	headers := splitNonEmpty(header, ",")
	rows := make([]map[string]string, 0)

	for _, line := range splitNonEmpty(data, ";") {
		cells := strings.Split(line, ",")
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = strings.TrimSpace(cells[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return headers, rows
}

func splitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
