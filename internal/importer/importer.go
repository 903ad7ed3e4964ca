package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"prizedraw/internal/domain"
)

type CompetitionWriter interface {
	Upsert(ctx context.Context, c domain.Competition) (*domain.Competition, error)
}

// CSVImporter loads a prize catalog export into the competitions table.
// Rows are keyed by title, so re-running an import refreshes prices and
// capacities without duplicating competitions or disturbing sold counts.
type CSVImporter struct {
	reader *csv.Reader
	repo   CompetitionWriter
}

func NewCSVImporter(r io.Reader, repo CompetitionWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader: csvr,
		repo:   repo,
	}
}

// Run parses CSV rows and upserts competitions, returning how many landed.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		comp, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if comp == nil {
			continue
		}

		if _, err := i.repo.Upsert(ctx, *comp); err != nil {
			return imported, fmt.Errorf("upsert competition %q: %w", comp.Title, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.Competition, error) {
	title := pick(record, index, "title")
	if title == "" {
		return nil, nil
	}

	priceStr := pick(record, index, "ticketPrice")
	totalStr := pick(record, index, "totalTickets")
	endStr := pick(record, index, "endDate")
	if priceStr == "" || totalStr == "" || endStr == "" {
		return nil, fmt.Errorf("competition %q: ticketPrice, totalTickets and endDate are required", title)
	}

	price, err := domain.ParseAmount(priceStr)
	if err != nil {
		return nil, fmt.Errorf("competition %q: %w", title, err)
	}
	total, err := strconv.Atoi(totalStr)
	if err != nil || total < 0 {
		return nil, fmt.Errorf("competition %q: invalid totalTickets %q", title, totalStr)
	}
	endDate, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return nil, fmt.Errorf("competition %q: invalid endDate %q", title, endStr)
	}

	return &domain.Competition{
		Title:        title,
		Description:  pick(record, index, "description"),
		Image:        pick(record, index, "image"),
		Category:     pick(record, index, "category"),
		TicketPrice:  price,
		TotalTickets: total,
		EndDate:      endDate,
		Featured:     strings.EqualFold(pick(record, index, "featured"), "true"),
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
