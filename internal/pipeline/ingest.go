package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"geo-density-pipeline/internal/metrics"
	"geo-density-pipeline/internal/model"
)

// ------------------- Ingestion -------------------

// Record sources yield (surname, address) pairs. Stage logs report counts
// only; a raw record's fields never reach a log line.

// IngestSource starts ingestion for a single record source.
func IngestSource(ctx context.Context, source model.Source, out chan<- model.RawRecord, errors chan<- error, stats *RunStats) {
	fmt.Printf("➡️ Starting ingestion for source: %s (%s)\n", source.URL, source.Type)
	defer fmt.Printf("✅ Finished ingestion for source: %s (%s)\n", source.URL, source.Type)

	switch strings.ToLower(source.Type) {
	case "", "csv":
		ingestCSV(ctx, source, out, errors, stats)
	default:
		errors <- fmt.Errorf("unknown source type: %s", source.Type)
	}
}

// StartIngestion starts ingestion for all sources in parallel
func StartIngestion(ctx context.Context, sources []model.Source, out chan<- model.RawRecord, errors chan<- error, stats *RunStats) {
	var wg sync.WaitGroup

	for _, src := range sources {
		wg.Add(1)
		go func(s model.Source) {
			defer wg.Done()
			IngestSource(ctx, s, out, errors, stats)
		}(src)
	}

	wg.Wait() // wait for all ingestion goroutines
}

// ------------------- CSV Ingestion -------------------

func ingestCSV(ctx context.Context, source model.Source, out chan<- model.RawRecord, errors chan<- error, stats *RunStats) {
	var reader io.Reader
	if strings.HasPrefix(source.URL, "http") {
		resp, err := http.Get(source.URL)
		if err != nil {
			errors <- fmt.Errorf("failed to GET CSV: %w", err)
			return
		}
		defer resp.Body.Close()
		reader = resp.Body
	} else {
		file, err := os.Open(source.URL)
		if err != nil {
			errors <- fmt.Errorf("failed to open CSV file: %w", err)
			return
		}
		defer file.Close()
		reader = file
	}

	csvReader := csv.NewReader(reader)
	csvReader.LazyQuotes = true
	headers, err := csvReader.Read()
	if err != nil {
		errors <- fmt.Errorf("failed to read CSV header: %w", err)
		return
	}

	surnameIdx, addressIdxs, err := columnIndexes(headers, source)
	if err != nil {
		errors <- err
		return
	}

	recordCount := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
			record, err := csvReader.Read()
			if err == io.EOF {
				fmt.Printf("📄 CSV ingestion done: %d records read from %s\n", recordCount, source.URL)
				return
			} else if err != nil {
				errors <- fmt.Errorf("CSV read error: %w", err)
				continue
			}

			raw, ok := buildRecord(record, surnameIdx, addressIdxs)
			if !ok {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- raw:
				recordCount++
				stats.AddIngested(1)
				metrics.RecordsIngestedTotal.Inc()
				if recordCount%5000 == 0 {
					fmt.Printf("📄 CSV: Read %d records from %s\n", recordCount, source.URL)
				}
			}
		}
	}
}

// columnIndexes locates the surname column and the address columns. The
// address spec may name several comma-separated columns (street, city,
// state, zip) which are joined into one lookup string.
func columnIndexes(headers []string, source model.Source) (int, []int, error) {
	surnameCol := source.SurnameCol
	if surnameCol == "" {
		surnameCol = "surname"
	}
	addressCol := source.AddressCol
	if addressCol == "" {
		addressCol = "address"
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		clean := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), `"`, ""))
		index[clean] = i
	}

	surnameIdx, ok := index[strings.ToLower(surnameCol)]
	if !ok {
		return 0, nil, fmt.Errorf("surname column %q not found in CSV header", surnameCol)
	}

	var addressIdxs []int
	for _, col := range strings.Split(addressCol, ",") {
		idx, ok := index[strings.ToLower(strings.TrimSpace(col))]
		if !ok {
			return 0, nil, fmt.Errorf("address column %q not found in CSV header", col)
		}
		addressIdxs = append(addressIdxs, idx)
	}
	return surnameIdx, addressIdxs, nil
}

func buildRecord(record []string, surnameIdx int, addressIdxs []int) (model.RawRecord, bool) {
	if surnameIdx >= len(record) {
		return model.RawRecord{}, false
	}
	surname := strings.TrimSpace(record[surnameIdx])

	var parts []string
	for _, idx := range addressIdxs {
		if idx < len(record) {
			if part := strings.TrimSpace(record[idx]); part != "" {
				parts = append(parts, part)
			}
		}
	}
	address := strings.Join(parts, ", ")

	if surname == "" || address == "" {
		return model.RawRecord{}, false
	}
	return model.RawRecord{Surname: surname, Address: address}, true
}
