// Package ftd reduces raw fails-to-deliver files into per-ticker worst-case
// records for the squeeze classifier.
package ftd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"TrendScout/internal/model"
)

// ftdFieldCount is the exact field count of a valid pipe-delimited line:
// settlement_date | cusip | symbol | quantity | description | price.
const ftdFieldCount = 6

// Ingest reduces a stream of raw FTD lines to one record per ticker: the
// record with the largest quantity seen, ties keeping the first. Only
// symbols present in tickers are retained. Blank lines and the trailer are
// skipped silently; structurally bad lines are skipped with a warning.
func Ingest(r io.Reader, tickers map[string]bool) (map[string]model.FTDRecord, []string) {
	records := make(map[string]model.FTDRecord)
	var warnings []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.Contains(line, "Trailer") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != ftdFieldCount {
			warnings = append(warnings, fmt.Sprintf("skipping line with %d fields: %s", len(fields), strings.TrimSpace(line)))
			continue
		}

		symbol := fields[2]
		if !tickers[symbol] {
			continue
		}

		quantity, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping line with bad quantity %q: %s", fields[3], strings.TrimSpace(line)))
			continue
		}

		// A "." price means no price was reported.
		price := 0.0
		if fields[5] != "." {
			if p, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64); err == nil {
				price = p
			} else {
				warnings = append(warnings, fmt.Sprintf("skipping line with bad price %q: %s", fields[5], strings.TrimSpace(line)))
				continue
			}
		}

		existing, ok := records[symbol]
		if !ok || quantity > existing.MaxFTD {
			records[symbol] = model.FTDRecord{
				Symbol:         symbol,
				MaxFTD:         quantity,
				SettlementDate: fields[0],
				Price:          price,
			}
		}
	}
	if err := scanner.Err(); err != nil {
		warnings = append(warnings, fmt.Sprintf("read error: %v", err))
	}

	return records, warnings
}

// IngestFile opens and ingests an FTD file from disk.
func IngestFile(path string, tickers []string) (map[string]model.FTDRecord, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open ftd file: %w", err)
	}
	defer f.Close()

	set := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		set[t] = true
	}
	records, warnings := Ingest(f, set)
	return records, warnings, nil
}
