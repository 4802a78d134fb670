package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"TrendScout/internal/model"
)

// logHeader is the fixed column order of the append-only evaluation log.
const logHeader = "ticker,timestamp,volume_today,volume_yesterday,current_price,open,previous_close,ma50,ma200,rsi,bollinger_upper,bollinger_lower,atr"

const logTimeLayout = "2006-01-02 15:04:05"

// LogRow is one evaluation log record. Volume fields reuse Value so a
// missing volume serializes the same way as a missing indicator.
type LogRow struct {
	Ticker          string
	Timestamp       time.Time
	VolumeToday     model.Value
	VolumeYesterday model.Value
	CurrentPrice    model.Value
	Open            model.Value
	PreviousClose   model.Value
	MA50            model.Value
	MA200           model.Value
	RSI             model.Value
	BollingerUpper  model.Value
	BollingerLower  model.Value
	ATR             model.Value
}

// RowFromEvaluation flattens an evaluation into a log row.
func RowFromEvaluation(eval *model.Evaluation) LogRow {
	row := LogRow{
		Ticker:         eval.Symbol,
		Timestamp:      eval.EvaluatedAt,
		CurrentPrice:   eval.Indicators.CurrentPrice,
		Open:           eval.Indicators.PriceAtOpen,
		PreviousClose:  eval.Indicators.PreviousClose,
		MA50:           eval.Indicators.MA50,
		MA200:          eval.Indicators.MA200,
		RSI:            eval.Indicators.RSI,
		BollingerUpper: eval.Indicators.BollingerUpper,
		BollingerLower: eval.Indicators.BollingerLower,
		ATR:            eval.Indicators.ATR,
	}
	if v, ok := eval.VolumeToday(); ok {
		row.VolumeToday = model.SomeValue(float64(v))
	}
	if v, ok := eval.VolumeYesterday(); ok {
		row.VolumeYesterday = model.SomeValue(float64(v))
	}
	return row
}

// formatValue serializes a Value for the log; unavailable becomes NA. The
// NA sentinel exists only at this text boundary.
func formatValue(v model.Value) string {
	if !v.Valid {
		return "NA"
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}

func parseValue(s string) model.Value {
	if s == "NA" {
		return model.Unavailable
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Unavailable
	}
	return model.SomeValue(f)
}

// FormatLine serializes a row in header column order, without a newline.
func FormatLine(row LogRow) string {
	fields := []string{
		row.Ticker,
		row.Timestamp.Format(logTimeLayout),
		formatValue(row.VolumeToday),
		formatValue(row.VolumeYesterday),
		formatValue(row.CurrentPrice),
		formatValue(row.Open),
		formatValue(row.PreviousClose),
		formatValue(row.MA50),
		formatValue(row.MA200),
		formatValue(row.RSI),
		formatValue(row.BollingerUpper),
		formatValue(row.BollingerLower),
		formatValue(row.ATR),
	}
	return strings.Join(fields, ",")
}

// ParseLine inverts FormatLine. Available fields round-trip exactly.
func ParseLine(line string) (LogRow, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 13 {
		return LogRow{}, fmt.Errorf("log line has %d fields, want 13", len(fields))
	}
	ts, err := time.Parse(logTimeLayout, fields[1])
	if err != nil {
		return LogRow{}, fmt.Errorf("parse timestamp %q: %w", fields[1], err)
	}
	return LogRow{
		Ticker:          fields[0],
		Timestamp:       ts,
		VolumeToday:     parseValue(fields[2]),
		VolumeYesterday: parseValue(fields[3]),
		CurrentPrice:    parseValue(fields[4]),
		Open:            parseValue(fields[5]),
		PreviousClose:   parseValue(fields[6]),
		MA50:            parseValue(fields[7]),
		MA200:           parseValue(fields[8]),
		RSI:             parseValue(fields[9]),
		BollingerUpper:  parseValue(fields[10]),
		BollingerLower:  parseValue(fields[11]),
		ATR:             parseValue(fields[12]),
	}, nil
}

// LogSink appends evaluation rows to a CSV file. The header is written
// once, when the sink creates the file.
type LogSink struct {
	f *os.File
}

// NewLogSink opens the log file for appending, creating it (and its
// directory) with a header line if it does not exist yet.
func NewLogSink(path string) (*LogSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	_, statErr := os.Stat(path)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log sink: %w", err)
	}
	if os.IsNotExist(statErr) {
		if _, err := f.WriteString(logHeader + "\n"); err != nil {
			f.Close()
			return nil, fmt.Errorf("write log header: %w", err)
		}
	}
	return &LogSink{f: f}, nil
}

// Append writes one evaluation to the log.
func (s *LogSink) Append(eval *model.Evaluation) error {
	_, err := s.f.WriteString(FormatLine(RowFromEvaluation(eval)) + "\n")
	return err
}

func (s *LogSink) Close() error { return s.f.Close() }

// ErrorSink appends per-cycle errors to a plain text file.
type ErrorSink struct {
	path string
}

func NewErrorSink(path string) *ErrorSink { return &ErrorSink{path: path} }

// Append records one error line; failures to write are returned so the
// caller can log them, but never interrupt a cycle.
func (s *ErrorSink) Append(symbol string, evalErr error) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s - Error for %s: %v\n", time.Now().Format(logTimeLayout), symbol, evalErr)
	return err
}
