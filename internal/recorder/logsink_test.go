package recorder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendScout/internal/model"
)

func sampleRow() LogRow {
	return LogRow{
		Ticker:          "AAPL",
		Timestamp:       time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		VolumeToday:     model.SomeValue(52918400),
		VolumeYesterday: model.SomeValue(48291700),
		CurrentPrice:    model.SomeValue(172.6199951171875),
		Open:            model.SomeValue(171.17),
		PreviousClose:   model.SomeValue(173.0),
		MA50:            model.SomeValue(180.34210526315789),
		MA200:           model.SomeValue(178.912345),
		RSI:             model.SomeValue(41.87),
		BollingerUpper:  model.SomeValue(185.2),
		BollingerLower:  model.SomeValue(168.9),
		ATR:             model.SomeValue(3.41),
	}
}

func TestLogLine_RoundTrip(t *testing.T) {
	row := sampleRow()
	parsed, err := ParseLine(FormatLine(row))
	require.NoError(t, err)
	assert.Equal(t, row, parsed)
}

func TestLogLine_RoundTripWithUnavailable(t *testing.T) {
	row := sampleRow()
	row.PreviousClose = model.Unavailable
	row.RSI = model.Unavailable
	row.ATR = model.Unavailable

	line := FormatLine(row)
	assert.Contains(t, line, "NA")

	parsed, err := ParseLine(line)
	require.NoError(t, err)
	assert.Equal(t, row, parsed)
	assert.False(t, parsed.RSI.Valid)
}

func TestParseLine_RejectsWrongFieldCount(t *testing.T) {
	_, err := ParseLine("AAPL,2024-03-15 09:30:00,100")
	assert.Error(t, err)
}

func TestLogSink_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticker_log.csv")

	sink, err := NewLogSink(path)
	require.NoError(t, err)
	eval := &model.Evaluation{
		Symbol:      "AAPL",
		EvaluatedAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		Series:      model.NewSeries("AAPL", nil),
	}
	require.NoError(t, sink.Append(eval))
	require.NoError(t, sink.Close())

	// Reopening an existing file must not repeat the header.
	sink, err = NewLogSink(path)
	require.NoError(t, err)
	require.NoError(t, sink.Append(eval))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, logHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "AAPL,"))
}
