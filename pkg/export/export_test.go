package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"beauty-trends/pkg/export"
	"beauty-trends/pkg/trends"
)

var at = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func mustScore(t *testing.T, keyword string, values ...float64) trends.ScoredResult {
	t.Helper()
	res, err := trends.Score(keyword, trends.SeriesFromValues(keyword, values...), 100, at)
	require.NoError(t, err)
	return res
}

func sample(t *testing.T) []trends.ScoredResult {
	return []trends.ScoredResult{
		mustScore(t, "estética", 10, 20, 30, 40),
		mustScore(t, "botox", 80, 80, 90, 90),
		mustScore(t, "peeling", 33.333, 33.333, 33.334),
	}
}

func TestWriteCSVRankedWithHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sample(t)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	require.Equal(t, []string{"Palavra-chave", "Volume de Busca", "Score de Interesse", "Interesse Máximo", "Tendência", "Popularidade", "Data"}, rows[0])
	require.Equal(t, []string{"botox", "100", "85.00", "90", "estável ➡️", "Muito popular ⭐⭐⭐⭐⭐", "2024-05-01T12:30:00Z"}, rows[1])
	require.Equal(t, "peeling", rows[2][0])
	require.Equal(t, "33.33", rows[2][2])
	require.Equal(t, []string{"estética", "100", "25.00", "40", "em alta 📈", "Moderado ⭐⭐⭐", "2024-05-01T12:30:00Z"}, rows[3])
}

func TestWriteJSONKeepsAccumulationOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, sample(t)))
	require.Contains(t, buf.String(), `"keyword": "estética"`)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 3)

	first := records[0]
	require.Equal(t, "estética", first["keyword"])
	require.Equal(t, float64(100), first["search_volume"])
	require.Equal(t, 25.0, first["interest_score"])
	require.Equal(t, float64(40), first["max_interest"])
	require.Equal(t, "RISING", first["trend_direction"])
	require.Equal(t, "MODERATE", first["popularity"])
	require.Equal(t, "2024-05-01T12:30:00Z", first["timestamp"])

	require.Equal(t, "botox", records[1]["keyword"])
	require.InDelta(t, 33.33333333, records[2]["interest_score"], 1e-6)
}

func TestExportFiles(t *testing.T) {
	dir := t.TempDir()
	results := sample(t)

	csvPath, err := export.ExportCSV(filepath.Join(dir, "out", "analise.csv"), results)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "Palavra-chave,"))

	jsonPath, err := export.ExportJSON(filepath.Join(dir, "analise.json"), results)
	require.NoError(t, err)
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
}

func TestExportEmptyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")

	got, err := export.ExportCSV(path, nil)
	require.True(t, errors.Is(err, export.ErrNothingToExport))
	require.Empty(t, got)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))

	got, err = export.ExportJSON(filepath.Join(dir, "empty.json"), []trends.ScoredResult{})
	require.ErrorIs(t, err, export.ErrNothingToExport)
	require.Empty(t, got)
}

func TestExportWriteFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := export.ExportCSV(filepath.Join(blocker, "out.csv"), sample(t))
	require.Error(t, err)
	require.False(t, errors.Is(err, export.ErrNothingToExport))
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.PrintReport(&buf, sample(t)))
	out := buf.String()

	require.Contains(t, out, "RELATÓRIO DE TENDÊNCIAS DE BELEZA - SÃO PAULO")
	require.Contains(t, out, "1. BOTOX\n   Score de Interesse: 85.00\n   Interesse Máximo: 90/100\n")
	require.Contains(t, out, "3. ESTÉTICA\n")
	require.Contains(t, out, "   Tendência: em alta 📈\n")
	require.Less(t, strings.Index(out, "BOTOX"), strings.Index(out, "PEELING"))
}

func TestPrintReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.PrintReport(&buf, nil))
	require.Equal(t, "Nenhum resultado disponível\n", buf.String())
}

func TestPrintLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	results := sample(t)
	require.NoError(t, export.PrintLeaderboard(&buf, "🏆 TOP 2 TENDÊNCIAS DE BELEZA:", results[:2]))
	require.Contains(t, buf.String(), "1. estética: 25.00 pontos\n2. botox: 85.00 pontos\n")
}
