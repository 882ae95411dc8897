package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"beauty-trends/pkg/trends"
)

var csvHeader = []string{
	"Palavra-chave",
	"Volume de Busca",
	"Score de Interesse",
	"Interesse Máximo",
	"Tendência",
	"Popularidade",
	"Data",
}

// WriteCSV writes a header and one row per result, highest score first
func WriteCSV(w io.Writer, results []trends.ScoredResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range ranked(results) {
		row := []string{
			r.Keyword(),
			strconv.Itoa(r.SearchVolume()),
			strconv.FormatFloat(r.InterestScore(), 'f', 2, 64),
			strconv.Itoa(r.MaxInterest()),
			r.TrendDirection().Label(),
			r.PopularityTier().Label(),
			formatTimestamp(r.Timestamp()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
