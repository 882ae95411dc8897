package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"beauty-trends/pkg/trends"
)

const reportWidth = 70

// PrintReport writes the numbered batch report, highest score first
func PrintReport(w io.Writer, results []trends.ScoredResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "Nenhum resultado disponível")
		return err
	}

	upper := cases.Upper(language.BrazilianPortuguese)
	rule := strings.Repeat("=", reportWidth)
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\nRELATÓRIO DE TENDÊNCIAS DE BELEZA - SÃO PAULO\n%s\n\n", rule, rule)

	for i, r := range ranked(results) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, upper.String(r.Keyword()))
		fmt.Fprintf(&b, "   Score de Interesse: %.2f\n", r.InterestScore())
		fmt.Fprintf(&b, "   Interesse Máximo: %d/100\n", r.MaxInterest())
		fmt.Fprintf(&b, "   Tendência: %s\n", r.TrendDirection().Label())
		fmt.Fprintf(&b, "   Popularidade: %s\n\n", r.PopularityTier().Label())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// PrintLeaderboard writes one line per result in the order given
func PrintLeaderboard(w io.Writer, title string, results []trends.ScoredResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n", title, strings.Repeat("-", reportWidth))
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s: %.2f pontos\n", i+1, r.Keyword(), r.InterestScore())
	}
	_, err := io.WriteString(w, b.String())
	return err
}
