// Package vocabulary holds the keyword and neighborhood tables of the
// beauty-sector analysis.
package vocabulary

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category groups keywords of one beauty segment
type Category struct {
	Name     string
	Keywords []string
}

var categories = []Category{
	{Name: "Procedimentos invasivos", Keywords: []string{"botox", "preenchimento labial", "plástica facial", "lifting"}},
	{Name: "Estética geral", Keywords: []string{"estética", "rejuvenescimento facial", "peeling químico", "microagulhamento"}},
	{Name: "Cabelos", Keywords: []string{"implante capilar", "transplante capilar", "tratamento queda cabelo"}},
	{Name: "Pele", Keywords: []string{"dermatologia", "acne treatment", "limpeza de pele profunda", "hidroxiácidos"}},
	{Name: "Depilação", Keywords: []string{"depilação a laser", "depilação definitiva", "eletrólise"}},
	{Name: "Tatuagem e arte", Keywords: []string{"tatuagem", "remoção tatuagem", "micropigmentação sobrancelha"}},
	{Name: "Manicure/Pedicure", Keywords: []string{"unhas de gel", "alongamento de unhas", "esmaltação em gel"}},
	{Name: "Cosméticos", Keywords: []string{"produtos skincare", "cuidados com pele", "cosméticos naturais"}},
}

var defaultBatch = []string{
	"botox",
	"estética",
	"preenchimento labial",
	"implante capilar",
	"rejuvenescimento facial",
	"micropigmentação",
	"peeling",
	"dermatologia",
}

// Neighborhoods of São Paulo, keyed by short name. Queries are country-wide,
// this table is not passed to the provider.
var neighborhoods = map[string]string{
	"Jabaquara":     "São Paulo - Jabaquara",
	"Pinheiros":     "São Paulo - Pinheiros",
	"Vila Mariana":  "São Paulo - Vila Mariana",
	"Santo Amaro":   "São Paulo - Santo Amaro",
	"Tatuapé":       "São Paulo - Tatuapé",
	"Mooca":         "São Paulo - Mooca",
	"Bom Retiro":    "São Paulo - Bom Retiro",
	"Consolação":    "São Paulo - Consolação",
	"Higienópolis":  "São Paulo - Higienópolis",
	"Liberdade":     "São Paulo - Liberdade",
	"Vila Prudente": "São Paulo - Vila Prudente",
	"Campo Limpo":   "São Paulo - Campo Limpo",
	"Itaim Bibi":    "São Paulo - Itaim Bibi",
	"Brooklin":      "São Paulo - Brooklin",
	"Saúde":         "São Paulo - Saúde",
	"Santana":       "São Paulo - Santana",
	"Vila Madalena": "São Paulo - Vila Madalena",
	"Lapa":          "São Paulo - Lapa",
	"Vila Olímpia":  "São Paulo - Vila Olímpia",
	"Perdizes":      "São Paulo - Perdizes",
}

// Default returns the eight keywords analysed when none are given
func Default() []string {
	return append([]string(nil), defaultBatch...)
}

// Categories returns a deep copy of the category table
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// All flattens every category keyword in declaration order without duplicates
func All() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}

// CategoryOf returns the category name of keyword, false when it is not in any category
func CategoryOf(keyword string) (string, bool) {
	key := Normalize(keyword)
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if strings.EqualFold(kw, key) {
				return c.Name, true
			}
		}
	}
	return "", false
}

// Neighborhoods returns a copy of the neighborhood table
func Neighborhoods() map[string]string {
	out := make(map[string]string, len(neighborhoods))
	for k, v := range neighborhoods {
		out[k] = v
	}
	return out
}

// Normalize trims a keyword, collapses inner whitespace and converts it to NFC
// so that composed and decomposed accents query the same term.
func Normalize(keyword string) string {
	return norm.NFC.String(strings.Join(strings.Fields(keyword), " "))
}

// Parse splits a comma-separated keyword list, normalising each entry and
// dropping blanks and repeats.
func Parse(raw string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(raw, ",") {
		kw := Normalize(part)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
