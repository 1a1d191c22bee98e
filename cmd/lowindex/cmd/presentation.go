package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lowindex/sims/pkg/sims"
)

// presentationFile is the on-disk JSON shape for a presentation: plain
// data, no textual relation grammar. It is the thinnest possible file
// format over NewPresentationFromWords (see DESIGN.md for why this
// stays on encoding/json rather than a grammar/parser-combinator
// library).
type presentationFile struct {
	AlphabetSize uint32        `json:"alphabet_size"`
	IsMonoid     bool          `json:"is_monoid"`
	Relations    [][2][]uint32 `json:"relations"`
	Include      [][2][]uint32 `json:"include,omitempty"`
	Exclude      [][2][]uint32 `json:"exclude,omitempty"`
}

func loadPresentation(path string) (pres *sims.Presentation, include, exclude []sims.Rule, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read presentation file: %w", err)
	}
	var pf presentationFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, nil, nil, fmt.Errorf("parse presentation file: %w", err)
	}
	rules := make([]sims.Rule, len(pf.Relations))
	for i, r := range pf.Relations {
		rules[i] = sims.Rule{Left: toWord(r[0]), Right: toWord(r[1])}
	}
	pres, err = sims.NewPresentationFromWords(pf.AlphabetSize, rules, pf.IsMonoid)
	if err != nil {
		return nil, nil, nil, err
	}
	return pres, toPairs(pf.Include), toPairs(pf.Exclude), nil
}

func toWord(letters []uint32) sims.Word {
	w := make(sims.Word, len(letters))
	for i, a := range letters {
		w[i] = sims.Letter(a)
	}
	return w
}

func toPairs(pairs [][2][]uint32) []sims.Rule {
	out := make([]sims.Rule, len(pairs))
	for i, p := range pairs {
		out[i] = sims.Rule{Left: toWord(p[0]), Right: toWord(p[1])}
	}
	return out
}
