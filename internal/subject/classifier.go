// Package subject assigns topic labels to a document by counting
// word-boundary keyword hits against precompiled pattern tables.
package subject

import (
	"regexp"
	"sort"
	"strings"
)

// General is returned when nothing else matches.
const General = "General"

// MaxSubjects caps how many labels a document can carry.
const MaxSubjects = 3

// patternTable is the heuristic configuration: subject label to
// keyword patterns, each compiled with word boundaries. Editing this
// table is how new subjects are added.
var patternTable = map[string][]string{
	"Databases": {
		`select\s+.*\bfrom\b`, `insert\s+into`, `primary\s+key`, `foreign\s+key`,
		`database`, `sql`, `query`, `table\s+schema`, `normalization`, `index`,
	},
	"Programming": {
		`function`, `variable`, `algorithm`, `compiler`, `source\s+code`,
		`loop`, `recursion`, `debugging`, `software`, `programming`,
	},
	"Mathematics": {
		`equation`, `theorem`, `integral`, `derivative`, `matrix`,
		`probability`, `geometry`, `algebra`, `calculus`, `polynomial`,
	},
	"Physics": {
		`velocity`, `acceleration`, `quantum`, `momentum`, `thermodynamics`,
		`gravity`, `relativity`, `particle`, `wavelength`, `electromagnetic`,
	},
	"Chemistry": {
		`molecule`, `reaction`, `compound`, `acid`, `alkali`,
		`periodic\s+table`, `electron`, `oxidation`, `catalyst`, `solvent`,
	},
	"Biology": {
		`cell`, `organism`, `dna`, `evolution`, `photosynthesis`,
		`protein`, `enzyme`, `species`, `chromosome`, `ecosystem`,
	},
	"History": {
		`century`, `empire`, `revolution`, `dynasty`, `medieval`,
		`treaty`, `colonial`, `ancient`, `war\s+of`, `civilization`,
	},
	"Literature": {
		`novel`, `poem`, `metaphor`, `narrative`, `protagonist`,
		`author`, `poetry`, `literary`, `symbolism`, `shakespeare`,
	},
	"Economics": {
		`market`, `inflation`, `demand`, `supply`, `gdp`,
		`monetary`, `fiscal`, `investment`, `trade`, `economy`,
	},
	"Computer Networks": {
		`tcp`, `router`, `bandwidth`, `protocol`, `ip\s+address`,
		`dns`, `firewall`, `packet`, `ethernet`, `latency`,
	},
	"Machine Learning": {
		`neural\s+network`, `training\s+data`, `machine\s+learning`, `gradient`,
		`classifier`, `overfitting`, `deep\s+learning`, `regression`, `dataset`,
	},
}

type compiledSubject struct {
	label    string
	patterns []*regexp.Regexp
}

var compiled []compiledSubject

func init() {
	compiled = compileTable(patternTable)
}

// compileTable builds pattern matchers once. A pattern that fails to
// compile is skipped, never aborting the subject or the table.
func compileTable(table map[string][]string) []compiledSubject {
	out := make([]compiledSubject, 0, len(table))
	for label, raws := range table {
		cs := compiledSubject{label: label}
		for _, raw := range raws {
			re, err := regexp.Compile(`\b(?:` + raw + `)\b`)
			if err != nil {
				continue
			}
			cs.patterns = append(cs.patterns, re)
		}
		if len(cs.patterns) > 0 {
			out = append(out, cs)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].label < out[j].label })
	return out
}

// Classify counts pattern hits over the lowercased text and returns
// up to MaxSubjects labels ordered by descending hit count, or
// [General] when nothing matches.
func Classify(text string) []string {
	lower := strings.ToLower(text)
	type scored struct {
		label string
		hits  int
	}
	matches := make([]scored, 0, len(compiled))
	for _, cs := range compiled {
		hits := 0
		for _, re := range cs.patterns {
			hits += len(re.FindAllStringIndex(lower, -1))
		}
		if hits > 0 {
			matches = append(matches, scored{label: cs.label, hits: hits})
		}
	}
	if len(matches) == 0 {
		return []string{General}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].hits > matches[j].hits })
	if len(matches) > MaxSubjects {
		matches = matches[:MaxSubjects]
	}
	labels := make([]string, len(matches))
	for i, m := range matches {
		labels[i] = m.label
	}
	return labels
}
