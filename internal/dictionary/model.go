package dictionary

import "sort"

// Entry is a single entry in a Free Dictionary API response.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

type Phonetic struct {
	Text string `json:"text"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
}

// Record is the usable subset of a dictionary lookup. The zero value stands
// in for a failed lookup.
type Record struct {
	Pronunciation string
	PartOfSpeech  string
	Definition    string
	Example       string
	Synonyms      []string
}

// collectSynonyms unions the meaning level synonym list with every definition
// level synonym list, deduplicated and sorted.
func collectSynonyms(meaning Meaning) []string {
	set := make(map[string]struct{}, len(meaning.Synonyms))
	for _, synonym := range meaning.Synonyms {
		set[synonym] = struct{}{}
	}
	for _, definition := range meaning.Definitions {
		for _, synonym := range definition.Synonyms {
			set[synonym] = struct{}{}
		}
	}

	synonyms := make([]string, 0, len(set))
	for synonym := range set {
		synonyms = append(synonyms, synonym)
	}
	sort.Strings(synonyms)
	return synonyms
}
