// Package card holds the enriched vocabulary card model and its rendering
// into Anki note fields.
package card

// ExampleSentence is a usage example with an optional highlight. Highlight is
// set only when the term occurs verbatim in the sentence.
type ExampleSentence struct {
	Sentence  string `yaml:"sentence"`
	Highlight string `yaml:"highlight,omitempty"`
}

// VocabularyCard is the assembled enrichment result for one term.
type VocabularyCard struct {
	Term                string          `yaml:"term"`
	Pronunciation       string          `yaml:"pronunciation,omitempty"`
	PartOfSpeech        string          `yaml:"part_of_speech,omitempty"`
	Example             ExampleSentence `yaml:"example"`
	TranslationHeading  string          `yaml:"translation_heading"`
	TranslationSynonyms string          `yaml:"translation_synonyms,omitempty"`
	TranslationUsage    string          `yaml:"translation_usage"`
	ExtraTags           []string        `yaml:"extra_tags,omitempty"`
}

// Fields is a card rendered into the front/back/tags shape an Anki note needs.
type Fields struct {
	Front string
	Back  string
	Tags  []string
}
