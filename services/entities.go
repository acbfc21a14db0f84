package services

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// NamedEntity is one recognized span: the surface text plus the tagger's
// label (PERSON, GPE, ...).
type NamedEntity struct {
	Text  string
	Label string
}

// EntityTagger runs a pretrained NER pipeline over free text.
type EntityTagger interface {
	Entities(text string) ([]NamedEntity, error)
}

// ProseTagger backs EntityTagger with the prose NLP pipeline.
type ProseTagger struct{}

func (ProseTagger) Entities(text string) ([]NamedEntity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("NER pipeline failed: %w", err)
	}

	ents := doc.Entities()
	out := make([]NamedEntity, 0, len(ents))
	for _, ent := range ents {
		out = append(out, NamedEntity{Text: ent.Text, Label: ent.Label})
	}
	return out, nil
}

// entityLabels is the closed set of labels worth feeding into cultural
// search: organizations, people, places, works of art, and events.
var entityLabels = map[string]bool{
	"ORG":         true,
	"PERSON":      true,
	"GPE":         true,
	"LOC":         true,
	"WORK_OF_ART": true,
	"EVENT":       true,
}

type Extractor struct {
	tagger EntityTagger
}

func NewExtractor(tagger EntityTagger) *Extractor {
	return &Extractor{tagger: tagger}
}

// Extract returns the distinct surface forms of recognized entities whose
// label is in the target set, in first-occurrence order.
func (e *Extractor) Extract(text string) ([]string, error) {
	ents, err := e.tagger.Entities(text)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entities []string
	for _, ent := range ents {
		if !entityLabels[ent.Label] {
			continue
		}
		if seen[ent.Text] {
			continue
		}
		seen[ent.Text] = true
		entities = append(entities, ent.Text)
	}
	return entities, nil
}
