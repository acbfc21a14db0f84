package handlers

import (
	"fmt"
	"log"

	"rihla/services"
)

// JourneyTitle is echoed with every successful generation.
const JourneyTitle = "Your Mystical Riḥla Through Morocco"

// CultureAPI is the slice of the recommendation provider the handlers
// consume. Both methods absorb upstream failures into empty results.
type CultureAPI interface {
	Search(query string) map[string][]services.QlooItem
	Recommend(idsByCat map[string][]string) map[string][]services.QlooItem
}

// ItineraryGenerator produces the itinerary text for a prompt.
type ItineraryGenerator interface {
	GenerateItinerary(prompt string) (string, error)
}

// EntityExtractor pulls named entities out of free text.
type EntityExtractor interface {
	Extract(text string) ([]string, error)
}

// Handler holds the service dependencies, constructed once at startup.
type Handler struct {
	Culture   CultureAPI
	Generator ItineraryGenerator
	Extractor EntityExtractor
}

func New(culture CultureAPI, generator ItineraryGenerator, extractor EntityExtractor) *Handler {
	return &Handler{
		Culture:   culture,
		Generator: generator,
		Extractor: extractor,
	}
}

// weaveItinerary runs the full pipeline for one request: entity
// extraction, per-entity cultural search, recommendation lookup, prompt
// assembly, and generation. A generation failure degrades to the
// deterministic fallback itinerary; any earlier failure aborts.
func (h *Handler) weaveItinerary(userText string) (string, error) {
	entities, err := h.Extractor.Extract(userText)
	if err != nil {
		return "", fmt.Errorf("entity extraction failed: %w", err)
	}
	log.Printf("✨ Extracted entities: %v", entities)

	// Merge search results per category by concatenation, in entity
	// order. Items are not de-duplicated here; only the IDs are, below.
	merged := make(map[string][]services.QlooItem)
	for _, entity := range entities {
		res := h.Culture.Search(entity)
		for _, cat := range services.Categories {
			merged[cat] = append(merged[cat], res[cat]...)
		}
	}

	// Distinct IDs per category, first occurrence wins. Items without an
	// ID are skipped.
	idsByCat := make(map[string][]string, len(services.Categories))
	for _, cat := range services.Categories {
		seen := make(map[string]bool)
		ids := []string{}
		for _, item := range merged[cat] {
			if item.ID == "" || seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			ids = append(ids, item.ID)
		}
		idsByCat[cat] = ids
	}

	recos := h.Culture.Recommend(idsByCat)
	prompt := services.BuildPrompt(merged, recos)

	itinerary, err := h.Generator.GenerateItinerary(prompt)
	if err != nil {
		log.Printf("⚠️  Itinerary generation failed: %v — using fallback itinerary", err)
		return services.FallbackItinerary(userText, entities), nil
	}
	return itinerary, nil
}
