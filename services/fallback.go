package services

import (
	"fmt"
	"strings"
)

// themeEntry pairs a theme name with its canned activity phrases. The
// slice is ordered: text matching takes the first theme whose name
// appears in the user's input.
type themeEntry struct {
	name       string
	activities []string
}

var baseThemes = []themeEntry{
	{"music", []string{"Gnawa music performances", "traditional Andalusian music", "desert blues concerts"}},
	{"art", []string{"Hassan II Mosque architecture", "traditional crafts workshops", "contemporary art galleries"}},
	{"food", []string{"tagine cooking classes", "spice market tours", "traditional mint tea ceremonies"}},
	{"history", []string{"ancient medinas exploration", "Roman ruins visits", "Berber cultural sites"}},
	{"nature", []string{"Sahara Desert camps", "Atlas Mountains hiking", "coastal walks in Essaouira"}},
}

// entityThemeKeywords maps entity keywords to theme overrides for the
// second inference pass.
var entityThemeKeywords = []struct {
	keywords []string
	theme    string
}{
	{[]string{"music", "gnawa"}, "music"},
	{[]string{"art", "craft"}, "art"},
	{[]string{"food", "cuisine"}, "food"},
}

// inferTheme picks the fallback theme: first a case-insensitive substring
// match of the theme names against the raw user text (first match wins),
// then a pass over the extracted entities. The entity loop deliberately
// has no early exit, so the last matching entity wins.
func inferTheme(userText string, entities []string) string {
	theme := "general"

	userLower := strings.ToLower(userText)
	for _, t := range baseThemes {
		if strings.Contains(userLower, t.name) {
			theme = t.name
			break
		}
	}

	for _, entity := range entities {
		entityLower := strings.ToLower(entity)
		for _, kw := range entityThemeKeywords {
			if containsAny(entityLower, kw.keywords) {
				theme = kw.theme
				break
			}
		}
	}

	return theme
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func themeActivities(theme string) []string {
	for _, t := range baseThemes {
		if t.name == theme {
			return t.activities
		}
	}
	return nil
}

// activityAt returns the theme's activity phrase at the given index, or
// the generic phrase when the theme is "general" or the list is short.
func activityAt(theme string, idx int, generic string) string {
	if theme == "general" {
		return generic
	}
	acts := themeActivities(theme)
	if idx >= len(acts) {
		return generic
	}
	return acts[idx]
}

// FallbackItinerary produces the canned 5-day itinerary used when the
// generation call fails. Byte-identical output for identical inputs.
func FallbackItinerary(userText string, entities []string) string {
	theme := inferTheme(userText, entities)

	day1 := activityAt(theme, 0, "Immerse yourself in the bustling atmosphere")
	day2 := activityAt(theme, 1, "Witness master craftsmen at work in their traditional workshops")
	day3 := activityAt(theme, 2, "Enjoy panoramic views and fresh mountain air")
	day4 := activityAt(theme, 0, "Watch fishermen bring in their daily catch")
	day5 := activityAt(theme, 0, "Listen to traditional Berber music around the campfire")

	return fmt.Sprintf(`🌟 Your Mystical Riḥla Through Morocco 🌟

🏜️ **Day 1: Arrival in Marrakech - The Red City Awakens**
Begin your journey in the heart of Morocco's imperial cities. Explore the vibrant Jemaa el-Fnaa square as snake charmers and storytellers weave their magic. Wander through the labyrinthine souks, where the scent of spices and the sound of traditional music fill the air. %s. End your day with a traditional hammam experience.

🏛️ **Day 2: Fes - The Spiritual Capital**
Travel to Fes, Morocco's spiritual and intellectual capital. Visit the ancient University of Al-Qarawiyyin, one of the world's oldest universities. Explore the UNESCO World Heritage medina with its 9,000 narrow alleys. %s. The tanneries offer a glimpse into centuries-old leather-making techniques.

🏔️ **Day 3: Atlas Mountains - Berber Villages**
Journey into the High Atlas Mountains to discover authentic Berber culture. Visit traditional villages where time seems to stand still. Learn about ancient customs and traditions passed down through generations. %s. Share mint tea with local families and hear stories of mountain life.

🌊 **Day 4: Essaouira - The Wind City**
Discover the coastal charm of Essaouira, where Atlantic winds have shaped both landscape and culture. Explore the Portuguese-influenced medina and walk along the historic ramparts. %s. The city's artistic soul shines through its galleries and music scene.

🌅 **Day 5: Sahara Desert - Under the Stars**
Complete your journey with a magical night in the Sahara Desert. Ride camels across golden dunes as the sun sets over the endless landscape. Experience the profound silence of the desert and sleep under a canopy of stars. %s. This final experience will connect you deeply with Morocco's nomadic heritage.

✨ *Total Journey Investment: $1,200-1,800 per person*
🌙 *Best Time: October-April for perfect weather*
🎭 *Cultural Immersion Level: Deep and Authentic*

*Note: This itinerary was crafted with care during high demand. Your journey awaits!*`,
		day1, day2, day3, day4, day5)
}
