package services

import "strings"

const promptHeader = "You are a Moroccan poet and storyteller. " +
	"Compose a 5-day itinerary based on the following cultural preferences:\n"

const promptFooter = `
Generate an immersive and emotional journey through Morocco that follows this exact format:

🌟 Your Mystical Riḥla Through Morocco 🌟

🏜️ **Day 1: [Title] - [Subtitle]**
[Detailed description of the day's activities, experiences, and emotions]

🏛️ **Day 2: [Title] - [Subtitle]**
[Detailed description of the day's activities, experiences, and emotions]

🏔️ **Day 3: [Title] - [Subtitle]**
[Detailed description of the day's activities, experiences, and emotions]

🌊 **Day 4: [Title] - [Subtitle]**
[Detailed description of the day's activities, experiences, and emotions]

🌅 **Day 5: [Title] - [Subtitle]**
[Detailed description of the day's activities, experiences, and emotions]

✨ *Total Journey Investment: $[amount] per person*
🌙 *Best Time: [timeframe]*
🎭 *Cultural Immersion Level: [level]*

Make the descriptions poetic, immersive, and emotionally engaging. Use emojis for each day and write in a way that transports the reader to Morocco. Each day should be at least 2-3 sentences long with vivid sensory details.
`

// BuildPrompt assembles the generation prompt from per-category search
// results and recommendations. Every category gets a header in fixed
// order; bullets list search item names first, then recommendation names,
// preserving input order within each. Deterministic given its inputs.
func BuildPrompt(searchByCat, recsByCat map[string][]QlooItem) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)

	for _, cat := range Categories {
		sb.WriteString("\n" + titleCase(cat) + ":\n")
		for _, item := range searchByCat[cat] {
			if item.Name != "" {
				sb.WriteString("- " + item.Name + "\n")
			}
		}
		for _, item := range recsByCat[cat] {
			if item.Name != "" {
				sb.WriteString("- " + item.Name + "\n")
			}
		}
	}

	sb.WriteString(promptFooter)
	return sb.String()
}

// titleCase capitalizes a single lowercase ASCII word (the category names
// are a closed set, so no Unicode-aware casing is needed).
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
