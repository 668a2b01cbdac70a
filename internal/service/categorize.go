package service

import "strings"

// Message categories surfaced to the UI alongside each response.
const (
	CategoryCrop       = "crop"
	CategoryWeather    = "weather"
	CategoryPest       = "pest"
	CategoryFertilizer = "fertilizer"
	CategoryGeneral    = "general"
)

// Keyword tables cover Hindi, English and Malayalam terms. First
// matching category wins, in crop/weather/pest/fertilizer order.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{CategoryCrop, []string{"फसल", "crop", "വിള", "wheat", "rice", "गेहूं", "ചാവല"}},
	{CategoryWeather, []string{"मौसम", "weather", "കാലാവസ്ഥ", "rain", "temperature", "बारिश"}},
	{CategoryPest, []string{"कीट", "pest", "കീടം", "insect", "disease", "बीमारी"}},
	{CategoryFertilizer, []string{"खाद", "fertilizer", "വളം", "nutrient", "soil", "മണ്ണ്"}},
}

// Categorize classifies a farmer question by keyword lookup.
func Categorize(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				return entry.category
			}
		}
	}
	return CategoryGeneral
}
