package config

import (
	"fmt"
	"sort"
	"strings"
)

// categoryUTIs maps normalized Tauri category names to Apple
// LSApplicationCategoryType values.
var categoryUTIs = map[string]string{
	"business":             "public.app-category.business",
	"developertool":        "public.app-category.developer-tools",
	"education":            "public.app-category.education",
	"entertainment":        "public.app-category.entertainment",
	"finance":              "public.app-category.finance",
	"game":                 "public.app-category.games",
	"actiongame":           "public.app-category.action-games",
	"adventuregame":        "public.app-category.adventure-games",
	"arcadegame":           "public.app-category.arcade-games",
	"boardgame":            "public.app-category.board-games",
	"cardgame":             "public.app-category.card-games",
	"casinogame":           "public.app-category.casino-games",
	"dicegame":             "public.app-category.dice-games",
	"educationalgame":      "public.app-category.educational-games",
	"familygame":           "public.app-category.family-games",
	"kidsgame":             "public.app-category.kids-games",
	"musicgame":            "public.app-category.music-games",
	"puzzlegame":           "public.app-category.puzzle-games",
	"racinggame":           "public.app-category.racing-games",
	"roleplayinggame":      "public.app-category.role-playing-games",
	"simulationgame":       "public.app-category.simulation-games",
	"sportsgame":           "public.app-category.sports-games",
	"strategygame":         "public.app-category.strategy-games",
	"triviagame":           "public.app-category.trivia-games",
	"wordgame":             "public.app-category.word-games",
	"graphicsanddesign":    "public.app-category.graphics-design",
	"healthcareandfitness": "public.app-category.healthcare-fitness",
	"lifestyle":            "public.app-category.lifestyle",
	"medical":              "public.app-category.medical",
	"music":                "public.app-category.music",
	"news":                 "public.app-category.news",
	"photography":          "public.app-category.photography",
	"productivity":         "public.app-category.productivity",
	"reference":            "public.app-category.reference",
	"socialnetworking":     "public.app-category.social-networking",
	"sports":               "public.app-category.sports",
	"travel":               "public.app-category.travel",
	"utility":              "public.app-category.utilities",
	"video":                "public.app-category.video",
	"weather":              "public.app-category.weather",
}

// CategoryUTI resolves a manifest category name to its
// LSApplicationCategoryType string. Matching ignores case, spaces and
// hyphens, so "Developer Tool" and "developer-tool" both resolve.
func CategoryUTI(category string) (string, error) {
	key := normalizeCategory(category)
	if uti, ok := categoryUTIs[key]; ok {
		return uti, nil
	}
	// Accept plural forms like "DeveloperTools" or "Utilities".
	if uti, ok := categoryUTIs[strings.TrimSuffix(key, "s")]; ok {
		return uti, nil
	}
	if strings.HasSuffix(key, "ies") {
		if uti, ok := categoryUTIs[strings.TrimSuffix(key, "ies")+"y"]; ok {
			return uti, nil
		}
	}
	return "", fmt.Errorf("unknown bundle category %q; valid categories are: %s", category, strings.Join(CategoryNames(), ", "))
}

// CategoryNames returns the sorted list of accepted category keys.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryUTIs))
	for k := range categoryUTIs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func normalizeCategory(category string) string {
	s := strings.ToLower(category)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
