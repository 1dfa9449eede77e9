package services

import (
	"sort"
	"strings"

	"hms/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// normalizeInput strips diacritics and lowercases for matching.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity is 1 minus the normalized levenshtein distance.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

type scoredGuest struct {
	guest models.Guest
	score float64
}

// SearchGuests ranks guests against a free-text query by fuzzy similarity
// over name, email and phone numbers. Substring hits outrank near-misses;
// guests scoring below the cutoff are dropped.
func SearchGuests(query string, guests []models.Guest) []models.Guest {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil
	}

	names := make([]string, 0, len(guests))
	for _, g := range guests {
		names = append(names, normalizeInput(g.Name))
	}
	cmNames := createMatcher(names)
	bestName := cmNames.Closest(normalizedQuery)

	scored := make([]scoredGuest, 0, len(guests))
	for _, g := range guests {
		score := scoreGuest(normalizedQuery, g, bestName)
		if score >= 0.5 {
			scored = append(scored, scoredGuest{guest: g, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]models.Guest, 0, len(scored))
	for _, sg := range scored {
		results = append(results, sg.guest)
	}
	return results
}

func scoreGuest(query string, guest models.Guest, bestName string) float64 {
	name := normalizeInput(guest.Name)
	email := normalizeInput(guest.Email)

	score := 0.0
	if strings.Contains(name, query) || strings.Contains(email, query) {
		score = 1.0
	}
	if name == bestName {
		if s := calculateSimilarity(query, name); s > score {
			score = s
		}
	}
	if s := calculateSimilarity(query, name); s > score {
		score = s
	}
	for _, phone := range guest.Phones {
		if strings.Contains(phone.Phone, query) {
			score = 1.0
		}
	}
	return score
}
