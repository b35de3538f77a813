// ABOUTME: Closed enum sets for clothing attributes
// ABOUTME: Validates and normalizes category, season, and occasion values
package models

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryTop         Category = "TOP"
	CategoryBottom      Category = "BOTTOM"
	CategoryDress       Category = "DRESS"
	CategoryShoes       Category = "SHOES"
	CategoryAccessories Category = "ACCESSORIES"
	CategoryOuterwear   Category = "OUTERWEAR"
	CategoryUnderwear   Category = "UNDERWEAR"
	CategorySportswear  Category = "SPORTSWEAR"
	CategorySwimwear    Category = "SWIMWEAR"
	CategoryOther       Category = "OTHER"
)

type Season string

const (
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonAutumn Season = "AUTUMN"
	SeasonWinter Season = "WINTER"
)

type Occasion string

const (
	OccasionCasual Occasion = "CASUAL"
	OccasionFormal Occasion = "FORMAL"
	OccasionSport  Occasion = "SPORT"
	OccasionParty  Occasion = "PARTY"
	OccasionWork   Occasion = "WORK"
	OccasionHome   Occasion = "HOME"
	OccasionTravel Occasion = "TRAVEL"
)

var categories = map[Category]struct{}{
	CategoryTop: {}, CategoryBottom: {}, CategoryDress: {}, CategoryShoes: {},
	CategoryAccessories: {}, CategoryOuterwear: {}, CategoryUnderwear: {},
	CategorySportswear: {}, CategorySwimwear: {}, CategoryOther: {},
}

var seasons = map[Season]struct{}{
	SeasonSpring: {}, SeasonSummer: {}, SeasonAutumn: {}, SeasonWinter: {},
}

var occasions = map[Occasion]struct{}{
	OccasionCasual: {}, OccasionFormal: {}, OccasionSport: {}, OccasionParty: {},
	OccasionWork: {}, OccasionHome: {}, OccasionTravel: {},
}

// ParseCategory normalizes a stored or remote category string and validates it
// against the closed set. Legacy values persisted in lower or mixed case are
// accepted; anything outside the set is an error rather than a pass-through.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := categories[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// ParseSeason normalizes and validates a season string.
func ParseSeason(s string) (Season, error) {
	v := Season(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := seasons[v]; !ok {
		return "", fmt.Errorf("unknown season %q", s)
	}
	return v, nil
}

// ParseOccasion normalizes and validates an occasion string.
func ParseOccasion(s string) (Occasion, error) {
	v := Occasion(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := occasions[v]; !ok {
		return "", fmt.Errorf("unknown occasion %q", s)
	}
	return v, nil
}

// ParseSeasons parses a list of season strings into a duplicate-free set.
func ParseSeasons(values []string) ([]Season, error) {
	out := make([]Season, 0, len(values))
	seen := make(map[Season]struct{}, len(values))
	for _, s := range values {
		v, err := ParseSeason(s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// ParseOccasions parses a list of occasion strings into a duplicate-free set.
func ParseOccasions(values []string) ([]Occasion, error) {
	out := make([]Occasion, 0, len(values))
	seen := make(map[Occasion]struct{}, len(values))
	for _, s := range values {
		v, err := ParseOccasion(s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
