package services

import (
	"sort"
	"strings"

	"viralalchemy-backend-go/internal/models"
)

type AssetFilter string

const (
	FilterAll        AssetFilter = "ALL"
	FilterAnalysis   AssetFilter = "ANALYSIS"
	FilterGeneration AssetFilter = "GENERATION"
)

func (f AssetFilter) Valid() bool {
	return f == FilterAll || f == FilterAnalysis || f == FilterGeneration
}

// QueryAssets filters by case-insensitive substring against title and tags,
// narrows by source type, and orders newest first. The input slice is not
// modified.
func QueryAssets(assets []models.Asset, searchTerm string, filter AssetFilter) []models.Asset {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	results := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if filter != "" && filter != FilterAll && string(asset.SourceType) != string(filter) {
			continue
		}
		if term != "" && !matchesTerm(asset, term) {
			continue
		}
		results = append(results, asset)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results
}

func matchesTerm(asset models.Asset, term string) bool {
	if strings.Contains(strings.ToLower(asset.Title), term) {
		return true
	}
	for _, tag := range asset.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
