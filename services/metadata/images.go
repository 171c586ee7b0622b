package metadata

import (
	"strconv"
	"strings"
)

const (
	posterSize   = "w500"
	backdropSize = "w1280"
	stillSize    = "w300"
)

// PosterURL resolves a TMDB poster path into a full image URL.
// Returns "" when the item has no poster.
func PosterURL(path string) string {
	return imageURL(path, posterSize)
}

// BackdropURL resolves a TMDB backdrop path into a full image URL.
func BackdropURL(path string) string {
	return imageURL(path, backdropSize)
}

// StillURL resolves an episode still path into a full thumbnail URL.
func StillURL(path string) string {
	return imageURL(path, stillSize)
}

func imageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return tmdbImageBase + "/" + size + path
}

// Year extracts the year component of a TMDB date ("2024-05-01" -> "2024").
func Year(date string) string {
	if date == "" {
		return ""
	}
	year, _, _ := strings.Cut(date, "-")
	return year
}

// FormatRating renders a vote average to one decimal ("7.85" -> "7.9").
// A zero average means no votes and renders empty.
func FormatRating(voteAverage float64) string {
	if voteAverage == 0 {
		return ""
	}
	return strconv.FormatFloat(voteAverage, 'f', 1, 64)
}
