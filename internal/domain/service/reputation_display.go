package service

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
)

// FormatScore abbreviates large scores: 950, 1.2K, 3.4M
func FormatScore(score int) string {
	d := decimal.NewFromInt(int64(score))
	switch {
	case score >= 1_000_000:
		return d.Div(decimal.NewFromInt(1_000_000)).Truncate(1).String() + "M"
	case score >= 1_000:
		return d.Div(decimal.NewFromInt(1_000)).Truncate(1).String() + "K"
	default:
		return strconv.Itoa(score)
	}
}

var scoreStyles = []struct {
	min   int
	color string
	badge string
}{
	{6000, "gold", "👑"},
	{3000, "red", "🏆"},
	{1500, "orange", "⭐"},
	{700, "purple", "🎯"},
	{300, "blue", "🌳"},
	{100, "green", "🌿"},
	{0, "gray", "🌱"},
}

// ScoreColor returns the color tag for a score
func ScoreColor(score int) string {
	for _, s := range scoreStyles {
		if score >= s.min {
			return s.color
		}
	}
	return "gray"
}

// ScoreBadge returns the emoji badge for a score
func ScoreBadge(score int) string {
	for _, s := range scoreStyles {
		if score >= s.min {
			return s.badge
		}
	}
	return "🌱"
}

// Display bundles the presentational helpers
func Display(score int) entity.ScoreDisplay {
	return entity.ScoreDisplay{
		Formatted: FormatScore(score),
		Color:     ScoreColor(score),
		Badge:     ScoreBadge(score),
	}
}
