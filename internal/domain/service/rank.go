package service

import "github.com/ecologicaleaving/wikigaialab/internal/domain/entity"

// Ranks is ordered from lowest to highest band
var Ranks = []entity.Rank{
	{Name: "Novizio", Level: 1, Min: 0, Max: 99},
	{Name: "Apprendista", Level: 2, Min: 100, Max: 299},
	{Name: "Contributore", Level: 3, Min: 300, Max: 699},
	{Name: "Esperto", Level: 4, Min: 700, Max: 1499},
	{Name: "Veterano", Level: 5, Min: 1500, Max: 2999},
	{Name: "Maestro", Level: 6, Min: 3000, Max: 5999},
	{Name: "Leggenda", Level: 7, Min: 6000, Max: -1},
}

// RankFor returns the band containing score and the band after it, if any.
// Negative scores fall in the lowest band.
func RankFor(score int) (entity.Rank, *entity.Rank) {
	if score < 0 {
		score = 0
	}
	for i, r := range Ranks {
		if r.Contains(score) {
			if i+1 < len(Ranks) {
				next := Ranks[i+1]
				return r, &next
			}
			return r, nil
		}
	}
	return Ranks[len(Ranks)-1], nil
}

// PointsToNextRank returns how many points score needs to reach the next band,
// or 0 in the top band
func PointsToNextRank(score int) int {
	if score < 0 {
		score = 0
	}
	_, next := RankFor(score)
	if next == nil {
		return 0
	}
	return next.Min - score
}
