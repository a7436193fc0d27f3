package service

import (
	"strings"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// ProfileCompleteness is the fraction of optional profile fields that are filled
func ProfileCompleteness(u *model.UserProfile) float64 {
	if u == nil {
		return 0
	}
	fields := []string{u.DisplayName, u.Bio, u.AvatarURL, u.Location, u.Website}
	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}
