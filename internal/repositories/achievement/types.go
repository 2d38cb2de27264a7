package achievement

import "github.com/KirkDiggler/hydroflow/internal/models"

type GetAchievementsInput struct {
	ProfileID string
}

type SaveAchievementsInput struct {
	ProfileID    string
	Achievements []*models.Achievement
}
