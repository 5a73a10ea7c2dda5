package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

func intPtr(i int) *int { return &i }

func SeedRewards(creator models.User) {
	log.Println("🎁 Seeding Rewards...")

	now := time.Now()
	rewards := []models.Reward{
		{
			Title:          "Reusable Tote Bag",
			Description:    "Canvas tote made from recycled fabric. Collect at the community centre.",
			PointsCost:     2000,
			StartDate:      now.AddDate(0, -1, 0),
			EndDate:        now.AddDate(0, 2, 0),
			MaxEachRedeem:  intPtr(1),
			MaxTotalRedeem: intPtr(200),
			Tags:           pq.StringArray{"merchandise", "eco"},
		},
		{
			Title:          "$5 Hawker Voucher",
			Description:    "Redeemable at participating hawker stalls.",
			PointsCost:     5000,
			StartDate:      now.AddDate(0, -1, 0),
			EndDate:        now.AddDate(0, 1, 0),
			MaxEachRedeem:  intPtr(2),
			MaxTotalRedeem: intPtr(100),
			Tags:           pq.StringArray{"voucher", "food"},
		},
		{
			Title:       "Compost Starter Kit",
			Description: "Everything you need to start composting at home.",
			PointsCost:  8000,
			StartDate:   now.AddDate(0, 0, -7),
			EndDate:     now.AddDate(0, 3, 0),
			Tags:        pq.StringArray{"gardening", "eco"},
		},
	}

	for _, r := range rewards {
		r.ID = uuid.New().String()
		r.Slug = utils.GenerateSlug(r.Title)
		r.CreatedBy = creator.ID

		var count int64
		database.DB.Model(&models.Reward{}).Where("slug = ?", r.Slug).Count(&count)
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&r).Error; err != nil {
			log.Printf("⚠️ Failed to seed reward %s: %v", r.Title, err)
		}
	}
}
