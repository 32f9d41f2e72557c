package seeders

import (
	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDemoGuests inserts a small demo household for local development: two
// adults and a child, with the first adult delegated for the other two.
// It is a no-op when any guests already exist.
func SeedDemoGuests(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Guest{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Could not check guest count before seeding", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Info("Guests already present, demo seeder skipped.")
		return nil
	}

	household := []*models.Guest{
		{FirstName: "Ada", LastName: "Moreno"},
		{FirstName: "Theo", LastName: "Moreno"},
		{FirstName: "Mira", LastName: "Moreno", IsChild: true, ExpectedGlutenFree: true},
	}
	if err := db.Create(household).Error; err != nil {
		configslog.Log.Error("Demo guest insert failed", zap.Error(err))
		return err
	}

	edges := []models.Delegation{}
	for _, guest := range household {
		edges = append(edges, models.Delegation{Parent: guest.ID, Child: guest.ID})
	}
	parent := household[0]
	for _, guest := range household[1:] {
		edges = append(edges, models.Delegation{Parent: parent.ID, Child: guest.ID})
	}
	if err := db.Create(&edges).Error; err != nil {
		configslog.Log.Error("Demo delegation insert failed", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Seeded %d demo guests.", len(household))
	return nil
}
