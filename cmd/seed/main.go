package main

import (
	"log"
	"os"

	"edge-ai-be/internal/model"
	"edge-ai-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedDevices registers the demo edge device fleet. Existing rows are left
// untouched so reseeding never clobbers live state.
func seedDevices(db *gorm.DB) error {
	devices := []model.Device{
		{
			Id:     "rpi-001",
			Name:   "Raspberry Pi 4B",
			Type:   "raspberry-pi",
			IP:     "192.168.1.100",
			Status: "disconnected",
			Specs: datatypes.JSONMap{
				"cpu":         "ARM Cortex-A72",
				"memory":      "4GB RAM",
				"temperature": 45,
				"usage":       23,
			},
		},
		{
			Id:     "jetson-001",
			Name:   "NVIDIA Jetson Nano",
			Type:   "jetson",
			IP:     "192.168.1.101",
			Status: "disconnected",
			Specs: datatypes.JSONMap{
				"cpu":         "ARM Cortex-A57",
				"memory":      "4GB RAM",
				"temperature": 52,
				"usage":       67,
			},
		},
		{
			Id:     "coral-001",
			Name:   "Google Coral Dev Board",
			Type:   "coral",
			IP:     "192.168.1.102",
			Status: "disconnected",
			Specs: datatypes.JSONMap{
				"cpu":         "ARM Cortex-A53",
				"memory":      "1GB RAM",
				"temperature": 38,
				"usage":       12,
			},
		},
	}

	for _, device := range devices {
		var count int64
		if err := db.Model(&model.Device{}).Where("id = ?", device.Id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Device %s already exists, skipping", device.Id)
			continue
		}
		if err := db.Create(&device).Error; err != nil {
			return err
		}
		log.Printf("Seeded device %s (%s)", device.Id, device.Name)
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	if err := seedDevices(db); err != nil {
		log.Fatal("Error: Seeding failed:", err)
	}

	log.Println("Seeding completed")
}
