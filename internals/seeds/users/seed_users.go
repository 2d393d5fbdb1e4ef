package users

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"ziswaf_backend/internals/features/users/user/model"
)

type UserSeed struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_phone = ?", data.Phone).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan nomor '%s' sudah ada, dilewati.", data.Phone)
			continue
		}

		user := model.UserModel{
			FullName: data.FullName,
			Phone:    data.Phone,
			City:     data.City,
			Role:     data.Role,
			IsActive: true,
		}
		if data.Email != "" {
			email := data.Email
			user.Email = &email
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal seed user '%s': %v", data.Phone, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) berhasil dibuat.", data.FullName, data.Role)
	}
}
