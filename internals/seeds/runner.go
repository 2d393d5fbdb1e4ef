package seeds

import (
	"gorm.io/gorm"

	templateSeeds "ziswaf_backend/internals/seeds/templates"
	userSeeds "ziswaf_backend/internals/seeds/users"
)

// RunAllSeeds mengisi data awal. Semua seeder idempoten — aman dijalankan
// berulang di environment yang sudah terisi.
func RunAllSeeds(db *gorm.DB) {
	//* User
	userSeeds.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Templat pesan & program
	templateSeeds.SeedTemplatesFromJSON(db, "internals/seeds/templates/data_templates.json")
	templateSeeds.SeedProgramsFromJSON(db, "internals/seeds/templates/data_programs.json")
}
