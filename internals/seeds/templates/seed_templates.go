package templates

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ziswaf_backend/internals/features/templates/model"
)

type TemplateSeed struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Variables []string `json:"variables"`
	Category  string   `json:"category"`
}

type ProgramSeed struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Metadata    json.RawMessage `json:"metadata"`
}

func SeedTemplatesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file templat:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []TemplateSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.MessageTemplate
		if err := db.Where("template_title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Templat '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		template := model.MessageTemplate{
			TemplateTitle:     data.Title,
			TemplateBody:      data.Body,
			TemplateVariables: pq.StringArray(data.Variables),
			TemplateCategory:  data.Category,
		}
		if err := db.Create(&template).Error; err != nil {
			log.Printf("❌ Gagal seed templat '%s': %v", data.Title, err)
			continue
		}
		log.Printf("✅ Templat '%s' berhasil dibuat.", data.Title)
	}
}

func SeedProgramsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file program:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []ProgramSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.Program
		if err := db.Where("program_name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Program '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		program := model.Program{
			ProgramName:        data.Name,
			ProgramDescription: data.Description,
			ProgramCategory:    data.Category,
			ProgramIsActive:    true,
		}
		if len(data.Metadata) > 0 {
			program.ProgramMetadata = datatypes.JSON(data.Metadata)
		}
		if err := db.Create(&program).Error; err != nil {
			log.Printf("❌ Gagal seed program '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Program '%s' berhasil dibuat.", data.Name)
	}
}
