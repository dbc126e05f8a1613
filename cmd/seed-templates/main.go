// Command-line tool to seed the resume template catalog.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/database"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/model"
)

var templateNames = []string{"Classic", "Modern", "Compact"}

func main() {

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("Database failed to initialize: ", err)
	}

	created := 0
	for _, name := range templateNames {
		var count int64
		db.Model(&model.ResumeTemplate{}).Where("name = ?", name).Count(&count)
		if count > 0 {
			continue
		}
		template := model.ResumeTemplate{Name: name}
		if err := db.Create(&template).Error; err != nil {
			log.Fatal("failed to create template: ", err)
		}
		created++
	}

	// Make sure exactly one template is flagged as default
	var defaults int64
	db.Model(&model.ResumeTemplate{}).Where("is_default = ?", true).Count(&defaults)
	if defaults == 0 {
		if err := db.Model(&model.ResumeTemplate{}).
			Where("name = ?", templateNames[0]).
			Update("is_default", true).Error; err != nil {
			log.Fatal("failed to flag default template: ", err)
		}
	}

	fmt.Println("Resume templates seeded successfully!")
	fmt.Println("======================================")
	fmt.Printf("Templates created: %d\n", created)
	fmt.Println("======================================")

	os.Exit(0)
}
