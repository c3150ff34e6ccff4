package main

import (
	"portfolio/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.HeroSectionModel{},
		model.ProjectModel{},
		model.ProjectImageModel{},
		model.SkillModel{},
		model.ContactSubmissionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/gormdb/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
