package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	templateController "ziswaf_backend/internals/features/templates/controller"
	authMw "ziswaf_backend/internals/middlewares/auth"
)

func TemplateRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := templateController.NewTemplateController(db)
	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("templat & program"), constants.RoleAdmin)

	templates := api.Group("/templates")
	templates.Get("/", ctrl.GetAll)
	templates.Post("/", adminOnly, ctrl.Create)
	templates.Put("/:id", adminOnly, ctrl.Update)
	templates.Delete("/:id", adminOnly, ctrl.Delete)

	programs := api.Group("/programs")
	programs.Get("/", ctrl.GetPrograms)
	programs.Post("/", adminOnly, ctrl.CreateProgram)
	programs.Put("/:id", adminOnly, ctrl.UpdateProgram)
	programs.Delete("/:id", adminOnly, ctrl.DeleteProgram)
}
