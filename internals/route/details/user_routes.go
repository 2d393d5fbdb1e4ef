package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	userController "ziswaf_backend/internals/features/users/user/controller"
	authMw "ziswaf_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Put("/profile", ctrl.UpdateProfile)

	// Admin
	users.Get("/",
		authMw.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.RoleAdmin),
		ctrl.GetAll)
	users.Put("/:id/role",
		authMw.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.RoleAdmin),
		ctrl.UpdateRole)
}
