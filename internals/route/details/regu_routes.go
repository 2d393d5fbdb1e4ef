package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziswaf_backend/internals/constants"
	reguController "ziswaf_backend/internals/features/regu/controller"
	authMw "ziswaf_backend/internals/middlewares/auth"
)

func ReguRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reguController.NewReguController(db)

	regus := api.Group("/regus")
	regus.Post("/",
		authMw.OnlyRoles(constants.RoleErrorPembimbing("regu"), constants.RolePembimbing, constants.RoleAdmin),
		ctrl.Create)
	regus.Post("/join", ctrl.Join)
	regus.Get("/:id", ctrl.GetByID)
	regus.Get("/:id/members", ctrl.GetMembers)
	regus.Put("/:id/target",
		authMw.OnlyRoles(constants.RoleErrorPembimbing("regu"), constants.RolePembimbing, constants.RoleAdmin),
		ctrl.UpdateTarget)

	// Chat regu
	chat := api.Group("/chat")
	chat.Get("/:regu_id", ctrl.GetChat)
	chat.Post("/:regu_id", ctrl.SendChat)
}
