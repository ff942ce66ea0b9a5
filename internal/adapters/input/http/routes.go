package http

import (
	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the health check, swagger UI and the /v1/api group on app
func (hdl *HTTPHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	api := app.Group("/v1/api")
	{
		api.Post("/login", hdl.Login)
		api.Post("/logout", hdl.Logout)
		api.Get("/session", hdl.GetSession)
		api.Get("/navigate", hdl.Navigate)
		api.Get("/accounts", hdl.ListAccounts)
		api.Post("/accounts", hdl.AddAccount)
	}

	// Views behind the navigation guard
	auth := hdl.RequireAuth
	{
		api.Get("/exclusions", auth, hdl.GetExclusions)
		api.Get("/exclusions/detail", auth, hdl.GetExclusionDetail)
		api.Get("/exclusions/info", auth, hdl.GetAutoOrderInfo)
		api.Post("/exclusions", auth, hdl.AddExclusion)
		api.Put("/exclusions/expire-date", auth, hdl.UpdateExpireDate)
		api.Delete("/exclusions/:dish", auth, hdl.RemoveExclusion)

		api.Get("/orders", auth, hdl.ListOrders)
		api.Post("/orders", auth, hdl.SubmitOrder)
		api.Delete("/orders/:id", auth, hdl.DeleteOrder)

		api.Get("/dishes", auth, hdl.ListDishes)
	}
}
