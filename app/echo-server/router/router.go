package router

import (
	"multiarm/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetBanditRoutes(api *echo.Group, handler *rest.BanditHandler) {
	b := api.Group("/bandit")

	b.POST("/epsilon", handler.Allocate)
	b.GET("/epsilon/pretty", handler.Pretty)
}

func SetBanditAdminRoutes(api *echo.Group, handler *rest.BanditAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/bandit", authRequired, adminOnly)

	admin.GET("/defaults", handler.GetDefaults)
	admin.PUT("/defaults", handler.UpsertDefaults)
}
