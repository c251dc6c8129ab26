package routes

import (
	"Foodgram-Backend/internal/api/handlers"
	"Foodgram-Backend/internal/middleware"
	"Foodgram-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	SubscriptionHandler handlers.SubscriptionHandler
	TagHandler          handlers.TagHandler
	IngredientHandler   handlers.IngredientHandler
	RecipeHandler       handlers.RecipeHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())

	api := c.App.Group("/api")
	c.Auth(api)
	c.User(api)
	c.Catalog(api)
	c.Recipe(api)
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) optionalAuth() fiber.Handler {
	return c.Middleware.OptionalAuthMiddleware(c.JWTService)
}

func (c *Config) Auth(api fiber.Router) {
	auth := api.Group("/auth/token")
	auth.Post("/login", c.UserHandler.Login)
	auth.Post("/logout", c.auth(), c.UserHandler.Logout)
}

func (c *Config) User(api fiber.Router) {
	user := api.Group("/users")
	// static paths before /:id
	{
		user.Get("", c.optionalAuth(), c.UserHandler.GetUsers)
		user.Post("", c.UserHandler.Register)
		user.Get("/me", c.auth(), c.UserHandler.Me)
		user.Put("/me", c.auth(), c.UserHandler.UpdateMe)
		user.Put("/me/avatar", c.auth(), c.UserHandler.UpdateAvatar)
		user.Delete("/me/avatar", c.auth(), c.UserHandler.DeleteAvatar)
		user.Post("/set_password", c.auth(), c.UserHandler.SetPassword)
		user.Get("/subscriptions", c.auth(), c.SubscriptionHandler.GetSubscriptions)
	}

	user.Get("/:id<int>", c.optionalAuth(), c.UserHandler.GetUser)
	user.Post("/:id<int>/subscribe", c.auth(), c.SubscriptionHandler.Subscribe)
	user.Delete("/:id<int>/subscribe", c.auth(), c.SubscriptionHandler.Unsubscribe)
}

func (c *Config) Catalog(api fiber.Router) {
	api.Get("/tags", c.TagHandler.GetTags)
	api.Get("/tags/:id<int>", c.TagHandler.GetTag)
	api.Get("/ingredients", c.IngredientHandler.GetIngredients)
	api.Get("/ingredients/:id<int>", c.IngredientHandler.GetIngredient)
}

func (c *Config) Recipe(api fiber.Router) {
	recipes := api.Group("/recipes")
	recipes.Get("", c.optionalAuth(), c.RecipeHandler.GetRecipes)
	recipes.Post("", c.auth(), c.RecipeHandler.CreateRecipe)
	recipes.Get("/download_shopping_cart", c.auth(), c.RecipeHandler.DownloadShoppingCart)

	recipes.Get("/:id<int>", c.optionalAuth(), c.RecipeHandler.GetRecipe)
	recipes.Patch("/:id<int>", c.auth(), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id<int>", c.auth(), c.RecipeHandler.DeleteRecipe)
	recipes.Get("/:id<int>/get-link", c.RecipeHandler.GetShortLink)

	recipes.Post("/:id<int>/favorite", c.auth(), c.RecipeHandler.AddFavorite)
	recipes.Delete("/:id<int>/favorite", c.auth(), c.RecipeHandler.RemoveFavorite)
	recipes.Post("/:id<int>/shopping_cart", c.auth(), c.RecipeHandler.AddToShoppingCart)
	recipes.Delete("/:id<int>/shopping_cart", c.auth(), c.RecipeHandler.RemoveFromShoppingCart)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/s/:token", c.RecipeHandler.RedirectShortLink)
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
