package routes

import (
    "backend/controllers"
    "backend/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Public customer-facing menu
    r.GET("/menus/:slug", controllers.RenderPublicMenu)
    r.GET("/ws/menus/:slug", controllers.MenuUpdatesWS)

    // Protected back-office routes
    api := r.Group("/")
    api.Use(middlewares.AuthMiddleware())
    {
        api.GET("/profile", controllers.GetProfile)

        api.GET("/restaurant", controllers.GetRestaurant)
        api.PUT("/restaurant", controllers.UpsertRestaurant)

        api.GET("/categories", controllers.ListCategories)
        api.POST("/categories", controllers.CreateCategory)
        api.PUT("/categories/:id", controllers.UpdateCategory)
        api.DELETE("/categories/:id", controllers.DeleteCategory)

        api.GET("/digital-menus", controllers.ListDigitalMenus)
        api.POST("/digital-menus", controllers.CreateDigitalMenu)
        api.GET("/digital-menus/:id", controllers.GetDigitalMenu)
        api.PUT("/digital-menus/:id", controllers.UpdateDigitalMenu)
        api.DELETE("/digital-menus/:id", controllers.DeleteDigitalMenu)
        api.POST("/digital-menus/:id/apply-template", controllers.ApplyTemplate)
        api.POST("/digital-menus/:id/publish", controllers.PublishDigitalMenu)

        api.POST("/digital-menus/:id/categories", controllers.AddMenuCategory)
        api.PUT("/digital-menus/:id/categories/:categoryId", controllers.UpdateMenuCategoryOrder)
        api.DELETE("/digital-menus/:id/categories/:categoryId", controllers.RemoveMenuCategory)

        api.POST("/digital-menus/:id/categories/:categoryId/items", controllers.AddMenuItem)
        api.PUT("/digital-menus/:id/items/:itemId", controllers.UpdateMenuItem)
        api.DELETE("/digital-menus/:id/items/:itemId", controllers.DeleteMenuItem)

        api.GET("/templates", controllers.ListTemplates)
        api.POST("/templates", controllers.CreateTemplate)
        api.GET("/templates/:id", controllers.GetTemplate)
        api.PUT("/templates/:id", controllers.UpdateTemplate)
        api.DELETE("/templates/:id", controllers.DeleteTemplate)
        api.POST("/templates/:id/default", controllers.SetDefaultTemplate)

        api.GET("/ingredients", controllers.ListIngredients)
        api.POST("/ingredients", controllers.CreateIngredient)
        api.PUT("/ingredients/:id", controllers.UpdateIngredient)
        api.DELETE("/ingredients/:id", controllers.DeleteIngredient)

        api.GET("/recipes", controllers.ListRecipes)
        api.POST("/recipes", controllers.CreateRecipe)
        api.GET("/recipes/:id", controllers.GetRecipe)
        api.PUT("/recipes/:id", controllers.UpdateRecipe)
        api.DELETE("/recipes/:id", controllers.DeleteRecipe)

        api.GET("/accounting/summary", controllers.AccountingSummary)
        api.GET("/accounting/expenses/month", controllers.MonthExpenseTotal)

        api.GET("/orders", controllers.ListOrders)
        api.POST("/orders", controllers.CreateOrder)
        api.GET("/orders/:id", controllers.GetOrder)
        api.PUT("/orders/:id/status", controllers.UpdateOrderStatus)

        api.GET("/expenses", controllers.ListExpenses)
        api.POST("/expenses", controllers.CreateExpense)
        api.PUT("/expenses/:id", controllers.UpdateExpense)
        api.DELETE("/expenses/:id", controllers.DeleteExpense)

        api.POST("/images", controllers.UploadImage)
        api.POST("/ai/extract-menu", controllers.ExtractMenuItems)
        api.POST("/ai/generate-template", controllers.GenerateTemplateStyle)
    }

    return r
}
