package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obramarket/obramarket-api/internal/application/auth"
	"github.com/obramarket/obramarket-api/internal/application/receipt"
	"github.com/obramarket/obramarket-api/internal/application/transaction"
	"github.com/obramarket/obramarket-api/internal/application/usecase"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	MaterialUC    *usecase.MaterialUseCase
	UserUC        *usecase.UserUseCase
	TransactionUC *transaction.UseCase
	ReceiptUC     *receipt.UseCase
	Storage       *storage.CloudinaryService
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público salvo verify)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify", authRequired, authHandler.Verify)

	// Materials: catálogo público, mutaciones protegidas
	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Get("/seller/:sellerId", materialHandler.ListBySeller)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Post("/", authRequired, materialHandler.Create)
	materials.Put("/:id", authRequired, materialHandler.Update)
	materials.Patch("/:id/status", authRequired, materialHandler.UpdateStatus)
	materials.Delete("/:id", authRequired, materialHandler.Delete)

	// Transactions (todo protegido)
	transactions := api.Group("/transactions", authRequired)
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.ReceiptUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/stats", transactionHandler.Stats)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Patch("/:id/status", transactionHandler.UpdateStatus)
	transactions.Post("/:id/accept", transactionHandler.Accept)
	transactions.Post("/:id/reject", transactionHandler.Reject)
	transactions.Post("/:id/complete", transactionHandler.Complete)
	transactions.Get("/:id/receipt", transactionHandler.Receipt)

	// Users: perfil propio protegido, listado y borrado solo admin
	users := api.Group("/users", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/profile", userHandler.Profile)
	users.Put("/profile", userHandler.UpdateProfile)
	users.Put("/password", userHandler.UpdatePassword)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Upload de imágenes (protegido)
	uploadHandler := NewUploadHandler(deps.Storage)
	api.Post("/upload", authRequired, uploadHandler.Upload)
}
