package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/obramarket/obramarket-api/internal/application/auth"
	"github.com/obramarket/obramarket-api/internal/application/receipt"
	"github.com/obramarket/obramarket-api/internal/application/transaction"
	"github.com/obramarket/obramarket-api/internal/application/usecase"
	infrapdf "github.com/obramarket/obramarket-api/internal/infrastructure/pdf"
	"github.com/obramarket/obramarket-api/internal/infrastructure/postgres"
	"github.com/obramarket/obramarket-api/internal/infrastructure/storage"
	httpRouter "github.com/obramarket/obramarket-api/internal/interfaces/http"
	"github.com/obramarket/obramarket-api/pkg/config"
	"github.com/obramarket/obramarket-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	transactionUC := transaction.NewUseCase(txRunner, txRepo)

	// PDF: comprobante de compra de transacciones completadas
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := receipt.NewUseCase(txRepo, materialRepo, userRepo, pdfGenerator)

	cloudinary := storage.NewCloudinaryService(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
	)
	if !cloudinary.Configured() {
		log.Warn().Msg("cloudinary sin configurar: la subida de imágenes responderá 503")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ObraMarket API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		MaterialUC:    materialUC,
		UserUC:        userUC,
		TransactionUC: transactionUC,
		ReceiptUC:     receiptUC,
		Storage:       cloudinary,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
