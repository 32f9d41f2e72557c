package main

import (
	"nightsky.wedding/configs"
	"nightsky.wedding/configs/configsdatabase"
	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/repositories"
	"nightsky.wedding/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.Load()

	configsdatabase.InitDB(cfg.DatabaseURL)
	defer configsdatabase.CloseDB()

	store := repositories.NewStore(configsdatabase.GetDB())

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Static("/static", "./static")
	routes.SetupRoutes(app, store, cfg)

	configslog.SLog.Infof("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("server stopped", zap.Error(err))
	}
}
