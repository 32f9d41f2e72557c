package main

import (
	"flag"

	"nightsky.wedding/configs"
	"nightsky.wedding/configs/configsdatabase"
	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Run the database migrations")
	seedFlag := flag.Bool("seed", false, "Run the database seeders")
	flag.Parse()

	cfg := configs.Load()
	configsdatabase.InitDB(cfg.DatabaseURL)
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
