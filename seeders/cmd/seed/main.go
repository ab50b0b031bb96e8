package main

import (
	"context"
	"log"
	"os"

	"shipment-dashboard/pkg/config"
	"shipment-dashboard/pkg/database/postgresql"
	"shipment-dashboard/seeders"
)

func main() {
	cfg := config.New()

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("Задайте ADMIN_EMAIL и ADMIN_PASSWORD для создания администратора")
	}

	if err := seeders.SeedAdminUser(context.Background(), db, email, password); err != nil {
		log.Fatalf("Сидер завершился с ошибкой: %v", err)
	}

	log.Println("Сидер отработал успешно")
}
