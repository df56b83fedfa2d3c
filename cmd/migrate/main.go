// Package main применяет встроенные SQL-миграции; запуск: go run ./cmd/migrate
package main

import (
	"flag"
	"fmt"
	"os"

	"org-admin-service/internal/config"
	"org-admin-service/internal/repository"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := repository.RunMigrations(cfg.DatabaseURL, *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
