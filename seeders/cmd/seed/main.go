package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"contract-studio/internal/migrations"
	"contract-studio/pkg/config"
	"contract-studio/pkg/database/postgresql"
	"contract-studio/pkg/service"
	"contract-studio/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	// --- Определяем флаги ---
	runMigrate := flag.Bool("migrate", false, "Применить миграции перед наполнением")
	runTemplates := flag.Bool("template", false, "Создать образцы шаблонов договоров")
	tokenFor := flag.Uint64("token", 0, "Выпустить JWT для пользователя с указанным ID (для локальной отладки)")

	flag.Parse()

	// Если ни один флаг не указан - показываем справку
	if !*runMigrate && !*runTemplates && *tokenFor == 0 {
		log.Println("❌ Не выбрана ни одна операция.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed/main.go -migrate -template")
		log.Println("  go run ./seeders/cmd/seed/main.go -token 1")
		log.Println("======================================================")
		return
	}

	cfg := config.New()

	if *tokenFor != 0 {
		jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, zap.NewNop())
		access, refresh, err := jwtSvc.GenerateTokens(*tokenFor)
		if err != nil {
			log.Fatalf("❌ Не удалось выпустить токен: %v", err)
		}
		log.Println("🔑 Access token:", access)
		log.Println("🔑 Refresh token:", refresh)
		log.Println("======================================================")
	}

	if !*runMigrate && !*runTemplates {
		return
	}

	// Подключаемся к БД
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runMigrate {
		if err := postgresql.Migrate(dbPool, migrations.FS); err != nil {
			log.Fatalf("❌ Ошибка применения миграций: %v", err)
		}
		log.Println("✅ Миграции применены")
		log.Println("======================================================")
	}

	if *runTemplates {
		seeders.SeedContractTemplates(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
