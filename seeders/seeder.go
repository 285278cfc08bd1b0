package seeders

import (
	"context"
	"errors"
	"log"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"contract-studio/internal/entities"
	"contract-studio/internal/repositories"
)

// SeedContractTemplates кладёт в базу образцы шаблонов договоров.
// Документ с таким же названием уже есть - пропускаем.
func SeedContractTemplates(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения шаблонов договоров...")

	docRepo := repositories.NewDocumentRepository(db, zap.NewNop())
	txManager := repositories.NewTxManager(db)

	for _, tpl := range contractTemplatesData {
		exists, err := documentExists(ctx, db, tpl.Title)
		if err != nil {
			log.Fatalf("❌ Ошибка проверки шаблона '%s': %v", tpl.Title, err)
		}
		if exists {
			log.Printf("  - Шаблон '%s' уже есть, пропускаем", tpl.Title)
			continue
		}

		err = txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
			docID, err := docRepo.CreateDocument(ctx, tx, entities.Document{Title: tpl.Title})
			if err != nil {
				return err
			}
			_, err = docRepo.CreateVersion(ctx, tx, entities.DocumentVersion{
				DocumentID:  docID,
				ContentType: entities.ContentTypeText,
				Body:        tpl.Body,
				Note:        null.StringFrom("образец шаблона"),
			})
			return err
		})
		if err != nil {
			log.Fatalf("❌ Ошибка создания шаблона '%s': %v", tpl.Title, err)
		}
		log.Printf("  - Шаблон '%s' создан", tpl.Title)
	}

	log.Println("✅ Наполнение шаблонов завершено!")
}

func documentExists(ctx context.Context, db *pgxpool.Pool, title string) (bool, error) {
	var id uint64
	err := db.QueryRow(ctx, `SELECT id FROM documents WHERE title = $1 LIMIT 1`, title).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
