package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser создает администратора, если его еще нет.
// Пароль задается через переменные окружения при запуске сидера.
func SeedAdminUser(ctx context.Context, db *pgxpool.Pool, email, password string) error {
	log.Printf("  - Создание пользователя '%s'...", email)

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при генерации хеша пароля: %w", err)
	}

	query := `INSERT INTO users (fio, email, password, role, is_active)
              VALUES ($1, $2, $3, 'admin', TRUE) RETURNING id`
	if err := db.QueryRow(ctx, query, "Администратор", email, string(hashedPassword)).Scan(&userID); err != nil {
		return fmt.Errorf("не удалось создать администратора: %w", err)
	}

	log.Printf("    - Администратор создан, id=%d", userID)
	return nil
}
