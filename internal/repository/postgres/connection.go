package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Event{},
		&domain.Participant{},
		&domain.Vendor{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		Event:       NewEventRepository(db),
		Participant: NewParticipantRepository(db),
		Vendor:      NewVendorRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505). Concurrent registrations with the same email
// race past the pre-check; the unique index rejects the loser and this is
// how we recognize it.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
