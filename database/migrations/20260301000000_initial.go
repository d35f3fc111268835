package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000001_create_cards_table", &CreateCardsTable{})
	migration.Register("20260301000002_create_orders_table", &CreateOrdersTable{})
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type CreateCardsTable struct{}

func (m *CreateCardsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Card{})
}

func (m *CreateCardsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("cards")
}

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}
