// repository/catalog_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/nexuscoliving/finanzas-backend/models"
)

// CatalogRepository handles reads of the reference tables used by forms
// and joins: tribes, rooms, suppliers and expense categories
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListTribes retrieves all tribes ordered by name
func (r *CatalogRepository) ListTribes() ([]models.Tribe, error) {
	rows, err := r.db.Query("SELECT id, name FROM tribes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get tribes: %v", err)
	}
	defer rows.Close()

	var tribes []models.Tribe
	for rows.Next() {
		var tribe models.Tribe
		if err := rows.Scan(&tribe.ID, &tribe.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tribe: %v", err)
		}
		tribes = append(tribes, tribe)
	}
	return tribes, rows.Err()
}

// ListRooms retrieves all rooms
func (r *CatalogRepository) ListRooms() ([]models.Room, error) {
	return r.queryRooms("SELECT id, room_number, tribe_id FROM rooms ORDER BY room_number")
}

// ListRoomsByTribe retrieves the rooms belonging to one tribe
func (r *CatalogRepository) ListRoomsByTribe(tribeID int) ([]models.Room, error) {
	return r.queryRooms("SELECT id, room_number, tribe_id FROM rooms WHERE tribe_id = $1 ORDER BY room_number", tribeID)
}

func (r *CatalogRepository) queryRooms(query string, args ...interface{}) ([]models.Room, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %v", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.TribeID); err != nil {
			return nil, fmt.Errorf("failed to scan room: %v", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// ListExpenseCategories retrieves all expense categories ordered by name
func (r *CatalogRepository) ListExpenseCategories() ([]models.ExpenseCategory, error) {
	rows, err := r.db.Query("SELECT id, name, description FROM expense_categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get expense categories: %v", err)
	}
	defer rows.Close()

	var categories []models.ExpenseCategory
	for rows.Next() {
		var category models.ExpenseCategory
		var description sql.NullString
		if err := rows.Scan(&category.ID, &category.Name, &description); err != nil {
			return nil, fmt.Errorf("failed to scan expense category: %v", err)
		}
		category.Description = description.String
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// ListSuppliers retrieves all suppliers ordered by name
func (r *CatalogRepository) ListSuppliers() ([]models.Supplier, error) {
	rows, err := r.db.Query(
		"SELECT id, name, contact_person, phone, email, address FROM suppliers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get suppliers: %v", err)
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %v", err)
		}
		suppliers = append(suppliers, *supplier)
	}
	return suppliers, rows.Err()
}

// GetSupplierByName looks up a supplier by exact, case-sensitive name.
// Returns (nil, nil) when none exists.
func (r *CatalogRepository) GetSupplierByName(name string) (*models.Supplier, error) {
	row := r.db.QueryRow(
		"SELECT id, name, contact_person, phone, email, address FROM suppliers WHERE name = $1", name)
	supplier, err := scanSupplier(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

// CreateSupplier inserts a supplier and fills the generated ID
func (r *CatalogRepository) CreateSupplier(supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact_person, phone, email, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(query,
		supplier.Name, nullString(supplier.ContactPerson), nullString(supplier.Phone),
		nullString(supplier.Email), nullString(supplier.Address),
	).Scan(&supplier.ID)
}

func scanSupplier(row interface{ Scan(...interface{}) error }) (*models.Supplier, error) {
	var supplier models.Supplier
	var contactPerson, phone, email, address sql.NullString
	err := row.Scan(&supplier.ID, &supplier.Name, &contactPerson, &phone, &email, &address)
	if err != nil {
		return nil, err
	}
	supplier.ContactPerson = contactPerson.String
	supplier.Phone = phone.String
	supplier.Email = email.String
	supplier.Address = address.String
	return &supplier, nil
}
