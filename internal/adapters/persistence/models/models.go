package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Base
// ============================================================

// Model holds the columns shared by every table.
// IDs are UUID strings generated on insert.
type Model struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Accounts
// ============================================================

// Customer represents customers table
type Customer struct {
	Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:1024;not null" json:"-"`
	Phone    string `gorm:"size:255;not null" json:"phone"`
	IsGold   bool   `gorm:"not null" json:"isGold"`
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerResponse DTO
type CustomerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

func (c *Customer) ToResponse() *CustomerResponse {
	return &CustomerResponse{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		IsGold: c.IsGold,
	}
}

// Employee represents employees table. IsAdmin marks a manager.
type Employee struct {
	Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:1024;not null" json:"-"`
	IsAdmin  bool   `gorm:"not null" json:"isAdmin"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeResponse DTO
type EmployeeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func (e *Employee) ToResponse() *EmployeeResponse {
	return &EmployeeResponse{
		ID:      e.ID,
		Name:    e.Name,
		Email:   e.Email,
		IsAdmin: e.IsAdmin,
	}
}

// ============================================================
// Catalog
// ============================================================

// Brand represents brands table
type Brand struct {
	Model
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:1024;not null" json:"description"`
}

func (Brand) TableName() string {
	return "brands"
}

// Style represents styles table
type Style struct {
	Model
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:1024;not null" json:"description"`
}

func (Style) TableName() string {
	return "styles"
}

// CarBrand is the brand snapshot stored on a car
type CarBrand struct {
	ID   string `gorm:"size:36;index" json:"id"`
	Name string `gorm:"size:255" json:"name"`
}

// CarStyle is the style snapshot stored on a car
type CarStyle struct {
	ID   string `gorm:"size:36;index" json:"id"`
	Name string `gorm:"size:255" json:"name"`
}

// Car represents cars table
type Car struct {
	Model
	Name            string   `gorm:"size:255;not null" json:"name"`
	Description     string   `gorm:"size:1024;not null" json:"description"`
	Brand           CarBrand `gorm:"embedded;embeddedPrefix:brand_" json:"brand"`
	Style           CarStyle `gorm:"embedded;embeddedPrefix:style_" json:"style"`
	NumberInStock   int      `gorm:"not null" json:"numberInStock"`
	DailyRentalRate float64  `gorm:"not null" json:"dailyRentalRate"`
}

func (Car) TableName() string {
	return "cars"
}

// ============================================================
// Rentals
// ============================================================

// RentalCustomer is the customer snapshot stored on a rental
type RentalCustomer struct {
	ID     string `gorm:"size:36;index" json:"id"`
	Name   string `gorm:"size:255" json:"name"`
	Phone  string `gorm:"size:255" json:"phone"`
	IsGold bool   `json:"isGold"`
}

// RentalCar is the car snapshot stored on a rental
type RentalCar struct {
	ID              string  `gorm:"size:36;index" json:"id"`
	Name            string  `gorm:"size:255" json:"name"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

// Rental represents rentals table.
// A rental is open while DateReturned is nil.
type Rental struct {
	Model
	Customer     RentalCustomer `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Car          RentalCar      `gorm:"embedded;embeddedPrefix:car_" json:"car"`
	DateOut      time.Time      `gorm:"not null;index" json:"dateOut"`
	DateReturned *time.Time     `json:"dateReturned,omitempty"`
	RentalFee    *float64       `json:"rentalFee,omitempty"`
}

func (Rental) TableName() string {
	return "rentals"
}

func (r *Rental) IsOpen() bool {
	return r.DateReturned == nil
}

// SnapshotCustomer copies the fields a rental keeps from a customer
func SnapshotCustomer(c *Customer) RentalCustomer {
	return RentalCustomer{
		ID:     c.ID,
		Name:   c.Name,
		Phone:  c.Phone,
		IsGold: c.IsGold,
	}
}

// SnapshotCar copies the fields a rental keeps from a car
func SnapshotCar(c *Car) RentalCar {
	return RentalCar{
		ID:              c.ID,
		Name:            c.Name,
		DailyRentalRate: c.DailyRentalRate,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates every table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Employee{},
		&Brand{},
		&Style{},
		&Car{},
		&Rental{},
	)
}
