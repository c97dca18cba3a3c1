package partner

import (
	"time"

	"github.com/billing/backend/internal/domain/shared"
)

// Customer represents a customer record.
// Email and the address fields are deliberately free text: the operator
// types them in and the system stores them as-is, with no format checks.
type Customer struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(200);not null"`
	Email    string `gorm:"type:varchar(200)"`
	Address  string `gorm:"type:text"`
	Location string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(name, email, address, location string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Address:    address,
		Location:   location,
	}, nil
}

// Update overwrites all four fields
func (c *Customer) Update(name, email, address, location string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = name
	c.Email = email
	c.Address = address
	c.Location = location
	c.UpdatedAt = time.Now()

	return nil
}

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}
