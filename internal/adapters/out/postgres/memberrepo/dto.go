// Package memberrepo provides data transfer objects and mapping functions
// for member persistence. Implements the repository pattern for the member
// aggregate, converting between domain entities and database rows.
package memberrepo

import (
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting member
// aggregates. The home address is embedded into the members table.
type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Address AddressDTO `gorm:"embedded"`
}

// TableName specifies the database table name for member entities.
func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO represents the embedded home address columns within the
// members table.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

// fromDomain converts a member domain aggregate to its database representation.
func fromDomain(m *member.Member) MemberDTO {
	address := m.Address()

	return MemberDTO{
		ID:   m.ID().Bytes(),
		Name: m.Name(),
		Address: AddressDTO{
			City:    address.City(),
			Street:  address.Street(),
			Zipcode: address.Zipcode(),
		},
	}
}

// toDomain converts a database DTO to a member domain aggregate using
// RestoreMember.
func toDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(id, dto.Name, address)
}
