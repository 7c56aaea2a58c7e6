package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

func TestFindByPhone_Encontrado(t *testing.T) {
	s := newMemStore()
	dob := time.Date(1988, 12, 1, 0, 0, 0, 0, time.UTC)
	s.customers[9] = &entity.Customer{ID: 9, Name: "Dewi", PhoneNumber: "08129999", Address: "Bandung", DateOfBirth: &dob}
	uc := NewCustomerUseCase(memCustomers{s})

	out, err := uc.FindByPhone(context.Background(), " 0812-9999 ")

	require.NoError(t, err)
	assert.Equal(t, "9", out.ID)
	assert.Equal(t, "Dewi", out.Name)
	assert.Equal(t, "08129999", out.PhoneNumber)
	require.NotNil(t, out.DateOfBirth)
	assert.Equal(t, "1988-12-01T00:00:00Z", *out.DateOfBirth)
}

func TestFindByPhone_SinFechaDeNacimiento(t *testing.T) {
	s := newMemStore()
	s.customers[9] = &entity.Customer{ID: 9, Name: "Dewi", PhoneNumber: "08129999"}
	uc := NewCustomerUseCase(memCustomers{s})

	out, err := uc.FindByPhone(context.Background(), "08129999")

	require.NoError(t, err)
	assert.Nil(t, out.DateOfBirth)
}

func TestFindByPhone_NoEncontrado(t *testing.T) {
	uc := NewCustomerUseCase(memCustomers{newMemStore()})

	_, err := uc.FindByPhone(context.Background(), "0800")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindByPhone_Vacio(t *testing.T) {
	uc := NewCustomerUseCase(memCustomers{newMemStore()})

	_, err := uc.FindByPhone(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
