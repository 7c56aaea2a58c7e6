package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

func int64Ptr(v int64) *int64 { return &v }

func TestUserCreate_HasheaPassword(t *testing.T) {
	f := newFakeCatalog()
	uc := NewUserUseCase(fakeUsers{f}, fakeBranches{f})

	res, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "kasir1", Password: "rahasia123", FullName: "Kasir Satu",
		Role: entity.RoleBranchAdmin, BranchID: int64Ptr(1),
	})

	require.NoError(t, err)
	u := f.users[res.UserID]
	require.NotNil(t, u)
	assert.NotEqual(t, "rahasia123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("rahasia123")))
	assert.Equal(t, int64(1), *u.BranchID)
}

func TestUserCreate_AdminCabangSinSucursal(t *testing.T) {
	f := newFakeCatalog()
	uc := NewUserUseCase(fakeUsers{f}, fakeBranches{f})

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "kasir1", Password: "rahasia123", FullName: "Kasir", Role: entity.RoleBranchAdmin,
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "branch_id", vErr.Field)
}

func TestUserCreate_SucursalInexistente(t *testing.T) {
	f := newFakeCatalog()
	uc := NewUserUseCase(fakeUsers{f}, fakeBranches{f})

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "kasir1", Password: "rahasia123", FullName: "Kasir",
		Role: entity.RoleBranchAdmin, BranchID: int64Ptr(99),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserCreate_AdminPusatIgnoraSucursal(t *testing.T) {
	f := newFakeCatalog()
	uc := NewUserUseCase(fakeUsers{f}, fakeBranches{f})

	res, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "pusat", Password: "rahasia123", FullName: "Kantor Pusat",
		Role: entity.RoleHeadOffice, BranchID: int64Ptr(1),
	})

	require.NoError(t, err)
	assert.Nil(t, f.users[res.UserID].BranchID)
}

func TestUserCreate_Duplicado(t *testing.T) {
	f := newFakeCatalog()
	uc := NewUserUseCase(fakeUsers{f}, fakeBranches{f})
	in := dto.CreateUserRequest{Username: "pusat", Password: "rahasia123", FullName: "A", Role: entity.RoleHeadOffice}
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserUpdate(t *testing.T) {
	f := newFakeCatalog()
	uc := NewUserUseCase(fakeUsers{f}, fakeBranches{f})
	res, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "pusat", Password: "rahasia123", FullName: "A", Role: entity.RoleHeadOffice,
	})
	require.NoError(t, err)

	err = uc.Update(context.Background(), res.UserID, dto.UpdateUserRequest{
		FullName: "Budi", Role: entity.RoleBranchAdmin, BranchID: int64Ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi", f.users[res.UserID].FullName)
	assert.Equal(t, int64(2), *f.users[res.UserID].BranchID)

	err = uc.Update(context.Background(), 12345, dto.UpdateUserRequest{FullName: "X", Role: entity.RoleHeadOffice})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserList_SinHash(t *testing.T) {
	f := newFakeCatalog()
	uc := NewUserUseCase(fakeUsers{f}, fakeBranches{f})
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "b", Password: "rahasia123", FullName: "Zaki", Role: entity.RoleHeadOffice,
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "a", Password: "rahasia123", FullName: "Ani", Role: entity.RoleHeadOffice,
	})
	require.NoError(t, err)

	list, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ani", list[0].FullName)
	assert.Equal(t, "Zaki", list[1].FullName)
}

func TestBranchList(t *testing.T) {
	f := newFakeCatalog()
	uc := NewBranchUseCase(fakeBranches{f})

	list, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "BDG", list[0].BranchCode)
	assert.Equal(t, "Bandung", list[0].BranchName)
}
