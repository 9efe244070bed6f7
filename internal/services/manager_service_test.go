package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"trucki/internal/models"
	"trucki/internal/repository"
)

func newManagerFixture(t *testing.T) (*ManagerService, *repository.MemoryCompanyStore, *fakeProvisioner) {
	t.Helper()
	companies := repository.NewMemoryCompanyStore()
	accounts := &fakeProvisioner{}
	svc := NewManagerService(repository.NewMemoryManagerStore(), companies, accounts)
	return svc, companies, accounts
}

func seedCompany(t *testing.T, companies *repository.MemoryCompanyStore, name string) uint {
	t.Helper()
	company := models.Company{Name: name}
	require.NoError(t, companies.Create(context.Background(), &company))
	return company.ID
}

func TestAddManagerProvisionsRoleByType(t *testing.T) {
	svc, companies, accounts := newManagerFixture(t)
	companyID := seedCompany(t, companies, "Acme Haulage")

	resp := svc.AddManager(context.Background(), models.AddManagerRequest{
		Name: "Amaka", Email: "amaka@x.com", Phone: "100",
		CompanyIDs: []uint{companyID}, ManagerType: models.ManagerTypeStandard,
	})
	require.True(t, resp.IsSuccessful)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, resp.Data)

	finance := svc.AddManager(context.Background(), models.AddManagerRequest{
		Name: "Femi", Email: "femi@x.com", Phone: "101",
		ManagerType: models.ManagerTypeFinance,
	})
	require.True(t, finance.IsSuccessful)

	require.Equal(t, []string{"manager", "finance"}, accounts.roles)

	got := svc.GetManagerByID(context.Background(), 1)
	require.True(t, got.IsSuccessful)
	require.Equal(t, models.ManagerTypeStandard, got.Data.ManagerType)
	require.Len(t, got.Data.Companies, 1)
	require.Equal(t, "Acme Haulage", got.Data.Companies[0].Name)
}

func TestAddManagerDefaultsToStandardType(t *testing.T) {
	svc, _, accounts := newManagerFixture(t)

	resp := svc.AddManager(context.Background(), models.AddManagerRequest{
		Name: "Amaka", Email: "amaka@x.com", Phone: "100",
	})
	require.True(t, resp.IsSuccessful)
	require.Equal(t, []string{"manager"}, accounts.roles)
}

func TestAddManagerRejectsUnknownType(t *testing.T) {
	svc, _, accounts := newManagerFixture(t)

	resp := svc.AddManager(context.Background(), models.AddManagerRequest{
		Name: "Amaka", Email: "amaka@x.com", Phone: "100", ManagerType: "superuser",
	})
	require.False(t, resp.IsSuccessful)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid manager type", resp.Message)
	require.Zero(t, accounts.calls)
}

func TestEditManagerReplacesCompanies(t *testing.T) {
	svc, companies, _ := newManagerFixture(t)
	first := seedCompany(t, companies, "Acme Haulage")
	second := seedCompany(t, companies, "Borno Freight")

	resp := svc.AddManager(context.Background(), models.AddManagerRequest{
		Name: "Amaka", Email: "amaka@x.com", Phone: "100", CompanyIDs: []uint{first},
	})
	require.True(t, resp.IsSuccessful)

	edit := svc.EditManager(context.Background(), 1, models.EditManagerRequest{
		Name: "Amaka O.", Phone: "102",
		ManagerType: models.ManagerTypeFinance, CompanyIDs: []uint{second},
	})
	require.True(t, edit.IsSuccessful)

	got := svc.GetManagerByID(context.Background(), 1)
	require.Equal(t, "Amaka O.", got.Data.Name)
	require.Equal(t, "102", got.Data.Phone)
	require.Equal(t, models.ManagerTypeFinance, got.Data.ManagerType)
	require.Len(t, got.Data.Companies, 1)
	require.Equal(t, "Borno Freight", got.Data.Companies[0].Name)
}

func TestEditManagerNotFound(t *testing.T) {
	svc, _, _ := newManagerFixture(t)
	resp := svc.EditManager(context.Background(), 9, models.EditManagerRequest{Name: "X", Phone: "1"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Manager not found", resp.Message)
}

func TestDeactivateManagerIdempotent(t *testing.T) {
	svc, _, _ := newManagerFixture(t)
	resp := svc.AddManager(context.Background(), models.AddManagerRequest{
		Name: "Amaka", Email: "amaka@x.com", Phone: "100",
	})
	require.True(t, resp.IsSuccessful)

	missing := svc.DeactivateManager(context.Background(), 7)
	require.Equal(t, http.StatusNotFound, missing.StatusCode)

	first := svc.DeactivateManager(context.Background(), 1)
	require.True(t, first.IsSuccessful)
	require.False(t, svc.GetManagerByID(context.Background(), 1).Data.IsActive)

	second := svc.DeactivateManager(context.Background(), 1)
	require.True(t, second.IsSuccessful)
}

func TestSearchManagers(t *testing.T) {
	svc, _, _ := newManagerFixture(t)
	for _, m := range []struct{ name, email, phone string }{
		{"Amaka", "amaka@x.com", "1"},
		{"Amara", "amara@x.com", "2"},
		{"Bola", "bola@x.com", "3"},
	} {
		resp := svc.AddManager(context.Background(), models.AddManagerRequest{
			Name: m.name, Email: m.email, Phone: m.phone,
		})
		require.True(t, resp.IsSuccessful)
	}

	all := svc.SearchManagers(context.Background(), "null")
	require.True(t, all.IsSuccessful)
	require.Len(t, all.Data, 3)

	some := svc.SearchManagers(context.Background(), "ama")
	require.True(t, some.IsSuccessful)
	require.Len(t, some.Data, 2)

	none := svc.SearchManagers(context.Background(), "zzz")
	require.False(t, none.IsSuccessful)
	require.Equal(t, "No manager found", none.Message)
	require.Empty(t, none.Data)
}
