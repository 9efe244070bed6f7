package services

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"trucki/internal/models"
	"trucki/internal/repository"
)

type fakeProvisioner struct {
	fail   bool
	calls  int
	roles  []string
	nextID uint
}

func (p *fakeProvisioner) Provision(ctx context.Context, name, email, role string) (Credentials, error) {
	p.calls++
	if p.fail {
		return Credentials{}, errors.New("identity store unavailable")
	}
	p.roles = append(p.roles, role)
	p.nextID++
	return Credentials{UserID: p.nextID, RawPassword: "Aa1!aaaaaaaa"}, nil
}

type recordingAssetStore struct {
	stored map[string][]byte
}

func newRecordingAssetStore() *recordingAssetStore {
	return &recordingAssetStore{stored: make(map[string][]byte)}
}

func (s *recordingAssetStore) Store(ctx context.Context, payload []byte, name string) (string, error) {
	s.stored[name] = payload
	return "/uploads/" + name, nil
}

func newDriverFixture(t *testing.T) (*DriverService, *repository.MemoryDriverStore, *recordingAssetStore, *fakeProvisioner) {
	t.Helper()
	drivers := repository.NewMemoryDriverStore(nil)
	assets := newRecordingAssetStore()
	accounts := &fakeProvisioner{}
	svc := NewDriverService(drivers, NewDriverUniquenessValidator(drivers), assets, accounts)
	return svc, drivers, assets, accounts
}

func addDriver(t *testing.T, svc *DriverService, name, email, phone string) {
	t.Helper()
	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: name, Email: email, Phone: phone,
	})
	require.True(t, resp.IsSuccessful, "seeding driver %s failed: %s", name, resp.Message)
}

func TestAddDriverEndToEnd(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)

	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Joe", Email: "a@x.com", Phone: "555",
	})
	require.True(t, resp.IsSuccessful)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "Driver created successfully", resp.Message)
	require.NotEmpty(t, resp.Data, "one-time password must be returned")

	got := svc.GetDriverByID(context.Background(), 1)
	require.True(t, got.IsSuccessful)
	require.Equal(t, "Joe", got.Data.Name)
	require.Equal(t, "555", got.Data.Phone)
	require.Equal(t, "a@x.com", got.Data.EmailAddress)
	require.True(t, got.Data.IsActive)
}

func TestAddDriverEmailConflict(t *testing.T) {
	svc, drivers, assets, accounts := newDriverFixture(t)
	addDriver(t, svc, "Joe", "a@x.com", "555")

	payload := base64.StdEncoding.EncodeToString([]byte("id card bytes"))
	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Impostor", Email: "a@x.com", Phone: "777", IdCard: payload,
	})
	require.False(t, resp.IsSuccessful)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Email address already exists", resp.Message)

	// A duplicate must not trigger any side effect.
	all, err := drivers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotContains(t, assets.stored, "ImpostoruserIdCard")
	require.Equal(t, 1, accounts.calls, "no extra credential provisioned")
}

func TestAddDriverPhoneConflict(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "a@x.com", "555")

	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Jane", Email: "b@x.com", Phone: "555",
	})
	require.False(t, resp.IsSuccessful)
	require.Equal(t, "Phone number already exists", resp.Message)
}

func TestAddDriverEmailWinsWhenBothCollide(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "a@x.com", "555")

	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Joe Again", Email: "a@x.com", Phone: "555",
	})
	require.Equal(t, "Email address already exists", resp.Message)
}

func TestAddDriverAfterDeactivationReleasesIdentity(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "a@x.com", "555")

	resp := svc.DeactivateDriver(context.Background(), 1)
	require.True(t, resp.IsSuccessful)

	// Uniqueness applies among active drivers only.
	again := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Joe II", Email: "a@x.com", Phone: "555",
	})
	require.True(t, again.IsSuccessful, again.Message)
}

func TestAddDriverProvisioningFailureAbortsPersist(t *testing.T) {
	svc, drivers, _, accounts := newDriverFixture(t)
	accounts.fail = true

	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Joe", Email: "a@x.com", Phone: "555",
	})
	require.False(t, resp.IsSuccessful)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	all, err := drivers.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all, "driver row must not be written when provisioning fails")
}

func TestAddDriverStoresAssetsUnderDerivedNames(t *testing.T) {
	svc, _, assets, _ := newDriverFixture(t)

	idCard := base64.StdEncoding.EncodeToString([]byte("id card bytes"))
	picture := base64.StdEncoding.EncodeToString([]byte("picture bytes"))
	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Joe", Email: "a@x.com", Phone: "555", IdCard: idCard, Picture: picture,
	})
	require.True(t, resp.IsSuccessful)
	require.Equal(t, []byte("id card bytes"), assets.stored["JoeuserIdCard"])
	require.Equal(t, []byte("picture bytes"), assets.stored["JoeuserProfilePicture"])

	got := svc.GetDriverByID(context.Background(), 1)
	require.Equal(t, "/uploads/JoeuserIdCard", got.Data.IdentityCardURL)
	require.Equal(t, "/uploads/JoeuserProfilePicture", got.Data.ProfilePictureURL)
}

func TestAddDriverWithoutPayloadsLeavesReferencesEmpty(t *testing.T) {
	svc, _, assets, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "a@x.com", "555")

	require.Empty(t, assets.stored)
	got := svc.GetDriverByID(context.Background(), 1)
	require.Empty(t, got.Data.IdentityCardURL)
	require.Empty(t, got.Data.ProfilePictureURL)
}

func TestEditDriverOverwritesFieldsAndReplacesPicture(t *testing.T) {
	svc, _, assets, _ := newDriverFixture(t)
	picture := base64.StdEncoding.EncodeToString([]byte("old picture"))
	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Joe", Email: "a@x.com", Phone: "555", Picture: picture,
	})
	require.True(t, resp.IsSuccessful)

	newPicture := base64.StdEncoding.EncodeToString([]byte("new picture"))
	edit := svc.EditDriver(context.Background(), 1, models.EditDriverRequest{
		Name: "Joseph", Phone: "556", ProfilePicture: newPicture,
	})
	require.True(t, edit.IsSuccessful)
	require.Equal(t, "Driver updated successfully", edit.Message)

	got := svc.GetDriverByID(context.Background(), 1)
	require.Equal(t, "Joseph", got.Data.Name)
	require.Equal(t, "556", got.Data.Phone)
	require.Equal(t, "/uploads/JosephuserProfilePicture", got.Data.ProfilePictureURL)
	require.Equal(t, []byte("new picture"), assets.stored["JosephuserProfilePicture"])
}

func TestEditDriverWithoutPayloadClearsPictureReference(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	picture := base64.StdEncoding.EncodeToString([]byte("old picture"))
	resp := svc.AddDriver(context.Background(), models.AddDriverRequest{
		Name: "Joe", Email: "a@x.com", Phone: "555", Picture: picture,
	})
	require.True(t, resp.IsSuccessful)

	edit := svc.EditDriver(context.Background(), 1, models.EditDriverRequest{
		Name: "Joe", Phone: "555",
	})
	require.True(t, edit.IsSuccessful)

	got := svc.GetDriverByID(context.Background(), 1)
	require.Empty(t, got.Data.ProfilePictureURL, "missing payload clears the stored reference")
}

func TestEditDriverNotFound(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	resp := svc.EditDriver(context.Background(), 99, models.EditDriverRequest{Name: "X", Phone: "1"})
	require.False(t, resp.IsSuccessful)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Driver not found", resp.Message)
}

func TestDeactivateDriver(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "a@x.com", "555")

	missing := svc.DeactivateDriver(context.Background(), 42)
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
	require.Equal(t, "Driver not found", missing.Message)

	first := svc.DeactivateDriver(context.Background(), 1)
	require.True(t, first.IsSuccessful)
	require.Equal(t, "Driver deactivated successfully", first.Message)

	got := svc.GetDriverByID(context.Background(), 1)
	require.False(t, got.Data.IsActive)

	// Repeating is not an error and leaves state unchanged.
	second := svc.DeactivateDriver(context.Background(), 1)
	require.True(t, second.IsSuccessful)
	require.False(t, svc.GetDriverByID(context.Background(), 1).Data.IsActive)
}

func TestSearchDriversSentinels(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "joe@x.com", "1")
	addDriver(t, svc, "Joanna", "joanna@x.com", "2")
	addDriver(t, svc, "Mark", "mark@x.com", "3")

	for _, term := range []string{"", " ", "   ", "null", "NULL", "Null"} {
		resp := svc.SearchDrivers(context.Background(), term)
		require.True(t, resp.IsSuccessful, "term %q", term)
		require.Len(t, resp.Data, 3, "term %q means no filter", term)
	}
}

func TestSearchDriversSubstringCaseInsensitive(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "joe@x.com", "1")
	addDriver(t, svc, "Joanna", "joanna@x.com", "2")
	addDriver(t, svc, "Mark", "mark@x.com", "3")

	resp := svc.SearchDrivers(context.Background(), "JO")
	require.True(t, resp.IsSuccessful)
	require.Len(t, resp.Data, 2)
	require.Equal(t, "Joe", resp.Data[0].Name)
	require.Equal(t, "Joanna", resp.Data[1].Name)
}

func TestSearchDriversNoResults(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "joe@x.com", "1")

	resp := svc.SearchDrivers(context.Background(), "zzz")
	require.False(t, resp.IsSuccessful)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "No driver found", resp.Message)
	require.NotNil(t, resp.Data)
	require.Empty(t, resp.Data)
}

func TestGetDriverProfileByUserID(t *testing.T) {
	svc, _, _, _ := newDriverFixture(t)
	addDriver(t, svc, "Joe", "a@x.com", "555")

	// The fake provisioner assigned UserID 1 to the first driver.
	resp := svc.GetDriverProfile(context.Background(), 1)
	require.True(t, resp.IsSuccessful)
	require.Equal(t, "Joe", resp.Data.Name)

	missing := svc.GetDriverProfile(context.Background(), 99)
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
}
