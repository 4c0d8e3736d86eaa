package services

import (
	"encoding/json"
	"testing"

	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileService(db *gorm.DB) *ProfileService {
	return NewProfileService(repository.NewUserRepository(db))
}

func TestMeCreatesDefaultProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	u := entity.User{Email: "new@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	out, err := svc.Me(u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, out.UserID)

	var p entity.Profile
	require.NoError(t, db.First(&p, "user_id = ?", u.ID).Error)
	require.Equal(t, entity.RoleCustomer, p.Role)
}

func TestSelfUpdateCannotChangeRole(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	u := seedUser(t, db, "user@example.com", entity.RoleCustomer)

	// A hostile payload smuggling a role field: the self projection has no
	// role field, so the value is dropped at decode time.
	payload := []byte(`{"firstName":"Eve","lastName":"Adams","role":"admin"}`)
	var in SelfProfileIn
	require.NoError(t, json.Unmarshal(payload, &in))

	out, err := svc.UpdateMe(u.ID, &in)
	require.NoError(t, err)
	require.Equal(t, "Eve", out.FirstName)

	var p entity.Profile
	require.NoError(t, db.First(&p, "user_id = ?", u.ID).Error)
	require.Equal(t, entity.RoleCustomer, p.Role)
}

func TestAdminUpdateChangesRole(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	u := seedUser(t, db, "user@example.com", entity.RoleCustomer)

	p, err := svc.AdminUpdate(u.ID, &AdminProfileIn{
		FirstName: "John", LastName: "Smith", Role: entity.RoleDeliveryCrew,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RoleDeliveryCrew, p.Role)

	var stored entity.Profile
	require.NoError(t, db.First(&stored, "user_id = ?", u.ID).Error)
	require.Equal(t, entity.RoleDeliveryCrew, stored.Role)
}

func TestAdminUpdateRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	u := seedUser(t, db, "user@example.com", entity.RoleCustomer)

	_, err := svc.AdminUpdate(u.ID, &AdminProfileIn{
		FirstName: "John", LastName: "Smith", Role: "superuser",
	})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestSelfViewOmitsRole(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)
	u := seedUser(t, db, "user@example.com", entity.RoleAdmin)

	out, err := svc.Me(u.ID)
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "role")
}
