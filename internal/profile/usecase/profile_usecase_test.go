package usecase

import (
	"testing"

	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	"github.com/voknelis/XSched/internal/profile/domain"
	"github.com/voknelis/XSched/internal/profile/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) (ProfileUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.UserProfile{}))

	return NewProfileUsecase(repository.NewGormProfileRepository(db)), db
}

var (
	alice = &authdomain.User{ID: "user-alice", Username: "alice"}
	bob   = &authdomain.User{ID: "user-bob", Username: "bob"}
)

func createProfile(t *testing.T, u ProfileUsecase, user *authdomain.User, title string, isDefault bool) *domain.UserProfile {
	t.Helper()

	profile := &domain.UserProfile{Title: title, IsDefault: isDefault}
	require.NoError(t, u.CreateProfile(user, profile))
	return profile
}

func TestCreateProfile_AssignsOwnerAndID(t *testing.T) {
	u, _ := newTestUsecase(t)

	profile := createProfile(t, u, alice, "Work", false)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, alice.ID, profile.UserID)
}

func TestCreateProfile_DefaultFlagMoves(t *testing.T) {
	u, _ := newTestUsecase(t)

	first := createProfile(t, u, alice, "Work", true)
	second := createProfile(t, u, alice, "Personal", true)

	// Setting a new default clears the previous one.
	reloaded, err := u.GetUserProfile(alice, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)

	def, err := u.GetDefaultProfile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)
}

func TestCreateProfile_DefaultIsPerUser(t *testing.T) {
	u, _ := newTestUsecase(t)

	aliceDefault := createProfile(t, u, alice, "Work", true)
	createProfile(t, u, bob, "Work", true)

	// Bob's default never disturbs Alice's.
	reloaded, err := u.GetUserProfile(alice, aliceDefault.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDefault)
}

func TestGetUserProfile_ForeignProfileHidden(t *testing.T) {
	u, _ := newTestUsecase(t)

	bobProfile := createProfile(t, u, bob, "Secret", false)

	_, err := u.GetUserProfile(alice, bobProfile.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetDefaultProfile_None(t *testing.T) {
	u, _ := newTestUsecase(t)

	createProfile(t, u, alice, "Work", false)

	_, err := u.GetDefaultProfile(alice.ID)
	assert.ErrorIs(t, err, ErrNoDefaultProfile)
}

func TestGetDefaultProfile_MultipleDefaults(t *testing.T) {
	u, db := newTestUsecase(t)

	createProfile(t, u, alice, "Work", true)

	// Violate the invariant behind the usecase's back.
	require.NoError(t, db.Create(&domain.UserProfile{
		ID: "rogue", Title: "Rogue", UserID: alice.ID, IsDefault: true,
	}).Error)

	_, err := u.GetDefaultProfile(alice.ID)
	assert.ErrorIs(t, err, ErrMultipleDefaultProfiles)
}

func TestUpdateProfile_MovesDefaultFlag(t *testing.T) {
	u, _ := newTestUsecase(t)

	first := createProfile(t, u, alice, "Work", true)
	second := createProfile(t, u, alice, "Personal", false)

	incoming := &domain.UserProfile{Title: "Personal renamed", IsDefault: true}
	require.NoError(t, u.UpdateProfile(alice, incoming, second))

	assert.Equal(t, "Personal renamed", second.Title)
	assert.True(t, second.IsDefault)
	assert.Equal(t, alice.ID, second.UserID, "replace must not change the owner")

	reloaded, err := u.GetUserProfile(alice, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}

func TestPartiallyUpdateProfile_TitleOnly(t *testing.T) {
	u, _ := newTestUsecase(t)

	profile := createProfile(t, u, alice, "Work", true)

	title := "Renamed"
	updated, err := u.PartiallyUpdateProfile(alice, &ProfilePatch{Title: &title}, profile)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.IsDefault, "untouched fields keep their value")
}

func TestPartiallyUpdateProfile_SetDefault(t *testing.T) {
	u, _ := newTestUsecase(t)

	first := createProfile(t, u, alice, "Work", true)
	second := createProfile(t, u, alice, "Personal", false)

	isDefault := true
	_, err := u.PartiallyUpdateProfile(alice, &ProfilePatch{IsDefault: &isDefault}, second)
	require.NoError(t, err)

	def, err := u.GetDefaultProfile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)

	reloaded, err := u.GetUserProfile(alice, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}

func TestDeleteProfile(t *testing.T) {
	u, _ := newTestUsecase(t)

	def := createProfile(t, u, alice, "Work", true)
	other := createProfile(t, u, alice, "Personal", false)

	// The default profile is protected.
	assert.ErrorIs(t, u.DeleteProfile(alice, def.ID), ErrDefaultProfileDelete)

	require.NoError(t, u.DeleteProfile(alice, other.ID))
	_, err := u.GetUserProfile(alice, other.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDeleteProfile_ForeignProfileHidden(t *testing.T) {
	u, _ := newTestUsecase(t)

	bobProfile := createProfile(t, u, bob, "Secret", false)

	err := u.DeleteProfile(alice, bobProfile.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	// Still there for its owner.
	_, err = u.GetUserProfile(bob, bobProfile.ID)
	require.NoError(t, err)
}

func TestGetUserProfiles_ScopedToOwner(t *testing.T) {
	u, _ := newTestUsecase(t)

	createProfile(t, u, alice, "Work", true)
	createProfile(t, u, alice, "Personal", false)
	createProfile(t, u, bob, "Secret", true)

	profiles, err := u.GetUserProfiles(alice)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.Equal(t, alice.ID, p.UserID)
	}
}
