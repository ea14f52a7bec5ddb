package services

import (
	"testing"

	"teamboard/internal/models"
	"teamboard/internal/testutil"
)

func TestAddRole(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoleService(db)

		role, err := svc.AddRole("  Designer  ")
		testutil.AssertNoError(t, err)

		if role.Name != "designer" {
			t.Errorf("expected normalized name designer, got %s", role.Name)
		}
		if role.Root {
			t.Error("custom roles must not be root")
		}
		if role.Color == "" || role.Icon == "" {
			t.Error("expected randomized color and icon")
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoleService(db)

		_, err := svc.AddRole("designer")
		testutil.AssertNoError(t, err)

		_, err = svc.AddRole("Designer")
		testutil.AssertAppError(t, err, "DUPLICATE_ROLE")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoleService(db)

		_, err := svc.AddRole("   ")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestRemoveRole(t *testing.T) {
	t.Run("reassigns_members_before_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoleService(db)

		role, err := svc.AddRole("designer")
		testutil.AssertNoError(t, err)

		member := testutil.CreateTestUser(t, db)
		db.Model(member).Update("role", role.Name)

		testutil.AssertNoError(t, svc.RemoveRole(role.ID))

		var stored models.User
		db.First(&stored, member.ID)
		if stored.Role != models.RoleUser {
			t.Errorf("expected member reassigned to user, got %s", stored.Role)
		}

		var count int64
		db.Model(&models.Role{}).Where("id = ?", role.ID).Count(&count)
		if count != 0 {
			t.Error("expected role row deleted")
		}
	})

	t.Run("seed_role_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoleService(db)

		seed := &models.Role{Name: models.RoleAdmin, Color: "red", Icon: "crown", Root: true}
		if err := db.Create(seed).Error; err != nil {
			t.Fatalf("failed to create seed role: %v", err)
		}

		testutil.AssertNoError(t, svc.RemoveRole(seed.ID))

		var count int64
		db.Model(&models.Role{}).Where("id = ?", seed.ID).Count(&count)
		if count != 1 {
			t.Error("seed role must survive removal attempts")
		}
	})

	t.Run("missing_role_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoleService(db)

		testutil.AssertNoError(t, svc.RemoveRole(9999))
	})
}

func TestListRoles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewRoleService(db)

	testutil.CreateTestRole(t, db)
	testutil.CreateTestRole(t, db)

	roles, err := svc.ListRoles()
	testutil.AssertNoError(t, err)
	if len(roles) != 2 {
		t.Errorf("expected 2 roles, got %d", len(roles))
	}
}
