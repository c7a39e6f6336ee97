package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	isAdmin    bool
	isAdminErr error
	adminUser  *AdminUser
	userErr    error
}

func (f *fakeRepo) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	return f.isAdmin, f.isAdminErr
}

func (f *fakeRepo) GetAdminUser(ctx context.Context, userID uuid.UUID) (*AdminUser, error) {
	return f.adminUser, f.userErr
}

func TestIsAdminDatabaseAnswerWins(t *testing.T) {
	svc := NewService(&fakeRepo{isAdmin: true})
	if !svc.IsAdmin(context.Background(), uuid.New(), TokenMeta{}) {
		t.Fatal("database true must grant access")
	}

	// Even elevated-looking metadata cannot override a database no.
	svc = NewService(&fakeRepo{isAdmin: false})
	meta := TokenMeta{Role: "admin", Email: "chief@admin.citizenvoice.gov"}
	if svc.IsAdmin(context.Background(), uuid.New(), meta) {
		t.Fatal("database false must deny access regardless of metadata")
	}
}

func TestIsAdminFallbackOnDatabaseError(t *testing.T) {
	repo := &fakeRepo{isAdminErr: errors.New("connection refused")}
	svc := NewService(repo)

	if svc.IsAdmin(context.Background(), uuid.New(), TokenMeta{}) {
		t.Fatal("no metadata and failed check must deny")
	}
	if svc.IsAdmin(context.Background(), uuid.New(), TokenMeta{Role: "citizen"}) {
		t.Fatal("citizen role must deny")
	}
	if !svc.IsAdmin(context.Background(), uuid.New(), TokenMeta{Role: "moderator"}) {
		t.Fatal("moderator role should pass the fallback")
	}
	if !svc.IsAdmin(context.Background(), uuid.New(), TokenMeta{Role: "super_admin"}) {
		t.Fatal("super_admin role should pass the fallback")
	}
	if !svc.IsAdmin(context.Background(), uuid.New(), TokenMeta{Email: "Clerk@Admin.CitizenVoice.gov"}) {
		t.Fatal("staff email suffix should pass the fallback, case-insensitively")
	}
	if svc.IsAdmin(context.Background(), uuid.New(), TokenMeta{Email: "someone@example.com"}) {
		t.Fatal("ordinary email must deny")
	}
}

func TestIsAdminNilUserDenied(t *testing.T) {
	svc := NewService(&fakeRepo{isAdmin: true})
	if svc.IsAdmin(context.Background(), uuid.Nil, TokenMeta{Role: "admin"}) {
		t.Fatal("anonymous caller must always be denied")
	}
}

func TestHasPermission(t *testing.T) {
	moderator := &AdminUser{ID: uuid.New(), Role: RoleModerator}
	svc := NewService(&fakeRepo{adminUser: moderator})

	if !svc.HasPermission(context.Background(), moderator.ID, PermModerateReports) {
		t.Fatal("moderator should moderate reports")
	}
	if svc.HasPermission(context.Background(), moderator.ID, PermManageNews) {
		t.Fatal("moderator should not manage news")
	}
}

func TestHasPermissionSuperAdminWildcard(t *testing.T) {
	super := &AdminUser{ID: uuid.New(), Role: RoleSuperAdmin}
	svc := NewService(&fakeRepo{adminUser: super})

	for _, perm := range []Permission{PermModerateReports, PermManageNews, PermViewUsers, Permission("anything.future")} {
		if !svc.HasPermission(context.Background(), super.ID, perm) {
			t.Fatalf("super_admin should hold %s", perm)
		}
	}
}

func TestHasPermissionUnknownUser(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if svc.HasPermission(context.Background(), uuid.New(), PermViewReports) {
		t.Fatal("unknown user must not hold permissions")
	}

	svc = NewService(&fakeRepo{userErr: errors.New("db down")})
	if svc.HasPermission(context.Background(), uuid.New(), PermViewReports) {
		t.Fatal("lookup failure must resolve to denied")
	}
}

func TestCanManage(t *testing.T) {
	if !CanManage(RoleSuperAdmin, RoleAdmin) {
		t.Fatal("super_admin should manage admin")
	}
	if CanManage(RoleModerator, RoleAdmin) {
		t.Fatal("moderator should not manage admin")
	}
	if CanManage(RoleAdmin, RoleAdmin) {
		t.Fatal("equal roles should not manage each other")
	}
}
