package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/mail"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite"
	"github.com/aussiebroadwan/tack/pkg/cryptox"
	"github.com/aussiebroadwan/tack/pkg/idx"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-for-tests-0123456789abcdef"
	testRefreshSecret = "refresh-secret-for-tests-0123456789abcdef"
	testPassword      = "Passw0rd!"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tack-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type fixture struct {
	ctx   context.Context
	store *sqlite.Store
	mail  *mail.Memory
	svc   *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := NewTokenService(TokenConfig{
		Issuer:        "tack-test",
		AccessSecret:  []byte(testAccessSecret),
		RefreshSecret: []byte(testRefreshSecret),
	}, st.Revocations())
	require.NoError(t, err)

	outbox := &mail.Memory{}
	return &fixture{
		ctx:   context.Background(),
		store: st,
		mail:  outbox,
		svc: New(Deps{
			Store:    st,
			Tokens:   tokens,
			Mailer:   outbox,
			Composer: mail.Composer{BaseURL: "http://tack.test"},
		}),
	}
}

// user inserts a verified user with testPassword.
func (f *fixture) user(t *testing.T, name string) domain.User {
	t.Helper()
	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	u := domain.User{
		ID:            idx.New().String(),
		Email:         name + "@example.com",
		Name:          name,
		PasswordHash:  hash,
		EmailVerified: true,
	}
	require.NoError(t, f.store.Users().CreateUser(f.ctx, u))
	require.NoError(t, f.store.Users().MarkEmailVerified(f.ctx, u.ID))
	return u
}

func actor(u domain.User) domain.Actor { return domain.Actor{UserID: u.ID} }

// workspace creates a workspace owned by owner.
func (f *fixture) workspace(t *testing.T, owner domain.User) domain.Workspace {
	t.Helper()
	ws, err := f.svc.Workspaces.Create(f.ctx, actor(owner), "Acme")
	require.NoError(t, err)
	return ws.Workspace
}

// join adds u to the workspace at role and returns the membership.
func (f *fixture) join(t *testing.T, ws domain.Workspace, u domain.User, role domain.Role) domain.Membership {
	t.Helper()
	m := domain.Membership{ID: idx.New().String(), UserID: u.ID, WorkspaceID: ws.ID, Role: role}
	require.NoError(t, f.store.Memberships().CreateMembership(f.ctx, m))
	return m
}

func (f *fixture) board(t *testing.T, owner domain.User, ws domain.Workspace, visibility domain.Visibility) domain.BoardDetail {
	t.Helper()
	b, err := f.svc.Boards.Create(f.ctx, actor(owner), ws.ID, "Roadmap", visibility)
	require.NoError(t, err)
	return b
}

func requireKind(t *testing.T, err error, kind domain.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, domain.KindOf(err), "got %v", err)
}
