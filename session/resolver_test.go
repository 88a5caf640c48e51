package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fruitpie-jobboard/auth"
	"fruitpie-jobboard/database"
	"fruitpie-jobboard/domain"
	"fruitpie-jobboard/models"
	"fruitpie-jobboard/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

type fixture struct {
	resolver *Resolver
	tokens   *auth.TokenManager
	clock    *clock
	users    *store.UserStore
	db       *gorm.DB
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	c := &clock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	tokens := auth.NewTokenManager("resolver-secret", 30*time.Minute, auth.WithClock(c.Now))
	users := store.NewUserStore(db)

	_, err = users.Register(context.Background(), store.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "correct-password",
	})
	require.NoError(t, err)

	return &fixture{resolver: NewResolver(tokens, users), tokens: tokens, clock: c, users: users, db: db}
}

func (f *fixture) issue(t *testing.T, claims map[string]any) string {
	t.Helper()
	token, err := f.tokens.Issue(claims, 0)
	require.NoError(t, err)
	return token
}

func TestResolveRequired(t *testing.T) {
	f := setup(t)
	token := f.issue(t, map[string]any{"sub": "alice"})

	user, err := f.resolver.ResolveRequired(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestResolveRequiredAfterExpiry(t *testing.T) {
	f := setup(t)
	token := f.issue(t, map[string]any{"sub": "alice"})

	f.clock.t = f.clock.t.Add(31 * time.Minute)
	_, err := f.resolver.ResolveRequired(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolveRequiredFailures(t *testing.T) {
	f := setup(t)

	tests := map[string]string{
		"missing":      "",
		"malformed":    "not.a.token",
		"no subject":   f.issue(t, map[string]any{"role": "seeker"}),
		"unknown user": f.issue(t, map[string]any{"sub": "mallory"}),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := f.resolver.ResolveRequired(context.Background(), token)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)

			var appErr *domain.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 401, appErr.Code)
		})
	}
}

func TestResolveRequiredDisabledUser(t *testing.T) {
	f := setup(t)
	_, err := f.users.Register(context.Background(), store.RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "correct-password",
	})
	require.NoError(t, err)

	disableUser(t, f.db, "carol")

	token := f.issue(t, map[string]any{"sub": "carol"})
	_, err = f.resolver.ResolveRequired(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, f.resolver.ResolveOptional(context.Background(), token))
}

func TestResolveOptional(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	valid := f.issue(t, map[string]any{"sub": "alice"})

	user := f.resolver.ResolveOptional(ctx, valid)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	assert.Nil(t, f.resolver.ResolveOptional(ctx, ""))
	assert.Nil(t, f.resolver.ResolveOptional(ctx, "garbage"))

	f.clock.t = f.clock.t.Add(time.Hour)
	assert.Nil(t, f.resolver.ResolveOptional(ctx, valid))
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc.def.ghi":   "abc.def.ghi",
		"bearer abc.def.ghi":   "abc.def.ghi",
		"BEARER  abc.def.ghi ": "abc.def.ghi",
		"Basic dXNlcjpwYXNz":   "",
		"Bearer":               "",
		"":                     "",
	}
	for header, want := range tests {
		assert.Equal(t, want, BearerToken(header), "header %q", header)
	}
}

// disableUser flips the disabled flag directly; no operation exposes it.
func disableUser(t *testing.T, db *gorm.DB, username string) {
	t.Helper()
	err := db.Model(&models.User{}).Where("username = ?", username).Update("disabled", true).Error
	require.NoError(t, err)
}
