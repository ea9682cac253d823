package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bancodealimentos/estoque-api/internal/application/auth"
	"github.com/bancodealimentos/estoque-api/internal/domain"
	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/pkg/config"
	pkgjwt "github.com/bancodealimentos/estoque-api/pkg/jwt"
	"github.com/bancodealimentos/estoque-api/pkg/logger"
)

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	if u, ok := f.users[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) Count() (int, error) { return len(f.users), nil }

var testJWT = config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "estoque-api-test"}

func newAuthFixture() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	log := logger.New(logger.Config{Env: "test", Level: "disabled"})
	return auth.NewUseCase(repo, testJWT, log), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{Username: username, PasswordHash: string(hash)}))
}

func TestLogin_CredenciaisValidas(t *testing.T) {
	uc, repo := newAuthFixture()
	seedUser(t, repo, "admin", "senha-forte")

	token, err := uc.Login("admin", "senha-forte")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, username, err := pkgjwt.Parse(testJWT.Secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

// Usuário inexistente e senha errada devolvem o mesmo erro, sem distinção.
func TestLogin_CredenciaisInvalidas(t *testing.T) {
	uc, repo := newAuthFixture()
	seedUser(t, repo, "admin", "senha-forte")

	_, err := uc.Login("admin", "senha-errada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login("nao-existe", "qualquer")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login("", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSeedAdmin_CriaQuandoVazio(t *testing.T) {
	uc, repo := newAuthFixture()

	require.NoError(t, uc.SeedAdmin("admin", "senha-inicial"))
	assert.Len(t, repo.users, 1)

	_, err := uc.Login("admin", "senha-inicial")
	assert.NoError(t, err, "o administrador criado deve conseguir logar")
}

// Com qualquer usuário já cadastrado o seed não faz nada.
func TestSeedAdmin_Idempotente(t *testing.T) {
	uc, repo := newAuthFixture()
	seedUser(t, repo, "existente", "abc")

	require.NoError(t, uc.SeedAdmin("admin", "senha-inicial"))
	assert.Len(t, repo.users, 1, "nenhum usuário novo")
}

func TestSeedAdmin_SemSenha_NaoCria(t *testing.T) {
	uc, repo := newAuthFixture()
	require.NoError(t, uc.SeedAdmin("admin", ""))
	assert.Empty(t, repo.users)
}
