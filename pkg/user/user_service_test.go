package user

import (
	"context"
	"mime/multipart"
	"testing"

	"LogoForge/domain"
	"LogoForge/entities"
	"LogoForge/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryUserRepository struct {
	users map[string]*entities.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*entities.User)}
}

func (m *memoryUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	m.users[u.ID.String()] = u
	return nil
}

func (m *memoryUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	m.users[u.ID.String()] = u
	return nil
}

type stubS3 struct{}

func (stubS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (stubS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (stubS3) DeleteFile(objectKey string) error { return nil }

func (stubS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example.com/" + objectKey
}

func (stubS3) GetObjectKeyFromLink(link string) string { return "" }

func newUserFixture() (UserService, *memoryUserRepository) {
	repo := newMemoryUserRepository()
	return NewUserService(repo, jwt.NewJWTService(), stubS3{}), repo
}

func TestRegister(t *testing.T) {
	service, repo := newUserFixture()

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jamie", res.Name)
	assert.Equal(t, domain.RoleUser, res.Role)

	stored := repo.users[res.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-password", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newUserFixture()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Other",
		Email:    "jamie@example.com",
		Password: "another-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	service, _ := newUserFixture()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "jamie@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newUserFixture()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "jamie@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsNotMatched)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _ := newUserFixture()

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsNotMatched)
}

func TestMe(t *testing.T) {
	service, _ := newUserFixture()

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	me, err := service.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", me.Email)

	_, err = service.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUserName(t *testing.T) {
	service, repo := newUserFixture()

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	err = service.UpdateUser(context.Background(), domain.UpdateUserRequest{Name: "Jamie L."}, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jamie L.", repo.users[registered.ID].Name)
}
