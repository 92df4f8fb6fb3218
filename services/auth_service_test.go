package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"postable/models"
)

type fakeUserRepo struct {
	byID       map[string]*models.User
	byUsername map[string]*models.User
	byEmail    map[string]*models.User
	created    []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       map[string]*models.User{},
		byUsername: map[string]*models.User{},
		byEmail:    map[string]*models.User{},
	}
}

func (f *fakeUserRepo) add(u *models.User) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.byID[u.ID] = u
	f.byUsername[u.Username] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.add(u)
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdatePassword(id, hashedPassword string) error {
	u, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	u, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	delete(f.byUsername, u.Username)
	delete(f.byEmail, u.Email)
	return nil
}

func newAuthService(repo *fakeUserRepo) AuthService {
	cfg := testConfig()
	return NewAuthService(repo, NewTokenService(cfg), cfg)
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username:  "newuser",
		Password:  "Sup3rSecret!",
		Email:     "newuser@example.com",
		FirstName: "New",
		LastName:  "User",
	}
}

func TestRegisterRejectsTakenUsernameBeforeInsert(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&models.User{Username: "newuser", Email: "other@example.com"})
	svc := newAuthService(repo)

	_, err := svc.Register(validRegisterRequest())
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.KindDuplicate, appErr.Kind)
	assert.Equal(t, models.CodeUserExists, appErr.Code)
	assert.Empty(t, repo.created, "no record may be persisted for a taken username")
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&models.User{Username: "someoneelse", Email: "newuser@example.com"})
	svc := newAuthService(repo)

	_, err := svc.Register(validRegisterRequest())
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.CodeEmailExists, appErr.Code)
	assert.Empty(t, repo.created)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	req := validRegisterRequest()
	req.Password = "alllowercase1!"

	_, err := svc.Register(req)
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.KindValidation, appErr.Kind)
	assert.Empty(t, repo.created)
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	resp, err := svc.Register(validRegisterRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	assert.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.NotEqual(t, "Sup3rSecret!", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Sup3rSecret!")))
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Login(models.LoginRequest{Username: "ghost", Password: "Sup3rSecret!"})
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.CodeInvalidCredentials, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Sup3rSecret!"), bcrypt.MinCost)
	repo.add(&models.User{Username: "alice", Email: "alice@example.com", Password: string(hash)})
	svc := newAuthService(repo)

	_, err := svc.Login(models.LoginRequest{Username: "alice", Password: "WrongPass1!"})
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.CodeInvalidCredentials, appErr.Code)
}

func TestLoginSuccessCarriesIdentityInToken(t *testing.T) {
	repo := newFakeUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Sup3rSecret!"), bcrypt.MinCost)
	user := &models.User{Username: "alice", Email: "alice@example.com", Password: string(hash), Role: models.RoleAdmin}
	repo.add(user)

	cfg := testConfig()
	tokens := NewTokenService(cfg)
	svc := NewAuthService(repo, tokens, cfg)

	resp, err := svc.Login(models.LoginRequest{Username: "alice", Password: "Sup3rSecret!"})
	assert.NoError(t, err)

	claims, err := tokens.Verify(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "admin", claims.Role)
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.UpdatePassword("missing-id", "Sup3rSecret!")
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.CodeUserNotFound, appErr.Code)
}

func TestDeleteUserUnknown(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	err := svc.DeleteUser("missing-id")
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.KindNotFound, appErr.Kind)
}
