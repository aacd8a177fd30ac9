package user

import (
	"testing"

	"chcrent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByPhone(phoneNumber string) (*models.User, error) {
	args := m.Called(phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) SetTokenHash(id, tokenHash string) error {
	args := m.Called(id, tokenHash)
	return args.Error(0)
}

type mockCenterRepo struct {
	mock.Mock
}

func (m *mockCenterRepo) GetAll() ([]models.Center, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Center), args.Error(1)
}

func (m *mockCenterRepo) GetByID(id string) (*models.Center, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Center), args.Error(1)
}

func TestRegisterUserSuccess(t *testing.T) {
	repo := new(mockUserRepo)
	centers := new(mockCenterRepo)
	svc := &DefaultUserService{Repo: repo, Centers: centers}

	repo.On("GetByPhone", "+911234567890").Return(nil, nil)
	centers.On("GetByID", "chc-1").Return(&models.Center{ID: "chc-1", Name: "Nashik CHC"}, nil)

	var created models.User
	repo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = *args.Get(0).(*models.User)
	}).Return(nil)

	newUser, err := svc.RegisterUser(RegistrationRequest{
		Name:        "  Asha  ",
		PhoneNumber: "+911234567890",
		CenterID:    "chc-1",
		Address:     "Village Road",
	})
	require.NoError(t, err)
	require.NotNil(t, newUser)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Asha", created.Name)
	assert.Equal(t, "+911234567890", created.PhoneNumber)
	assert.Equal(t, "chc-1", created.CenterID)
	assert.Equal(t, "Nashik CHC", created.CenterName)
	assert.Equal(t, "Village Road", created.Address)
}

func TestRegisterUserDuplicatePhone(t *testing.T) {
	repo := new(mockUserRepo)
	centers := new(mockCenterRepo)
	svc := &DefaultUserService{Repo: repo, Centers: centers}

	repo.On("GetByPhone", "+911234567890").Return(&models.User{ID: "user-1"}, nil)

	_, err := svc.RegisterUser(RegistrationRequest{
		Name:        "Asha",
		PhoneNumber: "+911234567890",
		CenterID:    "chc-1",
	})
	require.Error(t, err)
	assert.IsType(t, DuplicatePhoneError{}, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterUserUnknownCenter(t *testing.T) {
	repo := new(mockUserRepo)
	centers := new(mockCenterRepo)
	svc := &DefaultUserService{Repo: repo, Centers: centers}

	repo.On("GetByPhone", "+911234567890").Return(nil, nil)
	centers.On("GetByID", "chc-404").Return(nil, nil)

	_, err := svc.RegisterUser(RegistrationRequest{
		Name:        "Asha",
		PhoneNumber: "+911234567890",
		CenterID:    "chc-404",
	})
	require.Error(t, err)
	assert.IsType(t, UnknownCenterError{}, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterUserMissingFields(t *testing.T) {
	svc := &DefaultUserService{Repo: new(mockUserRepo), Centers: new(mockCenterRepo)}

	_, err := svc.RegisterUser(RegistrationRequest{Name: "", PhoneNumber: "", CenterID: "chc-1"})
	require.Error(t, err)
}

func TestRequestLoginCodeUnknownAccount(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo, Centers: new(mockCenterRepo)}

	repo.On("GetByPhone", "+910000000000").Return(nil, nil)

	err := svc.RequestLoginCode("+910000000000")
	require.Error(t, err)
	assert.IsType(t, AccountNotFoundError{}, err)
}
