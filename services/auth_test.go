package services

import (
	"regexp"
	"testing"

	"github.com/eoinharts/travel-client-app/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserValidation(t *testing.T) {
	service := &RegistService{}

	tests := []struct {
		name    string
		input   dto.RegisterUserDTO
		wantErr error
	}{
		{
			name:    "missing username",
			input:   dto.RegisterUserDTO{Password: "password123", Email: "a@b.com"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing password",
			input:   dto.RegisterUserDTO{Username: "alice", Email: "a@b.com"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing email",
			input:   dto.RegisterUserDTO{Username: "alice", Password: "password123"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "short password",
			input:   dto.RegisterUserDTO{Username: "alice", Password: "short", Email: "a@b.com"},
			wantErr: ErrShortPassword,
		},
		{
			name:    "email without at",
			input:   dto.RegisterUserDTO{Username: "alice", Password: "password123", Email: "not-an-email"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with one-letter tld",
			input:   dto.RegisterUserDTO{Username: "alice", Password: "password123", Email: "a@b.c"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.RegisterUser(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
			assert.Nil(t, user)
		})
	}
}

func TestRegisterUserHashesPassword(t *testing.T) {
	db, mock := newMockDB(t)
	service := &RegistService{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user, err := service.RegisterUser(dto.RegisterUserDTO{
		Username: "alice",
		Password: "password123",
		Email:    "alice@example.com",
		Address:  "Somewhere 1",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)

	// В базу уходит хэш, а не исходный пароль
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateUserUnknownAndWrongPasswordIndistinguishable(t *testing.T) {
	db, mock := newMockDB(t)
	service := &AuthService{DB: db}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// Неизвестный username
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "address"}))

	_, _, errUnknown := service.AuthenticateUser(dto.LoginDTO{Username: "ghost", Password: "password123"})

	// Существующий username, неверный пароль
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "address"}).
			AddRow(1, "alice", string(hash), "alice@example.com", ""))

	_, _, errWrongPass := service.AuthenticateUser(dto.LoginDTO{Username: "alice", Password: "wrong-password"})

	// Обе ошибки неотличимы снаружи
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateUserSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, mock := newMockDB(t)
	service := &AuthService{DB: db}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "address"}).
			AddRow(1, "alice", string(hash), "alice@example.com", "Somewhere 1"))

	token, user, err := service.AuthenticateUser(dto.LoginDTO{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}
