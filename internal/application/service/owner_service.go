package service

import (
	"time"

	"github.com/yudhapane/kacapos/pkg/apperror"
	"github.com/yudhapane/kacapos/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// OwnerService gates destructive operations behind the shop's shared owner
// passcode. The plaintext passcode from config is hashed once at startup; a
// successful login yields a short-lived token instead of re-sending the
// passcode on every privileged call.
type OwnerService struct {
	passcodeHash []byte
	jwtManager   *utils.JWTManager
}

// NewOwnerService creates a new owner service. It hashes the configured
// passcode so the plaintext is not kept around.
func NewOwnerService(passcode string, jwtManager *utils.JWTManager) (*OwnerService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &OwnerService{
		passcodeHash: hash,
		jwtManager:   jwtManager,
	}, nil
}

// LoginResult is the outcome of a successful owner login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login verifies the passcode and issues an owner token.
func (s *OwnerService) Login(passcode string) (*LoginResult, error) {
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		return nil, apperror.ErrInvalidPasscode
	}

	token, err := s.jwtManager.GenerateOwnerToken()
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	claims, err := s.jwtManager.ValidateOwnerToken(token)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
