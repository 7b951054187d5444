package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
)

var ErrBadCreds = errors.New("invalid username or password")

type AuthService struct {
	Operators *repos.OperatorRepo
}

func (s *AuthService) Login(sid, username, password string) (*domain.Operator, error) {
	o, err := s.Operators.ByUsername(username)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(o.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Operators.BindSession(sid, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Operators.UnbindSession(sid)
}

func (s *AuthService) Current(sid string) (*domain.Operator, error) {
	return s.Operators.SessionOperator(sid)
}
