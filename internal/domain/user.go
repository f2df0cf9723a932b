package domain

import (
	"time"

	"github.com/labstack/gommon/random"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"golang.org/x/crypto/bcrypt"
)

const saltLength = 16

// UserPassword holds the salted bcrypt hash of a user's password.
type UserPassword struct {
	Hash string `db:"password_hash" json:"-"`
	Salt string `db:"password_salt" json:"-"`
}

// Init generates a fresh salt and hashes the given plaintext password.
func (p *UserPassword) Init(password string) error {
	p.Salt = random.String(saltLength)

	hash, err := bcrypt.GenerateFromPassword([]byte(password+p.Salt), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.Hash = string(hash)
	return nil
}

// Validate checks a plaintext password against the stored hash.
func (p *UserPassword) Validate(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(password+p.Salt)); err != nil {
		return constants.ErrInvalidCredentials
	}
	return nil
}

type User struct {
	ID           int64      `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	UserPassword `json:"-"`
	Name         *string    `db:"name" json:"name,omitempty"`
	Lastname     *string    `db:"lastname" json:"lastname,omitempty"`
	Birthdate    *time.Time `db:"birthdate" json:"birthdate,omitempty"`
	ProfilePhoto *string    `db:"profile_photo" json:"profile_photo,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
