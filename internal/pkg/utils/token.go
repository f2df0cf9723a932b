package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/spf13/viper"
)

const tokenTTL = time.Hour

// AuthTokenWrapper is the claim set carried by issued tokens. UserID is set
// for user sessions, Service for service-credential tokens.
type AuthTokenWrapper struct {
	UserID  int64  `json:"user_id,omitempty"`
	Service string `json:"service,omitempty"`
	Secret  string `json:"-"`
	jwt.StandardClaims
}

// GenerateAuthToken signs the wrapper with the configured secret, valid for
// one hour.
func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	wrapper.ExpiresAt = time.Now().Add(tokenTTL).Unix()
	wrapper.IssuedAt = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
}

// ParseAuthToken verifies the signature and expiry and returns the claims.
func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(tokenString, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrInvalidToken
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, constants.ErrTokenExpired
		}
		return nil, constants.ErrInvalidToken
	}
	if !token.Valid {
		return nil, constants.ErrInvalidToken
	}

	return wrapper, nil
}
