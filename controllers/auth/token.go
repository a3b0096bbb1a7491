package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"privacyguard/config"

	"github.com/dgrijalva/jwt-go"
)

var (
	c = config.GetConfig()
	// SECRET -
	SECRET = c.GetString("app.secret")
)

// tokenTTL - sessions expire after half a day
const tokenTTL = 12 * time.Hour

// CreateToken - create a token and cache it
func CreateToken(username string) (string, error) {

	claims := jwt.MapClaims{
		"user_id":    username,
		"exp":        time.Now().Add(tokenTTL).Unix(),
		"authorized": true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(SECRET))

	if err != nil {
		return "", err
	}

	// one live session per operator
	if err = auth.Redis.Set("session:"+username, signed, tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("cannot cache session token. %v", err)
	}

	return signed, nil
}

// ExtractToken -
func ExtractToken(r *http.Request) string {

	bearerToken := r.Header.Get("Authorization")

	vals := strings.Split(bearerToken, " ")

	if len(vals) == 2 {

		uid, _ := TokenID(vals[1])

		if err := CachedToken(uid, vals[1]); err == nil {
			return vals[1]
		}

		return ""
	}

	return ""
}

// TokenValid - is it?
func TokenValid(r *http.Request) error {

	tokenString := ExtractToken(r)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(SECRET), nil
	})

	if err != nil {
		return err
	}

	if _, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return nil
	}

	return errors.New("invalid token")
}

// TokenID - extract operator username
func TokenID(tokenString string) (string, error) {

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(SECRET), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return fmt.Sprintf("%s", claims["user_id"]), nil
	}

	return "", nil
}

// CachedToken - token must match the cached session
func CachedToken(uid, token string) error {

	cached, err := auth.Redis.Get("session:" + uid).Result()

	if err != nil {
		return err
	}

	if cached != token {
		return errors.New("invalid token")
	}

	return nil
}

// RevokeToken - drops the cached session
func RevokeToken(uid string) error {
	return auth.Redis.Del("session:" + uid).Err()
}
