package auth

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"privacyguard/models"
	"privacyguard/security"

	"github.com/go-redis/redis"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// Auth struct
type Auth struct {
	Logger *logrus.Logger
	DB     *gorm.DB
	Redis  *redis.Client
	mu     sync.Mutex
}

// SignIn - authorize
func (a *Auth) SignIn(username, password string) (string, error) {

	var (
		err      error
		operator = new(models.Operator)
	)

	// 1. Fetch operator
	gor := a.DB.Raw(`
		SELECT id, username, pass, failed_login_count, last_login_date
		FROM operators
		WHERE
			username = ? AND
			active = 'Y';
	`, username).Scan(operator)

	// 2. Throw maximum attempts exceeded
	if operator.FailedLoginCount >= 10 && time.Since(operator.LastLoginDate).Minutes() < 15 {

		nextLogin := math.Round(operator.LastLoginDate.Add(15 * time.Minute).Sub(time.Now()).Minutes())

		return "", fmt.Errorf("maximum login attempts exceeded. try in %v minutes", nextLogin)
	}

	// 3. operator non-existent or wrong credentials
	if err = gor.Error; err != nil || gor.RowsAffected == 0 ||
		security.VerifyPassword(operator.Pass, password) != nil {

		a.Logger.Errorf("cannot authenticate operator %s. %v", username, err)

		return "", errors.New("wrong username or password")
	}

	return CreateToken(username)
}
