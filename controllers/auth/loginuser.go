package auth

import (
	"fmt"
	"net/http"

	"privacyguard/data"
	"privacyguard/log"
	"privacyguard/utils"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

var auth = &Auth{
	Logger: log.GetLogger(),
	DB:     data.GetDB(),
	Redis:  data.GetRedis(),
}

type ulogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ulogout struct {
	Username string `json:"username"`
}

// LoginUser -
func LoginUser(c *gin.Context) {

	var (
		token string
		err   error
		cred  = new(ulogin)
	)

	// 1. parse request
	if err = c.BindJSON(cred); err != nil {
		auth.Logger.Errorf("cannot parse login request : %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprint(err),
		})
		c.Abort()
		return
	}

	err = auth.DB.Transaction(func(tx *gorm.DB) error {

		// 2. authenticate operator
		token, err = auth.SignIn(cred.Username, cred.Password)

		if err != nil {
			// failed login attempt + 1
			// use auth.DB instead of tx otherwise it'll rollback this update
			if e := auth.DB.Exec(`
				UPDATE operators
				SET
					failed_login_count = (failed_login_count + 1),
					last_login_date = CURRENT_TIMESTAMP
				WHERE
					username = ? AND failed_login_count < 10;`, cred.Username,
			).Error; e != nil {
				auth.Logger.Errorf("cannot update operators on failed login for %v : %v", cred.Username, e)
			}

			return err
		}

		// 3. mark logged in
		return tx.Exec(`
			UPDATE operators
			SET
				failed_login_count = 0,
				last_login_date = CURRENT_TIMESTAMP,
				last_ip = ?
			WHERE
				username = ?;`, utils.GetLocalIP(), cred.Username,
		).Error
	})

	// 4. error response
	if err != nil {
		auth.Logger.Errorf("failed to login : %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprint(err),
		})
		c.Abort()
		return
	}

	// 5. successful login
	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusText(http.StatusOK),
		"user":   cred.Username,
		"token":  token,
	})
	c.Abort()
	return
}

// Logout - revokes the operator session
func Logout(c *gin.Context) {

	var (
		err   error
		param = new(ulogout)
	)

	// 1. parse request data
	if err = c.BindJSON(param); err != nil {
		auth.Logger.Errorf("cannot parse logout request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	// 2. drop the cached session
	if err = RevokeToken(param.Username); err != nil {
		auth.Logger.Errorf("cannot revoke session for %v: %v", param.Username, err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("logout failed. %v", err),
		})
		c.Abort()
		return
	}

	// 3. logged out
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusText(http.StatusOK),
		"message": "logout successful",
	})
	c.Abort()
	return
}
