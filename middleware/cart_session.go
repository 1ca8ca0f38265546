package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tire-shop/config"
	"tire-shop/utils"
)

const (
	CartCookieName = "cart_token"
	CartIDKey      = "cart_id"
)

// CartSession resolves the caller's cart identity from the signed cookie,
// minting a fresh cart ID when the cookie is absent, expired or forged.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := ""

		if raw, err := c.Cookie(CartCookieName); err == nil {
			if id, err := utils.ValidateCartToken(raw); err == nil {
				cartID = id
			}
		}

		if cartID == "" {
			cartID = uuid.NewString()
			if token, err := utils.GenerateCartToken(cartID); err == nil {
				maxAge := int(config.AppConfig.CartTTL.Seconds())
				c.SetCookie(CartCookieName, token, maxAge, "/", "", false, true)
			}
		}

		c.Set(CartIDKey, cartID)
		c.Next()
	}
}

func CartID(c *gin.Context) string {
	return c.GetString(CartIDKey)
}
