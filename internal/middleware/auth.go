package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func AuthMiddleware(store *session.Store) fiber.Handler {

	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("[ERROR] 미들웨어: 세션 조회 실패: %v", err)
			return c.Redirect("/auth/login")
		}

		// 백엔드 토큰 + 계정 식별 정보가 모두 있어야 로그인 상태로 봅니다.
		tokenInterface := sess.Get("token")
		accountIDInterface := sess.Get("account_id")
		nameInterface := sess.Get("account_name")
		roleInterface := sess.Get("account_role")

		if tokenInterface == nil || accountIDInterface == nil || nameInterface == nil || roleInterface == nil {
			log.Printf("[WARN] 미들웨어: 로그인되지 않은 접근 (%s)", c.Path())
			return c.Redirect("/auth/login")
		}

		c.Locals("token", tokenInterface.(string))
		c.Locals("account_id", accountIDInterface.(uint64))
		c.Locals("account_name", nameInterface.(string))
		c.Locals("user_role", roleInterface.(string))

		return c.Next()
	}
}
