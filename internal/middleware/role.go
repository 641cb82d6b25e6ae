package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// 역할 상수. 백엔드 계정의 role 값과 동일합니다.
const (
	RoleAdmin   = "ADMIN"
	RolePlanner = "PLANNER"
	RoleWorker  = "WORKER"
)

// AdminOnlyMiddleware는 AuthMiddleware *다음에* 실행되어야 하며,
// c.Locals의 'user_role'이 ADMIN인지 확인합니다.
func AdminOnlyMiddleware() fiber.Handler {

	return func(c *fiber.Ctx) error {
		roleInterface := c.Locals("user_role")

		if roleInterface == nil || roleInterface.(string) != RoleAdmin {
			log.Printf("[WARN] [Admin] 권한 없는 접근 (Role: %v, Path: %s)", roleInterface, c.Path())
			return c.Redirect("/dashboard")
		}

		return c.Next()
	}
}

// PlannerOnlyMiddleware는 생산 계획 화면(시나리오, 상품/공정/도구 관리)을
// ADMIN 또는 PLANNER로 제한합니다. 역할 규칙은 여기 한 곳에만 둡니다.
func PlannerOnlyMiddleware() fiber.Handler {

	return func(c *fiber.Ctx) error {
		roleInterface := c.Locals("user_role")
		role, _ := roleInterface.(string)

		if role != RoleAdmin && role != RolePlanner {
			log.Printf("[WARN] [Planner] 권한 없는 접근 (Role: %v, Path: %s)", roleInterface, c.Path())
			return c.Redirect("/dashboard")
		}

		return c.Next()
	}
}

// CanManageBoard는 게시판 종류별 쓰기 권한 규칙입니다.
// 공지(NOTICE)는 ADMIN/PLANNER, 자유게시판(COMMUNITY)은 로그인한 모든 역할.
func CanManageBoard(kind string, role string) bool {
	if kind == "NOTICE" {
		return role == RoleAdmin || role == RolePlanner
	}
	return role == RoleAdmin || role == RolePlanner || role == RoleWorker
}
