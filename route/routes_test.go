package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func findRoute(app *fiber.App, method, path string) *fiber.Route {
	for _, routes := range app.Stack() {
		for _, r := range routes {
			if r.Method == method && r.Path == path {
				return r
			}
		}
	}
	return nil
}

// User listing exposes email addresses, so both user routes must carry a
// role guard on top of the auth middleware. Submission routes only need
// auth, so their handler chain is one shorter.
func TestUserRoutesCarryRoleGuard(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, nil, nil, nil)

	list := findRoute(app, fiber.MethodGet, "/api/v1/users")
	assert.NotNil(t, list)
	assert.Len(t, list.Handlers, 2)

	get := findRoute(app, fiber.MethodGet, "/api/v1/users/:id")
	assert.NotNil(t, get)
	assert.Len(t, get.Handlers, 2)

	submissions := findRoute(app, fiber.MethodGet, "/api/v1/submissions")
	assert.NotNil(t, submissions)
	assert.Len(t, submissions.Handlers, 1)
}
