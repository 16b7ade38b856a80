package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/middleware"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

// CreateRoleSession is the demo role switch. No credentials; the caller
// picks a persona and gets a token attributing their actions to it.
func (h *Handler) CreateRoleSession(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RoleSessionInput)

	userName := input.UserName
	if userName == "" {
		for _, u := range h.store.Users() {
			if u.Role == input.Role {
				userName = u.FullName
				break
			}
		}
	}

	token, err := middleware.IssueRoleToken(input.Role, userName)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not issue role token", err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"token":    token,
		"role":     input.Role,
		"userName": userName,
	})
}
