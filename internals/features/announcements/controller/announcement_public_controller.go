// file: internals/features/announcements/controller/announcement_public_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	annDTO "tokoku_backend/internals/features/announcements/dto"
	annService "tokoku_backend/internals/features/announcements/service"
	helper "tokoku_backend/internals/helpers"
)

// Endpoint baca untuk widget storefront.
type AnnouncementPublicController struct {
	Service *annService.AnnouncementService
}

func NewAnnouncementPublicController(svc *annService.AnnouncementService) *AnnouncementPublicController {
	return &AnnouncementPublicController{Service: svc}
}

// GET /api/announcements/active
// data = pengumuman aktif saat ini, atau null.
func (h *AnnouncementPublicController) GetActive(c *fiber.Ctx) error {
	shop := helper.ShopDomain(c)

	m, err := h.Service.FindActive(c.UserContext(), shop, time.Now().UTC())
	if err != nil {
		return jsonServiceError(c, "active", err)
	}
	return helper.JsonOK(c, "ok", annDTO.NewAnnouncementResponse(m))
}
