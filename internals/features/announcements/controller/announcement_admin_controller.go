// file: internals/features/announcements/controller/announcement_admin_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	annDTO "tokoku_backend/internals/features/announcements/dto"
	annModel "tokoku_backend/internals/features/announcements/model"
	annService "tokoku_backend/internals/features/announcements/service"
	helper "tokoku_backend/internals/helpers"
)

type AnnouncementAdminController struct {
	Service *annService.AnnouncementService
}

func NewAnnouncementAdminController(svc *annService.AnnouncementService) *AnnouncementAdminController {
	return &AnnouncementAdminController{Service: svc}
}

var validateAnnouncement = validator.New()

func parseAnnouncementID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id tidak valid: %q", raw)
	}
	return uint(id), nil
}

// translasi error service → status; error DB lain dicatat di log,
// pesan mentah driver tidak dibocorkan ke klien.
func jsonServiceError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, annService.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	case errors.Is(err, annService.ErrForbidden):
		return helper.JsonError(c, fiber.StatusForbidden, "Pengumuman milik toko lain")
	default:
		log.Printf("[announcements] %s gagal: %v", op, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pengumuman")
	}
}

// ===================== LIST =====================
// GET /api/announcements
func (h *AnnouncementAdminController) List(c *fiber.Ctx) error {
	shop := helper.ShopDomain(c)

	rows, err := h.Service.ListByShop(c.UserContext(), shop)
	if err != nil {
		return jsonServiceError(c, "list", err)
	}
	return helper.JsonOK(c, "ok", annDTO.NewAnnouncementResponses(rows))
}

// ===================== CREATE =====================
// POST /api/announcements
func (h *AnnouncementAdminController) Create(c *fiber.Ctx) error {
	shop := helper.ShopDomain(c)

	var req annDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel(shop)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Service.Create(c.UserContext(), m); err != nil {
		return jsonServiceError(c, "create", err)
	}
	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", annDTO.NewAnnouncementResponse(m))
}

// ===================== UPDATE =====================
// PUT /api/announcements/:id — full replace, id & shop_domain immutable
func (h *AnnouncementAdminController) Update(c *fiber.Ctx) error {
	shop := helper.ShopDomain(c)

	id, err := parseAnnouncementID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req annDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	// cek tanggal dulu supaya error parse jadi 400, bukan 500 dari dalam apply
	if _, err := annDTO.ParseDate(req.StartDate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := annDTO.ParseDate(req.EndDate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := h.Service.Update(c.UserContext(), shop, id, func(m *annModel.AnnouncementModel) error {
		return req.ApplyToModel(m)
	})
	if err != nil {
		return jsonServiceError(c, "update", err)
	}
	return helper.JsonUpdated(c, "Pengumuman diperbarui", annDTO.NewAnnouncementResponse(m))
}

// ===================== DELETE =====================
// DELETE /api/announcements/:id — permanen, tanpa soft delete
func (h *AnnouncementAdminController) Delete(c *fiber.Ctx) error {
	shop := helper.ShopDomain(c)

	id, err := parseAnnouncementID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Service.Delete(c.UserContext(), shop, id); err != nil {
		return jsonServiceError(c, "delete", err)
	}
	return helper.JsonDeleted(c, "Pengumuman dihapus")
}

// ===================== RESET =====================
// GET /api/reset — destruktif, untuk demo/testing; hanya toko ter-resolve
func (h *AnnouncementAdminController) Reset(c *fiber.Ctx) error {
	shop := helper.ShopDomain(c)

	count, err := h.Service.ClearShop(c.UserContext(), shop)
	if err != nil {
		return jsonServiceError(c, "reset", err)
	}
	return helper.JsonDeleted(c, fmt.Sprintf("%d pengumuman toko %s dihapus", count, shop))
}
