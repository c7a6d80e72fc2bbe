// file: internals/features/announcements/dto/announcement_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	model "tokoku_backend/internals/features/announcements/model"
)

const (
	DefaultBackgroundColor = "#000000"
	DefaultTextColor       = "#ffffff"
)

/* ===================== REQUESTS ===================== */

// Create: shop_domain diambil dari context oleh controller (BUKAN dari body)
type CreateAnnouncementRequest struct {
	Title           string `json:"title" validate:"omitempty,max=200"`
	Message         string `json:"message" validate:"required,min=1"`
	StartDate       string `json:"start_date" validate:"required"` // YYYY-MM-DD atau RFC3339
	EndDate         string `json:"end_date" validate:"required"`
	IsActive        *bool  `json:"is_active" validate:"omitempty"`
	BackgroundColor string `json:"background_color" validate:"omitempty,max=32"`
	TextColor       string `json:"text_color" validate:"omitempty,max=32"`
	LinkURL         string `json:"link_url" validate:"omitempty,max=2048"`
}

// PUT bersifat full replace (bukan partial) — field sama dengan create.
type UpdateAnnouncementRequest struct {
	Title           string `json:"title" validate:"omitempty,max=200"`
	Message         string `json:"message" validate:"required,min=1"`
	StartDate       string `json:"start_date" validate:"required"`
	EndDate         string `json:"end_date" validate:"required"`
	IsActive        *bool  `json:"is_active" validate:"omitempty"`
	BackgroundColor string `json:"background_color" validate:"omitempty,max=32"`
	TextColor       string `json:"text_color" validate:"omitempty,max=32"`
	LinkURL         string `json:"link_url" validate:"omitempty,max=2048"`
}

// ParseDate menerima instant RFC3339 atau tanggal-saja (YYYY-MM-DD).
// Tanggal-saja dinormalisasi ke awal hari UTC. Artinya end_date tanggal-saja
// berhenti tayang tepat tengah malam MEMASUKI tanggal itu, bukan akhir hari —
// perilaku lama yang sengaja dipertahankan (form admin mengirim tanggal-saja).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("tanggal tidak valid: %q (pakai YYYY-MM-DD atau RFC3339)", s)
}

// ToModel: builder untuk create — mengisi default warna & is_active.
func (r CreateAnnouncementRequest) ToModel(shopDomain string) (*model.AnnouncementModel, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	m := &model.AnnouncementModel{
		AnnouncementShopDomain:      shopDomain,
		AnnouncementTitle:           strings.TrimSpace(r.Title),
		AnnouncementMessage:         strings.TrimSpace(r.Message),
		AnnouncementStartDate:       start,
		AnnouncementEndDate:         end,
		AnnouncementIsActive:        true, // default aktif
		AnnouncementBackgroundColor: DefaultBackgroundColor,
		AnnouncementTextColor:       DefaultTextColor,
	}
	if r.IsActive != nil {
		m.AnnouncementIsActive = *r.IsActive
	}
	if v := strings.TrimSpace(r.BackgroundColor); v != "" {
		m.AnnouncementBackgroundColor = v
	}
	if v := strings.TrimSpace(r.TextColor); v != "" {
		m.AnnouncementTextColor = v
	}
	if v := strings.TrimSpace(r.LinkURL); v != "" {
		m.AnnouncementLinkURL = &v
	}
	return m, nil
}

// ApplyToModel: full replace semua field writable; id, shop_domain,
// created_at tidak pernah disentuh.
func (r UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) error {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return err
	}

	m.AnnouncementTitle = strings.TrimSpace(r.Title)
	m.AnnouncementMessage = strings.TrimSpace(r.Message)
	m.AnnouncementStartDate = start
	m.AnnouncementEndDate = end

	m.AnnouncementIsActive = true
	if r.IsActive != nil {
		m.AnnouncementIsActive = *r.IsActive
	}

	m.AnnouncementBackgroundColor = DefaultBackgroundColor
	if v := strings.TrimSpace(r.BackgroundColor); v != "" {
		m.AnnouncementBackgroundColor = v
	}
	m.AnnouncementTextColor = DefaultTextColor
	if v := strings.TrimSpace(r.TextColor); v != "" {
		m.AnnouncementTextColor = v
	}

	m.AnnouncementLinkURL = nil
	if v := strings.TrimSpace(r.LinkURL); v != "" {
		m.AnnouncementLinkURL = &v
	}
	return nil
}

/* ===================== RESPONSES ===================== */

// Wire format mengikuti skema lama (flat, tanpa prefix kolom) karena
// panel admin & widget storefront membaca nama-nama ini.
type AnnouncementResponse struct {
	ID              uint      `json:"id"`
	ShopDomain      string    `json:"shop_domain"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	IsActive        bool      `json:"is_active"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	LinkURL         *string   `json:"link_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	return &AnnouncementResponse{
		ID:              m.AnnouncementID,
		ShopDomain:      m.AnnouncementShopDomain,
		Title:           m.AnnouncementTitle,
		Message:         m.AnnouncementMessage,
		StartDate:       m.AnnouncementStartDate,
		EndDate:         m.AnnouncementEndDate,
		IsActive:        m.AnnouncementIsActive,
		BackgroundColor: m.AnnouncementBackgroundColor,
		TextColor:       m.AnnouncementTextColor,
		LinkURL:         m.AnnouncementLinkURL,
		CreatedAt:       m.AnnouncementCreatedAt,
		UpdatedAt:       m.AnnouncementUpdatedAt,
	}
}

func NewAnnouncementResponses(ms []model.AnnouncementModel) []*AnnouncementResponse {
	out := make([]*AnnouncementResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewAnnouncementResponse(&ms[i]))
	}
	return out
}
