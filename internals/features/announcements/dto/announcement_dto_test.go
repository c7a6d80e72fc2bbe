package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "tokoku_backend/internals/features/announcements/model"
)

var validate = validator.New()

func validCreate() CreateAnnouncementRequest {
	return CreateAnnouncementRequest{
		Title:     "Sale",
		Message:   "50% off",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
	}
}

func TestParseDate(t *testing.T) {
	t.Run("tanggal-saja dinormalisasi ke awal hari UTC", func(t *testing.T) {
		got, err := ParseDate("2026-08-28")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC3339 dipertahankan sebagai instant", func(t *testing.T) {
		got, err := ParseDate("2026-08-28T15:04:05+07:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 28, 8, 4, 5, 0, time.UTC), got)
	})

	t.Run("format lain ditolak", func(t *testing.T) {
		_, err := ParseDate("28/08/2026")
		assert.Error(t, err)
		_, err = ParseDate("")
		assert.Error(t, err)
	})
}

func TestCreateRequest_MessageRequired(t *testing.T) {
	req := validCreate()
	req.Message = ""
	assert.Error(t, validate.Struct(req))
}

func TestCreateRequest_DatesRequired(t *testing.T) {
	req := validCreate()
	req.StartDate = ""
	assert.Error(t, validate.Struct(req))

	req = validCreate()
	req.EndDate = ""
	assert.Error(t, validate.Struct(req))
}

func TestToModel_Defaults(t *testing.T) {
	m, err := validCreate().ToModel("toko-a.myshopify.com")
	require.NoError(t, err)

	assert.Equal(t, "toko-a.myshopify.com", m.AnnouncementShopDomain)
	assert.Equal(t, DefaultBackgroundColor, m.AnnouncementBackgroundColor)
	assert.Equal(t, DefaultTextColor, m.AnnouncementTextColor)
	assert.True(t, m.AnnouncementIsActive, "is_active default aktif saat tidak dikirim")
	assert.Nil(t, m.AnnouncementLinkURL)
}

func TestToModel_ExplicitInactivePreserved(t *testing.T) {
	inactive := false
	req := validCreate()
	req.IsActive = &inactive

	m, err := req.ToModel("toko-a.myshopify.com")
	require.NoError(t, err)
	assert.False(t, m.AnnouncementIsActive)
}

func TestToModel_EndDateTruncatedToMidnight(t *testing.T) {
	// Perilaku lama yang dipertahankan: end_date tanggal-saja berhenti
	// tayang saat tengah malam MEMASUKI tanggal itu.
	m, err := validCreate().ToModel("toko-a.myshopify.com")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), m.AnnouncementEndDate)
	assert.False(t, m.IsActiveAt(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)),
		"siang di tanggal selesai sudah di luar jendela")
	assert.True(t, m.IsActiveAt(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)))
}

func TestToModel_InvalidDate(t *testing.T) {
	req := validCreate()
	req.StartDate = "bukan-tanggal"
	_, err := req.ToModel("toko-a.myshopify.com")
	assert.Error(t, err)
}

func TestApplyToModel_FullReplace(t *testing.T) {
	link := "https://lama.example.com"
	m := &model.AnnouncementModel{
		AnnouncementID:              7,
		AnnouncementShopDomain:      "toko-a.myshopify.com",
		AnnouncementTitle:           "Lama",
		AnnouncementMessage:         "pesan lama",
		AnnouncementIsActive:        true,
		AnnouncementBackgroundColor: "#123456",
		AnnouncementTextColor:       "#654321",
		AnnouncementLinkURL:         &link,
	}

	req := UpdateAnnouncementRequest{
		Message:   "pesan baru",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-30",
		// title, link, warna tidak dikirim → full replace ke default/kosong
	}
	require.NoError(t, req.ApplyToModel(m))

	assert.Equal(t, uint(7), m.AnnouncementID, "id tidak pernah disentuh")
	assert.Equal(t, "toko-a.myshopify.com", m.AnnouncementShopDomain)
	assert.Equal(t, "", m.AnnouncementTitle)
	assert.Equal(t, "pesan baru", m.AnnouncementMessage)
	assert.Nil(t, m.AnnouncementLinkURL, "link tidak dikirim → dihapus")
	assert.Equal(t, DefaultBackgroundColor, m.AnnouncementBackgroundColor)
	assert.Equal(t, DefaultTextColor, m.AnnouncementTextColor)
}

func TestNewAnnouncementResponse_NilSafe(t *testing.T) {
	assert.Nil(t, NewAnnouncementResponse(nil))
}

func TestResponse_WireFieldNames(t *testing.T) {
	m, err := validCreate().ToModel("toko-a.myshopify.com")
	require.NoError(t, err)
	m.AnnouncementID = 42

	resp := NewAnnouncementResponse(m)
	require.NotNil(t, resp)
	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, "Sale", resp.Title)
	assert.Equal(t, "50% off", resp.Message)
	assert.Equal(t, "toko-a.myshopify.com", resp.ShopDomain)
}
