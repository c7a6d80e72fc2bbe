// file: internals/features/announcements/model/announcement_model.go
package model

import (
	"time"
)

type AnnouncementModel struct {
	AnnouncementID         uint   `gorm:"column:announcement_id;primaryKey;autoIncrement"`
	AnnouncementShopDomain string `gorm:"column:announcement_shop_domain;type:varchar(255);not null;index"`

	AnnouncementTitle   string `gorm:"column:announcement_title;type:varchar(200);not null;default:''"`
	AnnouncementMessage string `gorm:"column:announcement_message;type:text;not null"`

	AnnouncementStartDate time.Time `gorm:"column:announcement_start_date;type:timestamptz;not null"`
	AnnouncementEndDate   time.Time `gorm:"column:announcement_end_date;type:timestamptz;not null"`

	// Toggle operator, terpisah dari jendela tanggal.
	// Default diisi di DTO (bukan tag gorm) supaya create dengan false tetap tersimpan false.
	AnnouncementIsActive bool `gorm:"column:announcement_is_active;not null"`

	AnnouncementBackgroundColor string  `gorm:"column:announcement_background_color;type:varchar(32);not null"`
	AnnouncementTextColor       string  `gorm:"column:announcement_text_color;type:varchar(32);not null"`
	AnnouncementLinkURL         *string `gorm:"column:announcement_link_url;type:text"`

	AnnouncementCreatedAt time.Time `gorm:"column:announcement_created_at;type:timestamptz;not null;autoCreateTime"`
	AnnouncementUpdatedAt time.Time `gorm:"column:announcement_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}

// IsActiveAt: predikat resolver dalam bentuk murni.
// Dipakai badge di panel admin dan test; query FindActive menjalankan
// predikat yang sama di SQL. Batas jendela inklusif dua arah.
func (m *AnnouncementModel) IsActiveAt(now time.Time) bool {
	if m == nil || !m.AnnouncementIsActive {
		return false
	}
	if now.Before(m.AnnouncementStartDate) {
		return false
	}
	if now.After(m.AnnouncementEndDate) {
		return false
	}
	return true
}
