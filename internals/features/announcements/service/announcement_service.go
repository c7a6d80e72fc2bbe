// file: internals/features/announcements/service/announcement_service.go
package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	model "tokoku_backend/internals/features/announcements/model"
)

var (
	ErrNotFound  = errors.New("pengumuman tidak ditemukan")
	ErrForbidden = errors.New("pengumuman milik toko lain")
)

// AnnouncementService = satu-satunya jalur baca/tulis tabel announcements.
// Handle DB di-inject dari main, bukan global.
type AnnouncementService struct {
	DB *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{DB: db}
}

// ListByShop: semua pengumuman sebuah toko, terbaru dulu.
func (s *AnnouncementService) ListByShop(ctx context.Context, shopDomain string) ([]model.AnnouncementModel, error) {
	var rows []model.AnnouncementModel
	err := s.DB.WithContext(ctx).
		Where("announcement_shop_domain = ?", shopDomain).
		Order("announcement_created_at DESC, announcement_id DESC").
		Find(&rows).Error
	return rows, err
}

// FindActive: resolver — maksimal satu pengumuman yang layak tampil pada
// instant `now`. Predikat: is_active && start <= now <= end; pemenang =
// created_at terbesar (id sebagai pemutus seri agar urutan total).
// (nil, nil) kalau tidak ada yang cocok.
func (s *AnnouncementService) FindActive(ctx context.Context, shopDomain string, now time.Time) (*model.AnnouncementModel, error) {
	var rows []model.AnnouncementModel
	err := s.DB.WithContext(ctx).
		Where("announcement_shop_domain = ?", shopDomain).
		Where("announcement_is_active = ?", true).
		Where("announcement_start_date <= ? AND announcement_end_date >= ?", now, now).
		Order("announcement_created_at DESC, announcement_id DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Create: id + created_at/updated_at diisi DB/gorm.
func (s *AnnouncementService) Create(ctx context.Context, m *model.AnnouncementModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

// findOwned: tenant guard. Id tidak ada → ErrNotFound; ada tapi milik toko
// lain → ErrForbidden (dulu diam-diam tembus lintas toko).
func (s *AnnouncementService) findOwned(ctx context.Context, shopDomain string, id uint) (*model.AnnouncementModel, error) {
	var m model.AnnouncementModel
	err := s.DB.WithContext(ctx).
		Where("announcement_id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if m.AnnouncementShopDomain != shopDomain {
		return nil, ErrForbidden
	}
	return &m, nil
}

// Update: full replace field writable; apply dijalankan pada row yang sudah
// lolos tenant guard, lalu Save me-refresh updated_at.
func (s *AnnouncementService) Update(ctx context.Context, shopDomain string, id uint, apply func(*model.AnnouncementModel) error) (*model.AnnouncementModel, error) {
	m, err := s.findOwned(ctx, shopDomain, id)
	if err != nil {
		return nil, err
	}
	if err := apply(m); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Delete: hard delete. Id tidak ada → ErrNotFound (dulu: sukses diam-diam).
func (s *AnnouncementService) Delete(ctx context.Context, shopDomain string, id uint) error {
	m, err := s.findOwned(ctx, shopDomain, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(m).Error
}

// ClearShop: bulk delete TER-SCOPE toko (reset lama menghapus semua toko).
func (s *AnnouncementService) ClearShop(ctx context.Context, shopDomain string) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("announcement_shop_domain = ?", shopDomain).
		Delete(&model.AnnouncementModel{})
	return res.RowsAffected, res.Error
}
