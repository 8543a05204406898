package repository

import (
	"errors"

	authdomain "github.com/voknelis/XSched/internal/auth/domain"

	"gorm.io/gorm"
)

// SessionRepository persists refresh sessions. Lookups always match
// the (refresh token, fingerprint) pair, never the token alone.
type SessionRepository interface {
	Create(session *authdomain.RefreshSession) error
	FindByTokenAndFingerprint(refreshToken, fingerprint string) (*authdomain.RefreshSession, error)
	Delete(session *authdomain.RefreshSession) error
	// Rotate replaces old with new in a single transaction so a crash
	// mid-rotation cannot lose both sessions.
	Rotate(old, new *authdomain.RefreshSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *authdomain.RefreshSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByTokenAndFingerprint(refreshToken, fingerprint string) (*authdomain.RefreshSession, error) {
	var session authdomain.RefreshSession
	err := r.db.Where("refresh_token = ? AND fingerprint = ?", refreshToken, fingerprint).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Delete(session *authdomain.RefreshSession) error {
	return r.db.Delete(session).Error
}

func (r *sessionRepository) Rotate(old, new *authdomain.RefreshSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(old).Error; err != nil {
			return err
		}
		return tx.Create(new).Error
	})
}
