package domain

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" gorm:"not null"` // Never return password hash in JSON
	Role         string    `json:"role" gorm:"default:user"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RefreshSession binds a refresh secret to one client device. A new
// row is created on login and the row is replaced on every refresh;
// rows are never mutated in place.
type RefreshSession struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       string    `json:"userId" gorm:"index;not null"`
	RefreshToken string    `json:"-" gorm:"index;not null"`
	Created      time.Time `json:"created"`
	ExpiresIn    time.Time `json:"expiresIn"`
	Fingerprint  string    `json:"fingerprint"`
	UserAgent    string    `json:"userAgent"`
	IP           string    `json:"ip"`
}
