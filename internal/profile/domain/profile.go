package domain

// UserProfile is an ownership scope for calendar events. At most one
// profile per user may have IsDefault set; the usecase enforces this
// with a reset-then-set pass before any write that sets it.
type UserProfile struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Title     string `json:"title" binding:"required" gorm:"not null"`
	UserID    string `json:"userId" gorm:"index;not null"`
	IsDefault bool   `json:"isDefault" gorm:"default:false"`
}

// CopyFrom overwrites the mutable fields from other. ID and UserID are
// pinned by the caller and never copied.
func (p *UserProfile) CopyFrom(other *UserProfile) {
	p.Title = other.Title
	p.IsDefault = other.IsDefault
}
