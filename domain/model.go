package domain

import "time"

type GenerationStatus string

const (
	StatusPending    GenerationStatus = "pending"
	StatusProcessing GenerationStatus = "processing"
	StatusCompleted  GenerationStatus = "completed"
	StatusFailed     GenerationStatus = "failed"
)

func (s GenerationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// rank orders statuses along the pending -> processing -> terminal path so
// that a stale vendor response can never move a record backwards.
func (s GenerationStatus) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusProcessing:
		return 1
	case StatusCompleted, StatusFailed:
		return 2
	}
	return -1
}

func (s GenerationStatus) IsKnown() bool {
	return s.rank() >= 0
}

// Advances reports whether moving from s to next is a forward transition.
func (s GenerationStatus) Advances(next GenerationStatus) bool {
	return next.rank() > s.rank()
}

type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	CreatedAt string `json:"created_at"`
}

// Fields returns the placeholder mapping used for script personalization.
func (c Contact) Fields() map[string]string {
	return map[string]string{
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"company":   c.Company,
	}
}

// GenerationMetadata is snapshotted once at submission time and never
// mutated afterwards.
type GenerationMetadata struct {
	Contact            Contact `json:"contact"`
	PersonalizedScript string  `json:"personalized_script"`
	VendorVideoID      string  `json:"vendor_video_id"`
	ProjectName        string  `json:"project_name"`
}

// GenerationRecord tracks one personalized video request against the vendor.
// VendorVideoID is immutable once set and Status only ever moves forward.
type GenerationRecord struct {
	ID            string             `json:"id"`
	ProjectID     string             `json:"project_id"`
	ContactID     string             `json:"contact_id"`
	Status        GenerationStatus   `json:"status"`
	VendorVideoID string             `json:"vendor_video_id"`
	VideoURL      string             `json:"video_url,omitempty"`
	Error         string             `json:"error,omitempty"`
	Metadata      GenerationMetadata `json:"metadata"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// GenerationUpdate is the partial write applied during reconciliation.
// Nil pointers leave the stored value untouched.
type GenerationUpdate struct {
	Status    GenerationStatus
	VideoURL  *string
	Error     *string
	UpdatedAt time.Time
}

type VideoProject struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	AvatarID        string    `json:"avatar_id"`
	Script          string    `json:"script"`
	IsActive        bool      `json:"is_active"`
	VendorProjectID string    `json:"vendor_project_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProjectRequest struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Name            string           `json:"name"`
	AvatarID        string           `json:"avatar_id"`
	Script          string           `json:"script"`
	Status          GenerationStatus `json:"status"`
	VendorProjectID string           `json:"vendor_project_id,omitempty"`
	Error           string           `json:"error,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type AvatarRequest struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	Name           string           `json:"name"`
	Status         GenerationStatus `json:"status"`
	SourceVideoURL string           `json:"source_video_url"`
	VendorAvatarID string           `json:"vendor_avatar_id,omitempty"`
	Error          string           `json:"error,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type VendorAvatar struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// AdsMetrics is the aggregate over all ad accounts: spend, impressions,
// clicks and conversions are summed, the rate metrics are averaged.
type AdsMetrics struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
}
