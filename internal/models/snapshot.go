package models

// PlatformSettings is the admin-configurable settings block of the snapshot.
type PlatformSettings struct {
	FeeRate            float64  `json:"fee_rate"`
	SupportedLanguages []string `json:"supported_languages"`
	Timezones          []string `json:"timezones"`
}

// GlobalStats is the derived counters block. The values are recomputable
// from the collections and are never the sole source of truth.
type GlobalStats struct {
	TotalRevenue     float64 `json:"total_revenue"`
	CompletedLessons int     `json:"completed_lessons"`
	ApprovedTeachers int     `json:"approved_teachers"`
}

// Snapshot is the single persisted document holding every collection. The
// whole snapshot is written back after each store operation.
type Snapshot struct {
	Students     []Student            `json:"students"`
	Teachers     []Teacher            `json:"teachers"`
	Lessons      []Lesson             `json:"lessons"`
	Transactions []WalletTransaction  `json:"transactions"`
	Payouts      []PayoutRequest      `json:"payouts"`
	Activities   []Activity           `json:"activities"`
	Community    CommunityCollections `json:"community"`
	Settings     PlatformSettings     `json:"settings"`
	Stats        GlobalStats          `json:"stats"`
}

// DefaultFeeRate is the platform share of each completed lesson price.
const DefaultFeeRate = 0.15

// ApplyDefaults fills settings a loaded snapshot is missing, so schema
// additions stay non-breaking across deployments.
func (s *Snapshot) ApplyDefaults() {
	if s.Settings.FeeRate <= 0 || s.Settings.FeeRate >= 1 {
		s.Settings.FeeRate = DefaultFeeRate
	}
	if len(s.Settings.SupportedLanguages) == 0 {
		s.Settings.SupportedLanguages = []string{
			"english", "spanish", "french", "german", "italian",
			"portuguese", "japanese", "korean", "mandarin", "arabic",
		}
	}
	if len(s.Settings.Timezones) == 0 {
		s.Settings.Timezones = []string{
			"UTC", "America/New_York", "America/Los_Angeles",
			"Europe/London", "Europe/Berlin", "Asia/Tokyo", "Asia/Singapore",
		}
	}
}
