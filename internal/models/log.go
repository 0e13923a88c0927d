// Package models defines the six infant-care event categories, the Settings
// singleton, and the snapshot/dataset shapes shared by the store, the merge
// engine, and the wire formats.
package models

// FeedingType classifies how a feeding was given.
type FeedingType string

const (
	FeedingBottle  FeedingType = "bottle"
	FeedingNursing FeedingType = "nursing"
)

// DiaperType classifies a diaper change.
type DiaperType string

const (
	DiaperWet   DiaperType = "wet"
	DiaperDirty DiaperType = "dirty"
	DiaperMixed DiaperType = "mixed"
)

// MedicalType classifies a medical record.
type MedicalType string

const (
	MedicalImmunization MedicalType = "immunization"
	MedicalVisit        MedicalType = "visit"
)

// UnitSystem selects how quantities are displayed. Stored values are always
// in canonical units (ml, kg) regardless of this setting.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// All time fields below are epoch milliseconds.

type FeedingLog struct {
	ID           string      `json:"id,omitempty"`
	Timestamp    int64       `json:"timestamp"`
	Type         FeedingType `json:"type"`
	AmountMl     float64     `json:"amountMl,omitempty"`
	LeftMinutes  int         `json:"leftMinutes,omitempty"`
	RightMinutes int         `json:"rightMinutes,omitempty"`
	Note         string      `json:"note,omitempty"`
}

type DiaperLog struct {
	ID        string     `json:"id,omitempty"`
	Timestamp int64      `json:"timestamp"`
	Type      DiaperType `json:"type"`
	Note      string     `json:"note,omitempty"`
}

// SleepLog is an interval event. A nil EndTime means the interval is still
// open (currently asleep).
type SleepLog struct {
	ID        string `json:"id,omitempty"`
	StartTime int64  `json:"startTime"`
	EndTime   *int64 `json:"endTime,omitempty"`
}

type GrowthLog struct {
	ID        string  `json:"id,omitempty"`
	Timestamp int64   `json:"timestamp"`
	WeightKg  float64 `json:"weightKg"`
}

type MedicalLog struct {
	ID        string      `json:"id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Type      MedicalType `json:"type"`
	Title     string      `json:"title"`
	Note      string      `json:"note,omitempty"`
}

type MilestoneLog struct {
	ID        string `json:"id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Title     string `json:"title"`
}

// Settings is the singleton user configuration. It has no id and is mutated
// by shallow patch, never deleted.
type Settings struct {
	UnitSystem UnitSystem `json:"unitSystem"`
	SyncEmail  string     `json:"syncEmail,omitempty"`
	SyncID     string     `json:"syncId,omitempty"`
}

// SettingsPatch carries a partial settings update; nil fields are left
// untouched.
type SettingsPatch struct {
	UnitSystem *UnitSystem
	SyncEmail  *string
	SyncID     *string
}

// Dataset is a partial view of the log: any subset of the six categories.
// It is the shape produced by both wire decoders and the document importer,
// and the shape the merge engine consumes.
type Dataset struct {
	Feedings   []FeedingLog   `json:"feedings,omitempty"`
	Diapers    []DiaperLog    `json:"diapers,omitempty"`
	Sleep      []SleepLog     `json:"sleep,omitempty"`
	Growth     []GrowthLog    `json:"growth,omitempty"`
	Medical    []MedicalLog   `json:"medical,omitempty"`
	Milestones []MilestoneLog `json:"milestones,omitempty"`
}

// Snapshot is the complete store state at one instant: all six category
// lists plus settings. It is the unit of persistence.
type Snapshot struct {
	Feedings   []FeedingLog   `json:"feedings"`
	Diapers    []DiaperLog    `json:"diapers"`
	Sleep      []SleepLog     `json:"sleep"`
	Growth     []GrowthLog    `json:"growth"`
	Medical    []MedicalLog   `json:"medical"`
	Milestones []MilestoneLog `json:"milestones"`
	Settings   Settings       `json:"settings"`
}

// DefaultSnapshot returns the empty default: zero records per category,
// metric units.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Feedings:   []FeedingLog{},
		Diapers:    []DiaperLog{},
		Sleep:      []SleepLog{},
		Growth:     []GrowthLog{},
		Medical:    []MedicalLog{},
		Milestones: []MilestoneLog{},
		Settings:   Settings{UnitSystem: UnitMetric},
	}
}

// FillDefaults replaces nil category lists with empty ones and an unset unit
// system with metric, so a partially populated persisted snapshot loads into
// a fully formed one.
func (s *Snapshot) FillDefaults() {
	if s.Feedings == nil {
		s.Feedings = []FeedingLog{}
	}
	if s.Diapers == nil {
		s.Diapers = []DiaperLog{}
	}
	if s.Sleep == nil {
		s.Sleep = []SleepLog{}
	}
	if s.Growth == nil {
		s.Growth = []GrowthLog{}
	}
	if s.Medical == nil {
		s.Medical = []MedicalLog{}
	}
	if s.Milestones == nil {
		s.Milestones = []MilestoneLog{}
	}
	if s.Settings.UnitSystem == "" {
		s.Settings.UnitSystem = UnitMetric
	}
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Feedings = append([]FeedingLog(nil), s.Feedings...)
	out.Diapers = append([]DiaperLog(nil), s.Diapers...)
	out.Sleep = append([]SleepLog(nil), s.Sleep...)
	for i := range out.Sleep {
		if out.Sleep[i].EndTime != nil {
			v := *out.Sleep[i].EndTime
			out.Sleep[i].EndTime = &v
		}
	}
	out.Growth = append([]GrowthLog(nil), s.Growth...)
	out.Medical = append([]MedicalLog(nil), s.Medical...)
	out.Milestones = append([]MilestoneLog(nil), s.Milestones...)
	return out
}

// Total is the number of records across all six categories.
func (s Snapshot) Total() int {
	return len(s.Feedings) + len(s.Diapers) + len(s.Sleep) +
		len(s.Growth) + len(s.Medical) + len(s.Milestones)
}
