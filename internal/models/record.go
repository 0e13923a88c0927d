package models

import "sort"

// Record is the common surface of the six log types. PrimaryTime is the
// field every ordering and dedup decision is based on: timestamp for instant
// events, startTime for intervals.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	PrimaryTime() int64
	// NormalizeTimes applies the seconds/milliseconds heuristic (EnsureMillis)
	// to every time field of the record.
	NormalizeTimes()
}

// RecordPtr constrains a pointer to a log type to the Record interface.
// It lets generic helpers mutate records held in value slices.
type RecordPtr[T any] interface {
	Record
	*T
}

func (f *FeedingLog) RecordID() string      { return f.ID }
func (f *FeedingLog) SetRecordID(id string) { f.ID = id }
func (f *FeedingLog) PrimaryTime() int64    { return f.Timestamp }
func (f *FeedingLog) NormalizeTimes()       { f.Timestamp = EnsureMillis(f.Timestamp) }

func (d *DiaperLog) RecordID() string      { return d.ID }
func (d *DiaperLog) SetRecordID(id string) { d.ID = id }
func (d *DiaperLog) PrimaryTime() int64    { return d.Timestamp }
func (d *DiaperLog) NormalizeTimes()       { d.Timestamp = EnsureMillis(d.Timestamp) }

func (s *SleepLog) RecordID() string      { return s.ID }
func (s *SleepLog) SetRecordID(id string) { s.ID = id }
func (s *SleepLog) PrimaryTime() int64    { return s.StartTime }

func (s *SleepLog) NormalizeTimes() {
	s.StartTime = EnsureMillis(s.StartTime)
	if s.EndTime != nil {
		v := EnsureMillis(*s.EndTime)
		s.EndTime = &v
	}
}

func (g *GrowthLog) RecordID() string      { return g.ID }
func (g *GrowthLog) SetRecordID(id string) { g.ID = id }
func (g *GrowthLog) PrimaryTime() int64    { return g.Timestamp }
func (g *GrowthLog) NormalizeTimes()       { g.Timestamp = EnsureMillis(g.Timestamp) }

func (m *MedicalLog) RecordID() string      { return m.ID }
func (m *MedicalLog) SetRecordID(id string) { m.ID = id }
func (m *MedicalLog) PrimaryTime() int64    { return m.Timestamp }
func (m *MedicalLog) NormalizeTimes()       { m.Timestamp = EnsureMillis(m.Timestamp) }

func (m *MilestoneLog) RecordID() string      { return m.ID }
func (m *MilestoneLog) SetRecordID(id string) { m.ID = id }
func (m *MilestoneLog) PrimaryTime() int64    { return m.Timestamp }
func (m *MilestoneLog) NormalizeTimes()       { m.Timestamp = EnsureMillis(m.Timestamp) }

// SortByTime sorts a category list ascending by primary time. The sort is
// stable so records sharing a timestamp keep their relative order.
func SortByTime[T any, PT RecordPtr[T]](list []T) {
	sort.SliceStable(list, func(i, j int) bool {
		return PT(&list[i]).PrimaryTime() < PT(&list[j]).PrimaryTime()
	})
}
