package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/kakai/internal/common"
	"github.com/dmitrijs2005/kakai/internal/datex"
	"github.com/dmitrijs2005/kakai/internal/logging"
	"github.com/dmitrijs2005/kakai/internal/models"
	"github.com/dmitrijs2005/kakai/internal/repositories/kv"
	"github.com/google/uuid"
)

// Notifier receives the best-effort "data changed" hint emitted after every
// successful persist.
type Notifier interface {
	NotifyDataChanged(ctx context.Context)
}

// ImageStore is the blob collaborator used for meeting photos.
type ImageStore interface {
	Save(ctx context.Context, data []byte, meetingID string) (string, error)
	Load(ctx context.Context, filename string) ([]byte, error)
	Delete(ctx context.Context, filename string) error
}

// Option configures a RecordStore.
type Option func(*RecordStore)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *RecordStore) { s.now = now }
}

// WithLocation sets the time zone in which calendar days are counted.
func WithLocation(loc *time.Location) Option {
	return func(s *RecordStore) { s.loc = loc }
}

// RecordStore owns the couple profile and the meeting collection.
type RecordStore struct {
	mu sync.RWMutex

	storage  kv.Storage
	images   ImageStore
	notifier Notifier
	logger   logging.Logger
	now      func() time.Time
	loc      *time.Location

	profile  models.Profile
	meetings []models.Meeting
}

// NewRecordStore builds an empty store; call Load to restore persisted state.
// images and notifier may be nil.
func NewRecordStore(storage kv.Storage, images ImageStore, notifier Notifier, logger logging.Logger, opts ...Option) *RecordStore {
	s := &RecordStore{
		storage:  storage,
		images:   images,
		notifier: notifier,
		logger:   logger.With("component", "record_store"),
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the time zone used for day arithmetic.
func (s *RecordStore) Location() *time.Location {
	return s.loc
}

// Now returns the store's current time.
func (s *RecordStore) Now() time.Time {
	return s.now()
}

// Profile returns a copy of the couple profile.
func (s *RecordStore) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// CoupleNames renders "{userName} & {partnerName}".
func (s *RecordStore) CoupleNames() string {
	return s.Profile().CoupleNames()
}

// DaysTogether is recomputed against the clock on every call.
func (s *RecordStore) DaysTogether() int {
	return s.Profile().DaysTogether(s.now(), s.loc)
}

// Meetings returns a copy of the collection sorted by start date.
func (s *RecordStore) Meetings() []models.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

// Meeting returns the record with the given id.
func (s *RecordStore) Meeting(id string) (models.Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.meetings[i].Clone(), true
	}
	return models.Meeting{}, false
}

// UpcomingMeeting returns the meeting with the smallest start date strictly
// after now. It is not cached: the answer moves as the clock advances.
func (s *RecordStore) UpcomingMeeting() (models.Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.upcomingLocked(s.now())
}

// DaysUntilNextMeeting counts calendar days from today to the upcoming meeting.
func (s *RecordStore) DaysUntilNextMeeting() (int, bool) {
	now := s.now()
	s.mu.RLock()
	m, ok := s.upcomingLocked(now)
	s.mu.RUnlock()
	if !ok {
		return 0, false
	}
	return datex.DayDiff(now, m.StartDate, s.loc), true
}

// AddMeeting creates a meeting with a fresh id and persists. The title is not
// validated; callers keep empty titles out.
func (s *RecordStore) AddMeeting(ctx context.Context, title string, startDate time.Time, endDate *time.Time) models.Meeting {
	m := models.Meeting{
		ID:        uuid.NewString(),
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
	}
	m = m.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = append(s.meetings, m)
	s.persistLocked(ctx)
	return m.Clone()
}

// UpdateMeeting replaces the record with the same id and persists. It
// returns false, without persisting, when no record matches.
func (s *RecordStore) UpdateMeeting(ctx context.Context, m models.Meeting) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(m.ID)
	if i < 0 {
		return false
	}
	s.meetings[i] = m.Clone()
	s.persistLocked(ctx)
	return true
}

// DeleteMeeting removes every record with the given id and persists, whether
// or not anything matched. It returns the number of removed records.
func (s *RecordStore) DeleteMeeting(ctx context.Context, id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.meetings[:0]
	removed := 0
	for _, m := range s.meetings {
		if m.ID == id {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	s.meetings = kept
	s.persistLocked(ctx)
	return removed
}

// AppendMemo adds a plan note to the meeting's memo history.
func (s *RecordStore) AppendMemo(ctx context.Context, id, note string) bool {
	note = strings.TrimSpace(note)
	if note == "" {
		return false
	}
	return s.modify(ctx, id, func(m *models.Meeting) {
		m.Memos = append(m.Memos, note)
	})
}

// SetCompleted flips the completion flag of a meeting.
func (s *RecordStore) SetCompleted(ctx context.Context, id string, completed bool) bool {
	return s.modify(ctx, id, func(m *models.Meeting) {
		m.IsCompleted = completed
	})
}

// AttachPhoto stores data as the meeting's photo and records its filename.
func (s *RecordStore) AttachPhoto(ctx context.Context, id string, data []byte) (string, bool) {
	if _, ok := s.Meeting(id); !ok {
		return "", false
	}
	name, ok := s.SaveImage(ctx, data, id)
	if !ok {
		return "", false
	}
	if !s.modify(ctx, id, func(m *models.Meeting) { m.PhotoFilename = name }) {
		return "", false
	}
	return name, true
}

// RemovePhoto clears the meeting's photo reference and deletes the file.
// The file is removed only after the cleared reference was persisted.
func (s *RecordStore) RemovePhoto(ctx context.Context, id string) bool {
	m, ok := s.Meeting(id)
	if !ok || m.PhotoFilename == "" {
		return false
	}
	if !s.modify(ctx, id, func(m *models.Meeting) { m.PhotoFilename = "" }) {
		return false
	}
	if s.images != nil {
		if err := s.images.Delete(ctx, m.PhotoFilename); err != nil {
			s.logger.Warn(ctx, "failed to delete image", "meeting_id", id, "err", err)
		}
	}
	return true
}

func (s *RecordStore) modify(ctx context.Context, id string, fn func(m *models.Meeting)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	fn(&s.meetings[i])
	s.persistLocked(ctx)
	return true
}

// SetupProfile records the first-run profile and marks setup as complete.
// It reports whether the profile reached shared storage.
func (s *RecordStore) SetupProfile(ctx context.Context, userName, partnerName string, startDate time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = models.Profile{UserName: userName, PartnerName: partnerName, RelationshipStartDate: startDate}
	return s.persistLocked(ctx, func(ctx context.Context, repo kv.Repository) error {
		return repo.Set(ctx, kv.KeySetupComplete, []byte("true"))
	})
}

// UpdateProfile replaces the profile in place and persists.
func (s *RecordStore) UpdateProfile(ctx context.Context, p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.persistLocked(ctx)
}

// IsSetupComplete reports whether first-run setup has been stored.
func (s *RecordStore) IsSetupComplete(ctx context.Context) bool {
	v, ok, err := kv.GetString(ctx, s.storage, kv.KeySetupComplete)
	if err != nil {
		s.logger.Warn(ctx, "failed to read setup flag", "err", err)
		return false
	}
	return ok && v == "true"
}

// SaveImage writes an image for the meeting id. ok is false on any failure,
// which is logged.
func (s *RecordStore) SaveImage(ctx context.Context, data []byte, id string) (filename string, ok bool) {
	if s.images == nil {
		return "", false
	}
	name, err := s.images.Save(ctx, data, id)
	if err != nil {
		s.logger.Warn(ctx, "failed to save image", "meeting_id", id, "err", err)
		return "", false
	}
	return name, true
}

// LoadImage reads an image by filename. ok is false on any failure, which is
// logged.
func (s *RecordStore) LoadImage(ctx context.Context, filename string) (data []byte, ok bool) {
	if s.images == nil || filename == "" {
		return nil, false
	}
	b, err := s.images.Load(ctx, filename)
	if err != nil {
		s.logger.Warn(ctx, "failed to load image", "filename", filename, "err", err)
		return nil, false
	}
	return b, true
}

// Persist writes the full state to shared storage.
func (s *RecordStore) Persist(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.persistLocked(ctx)
}

type kvWrite struct {
	key   string
	value []byte
}

// persistLocked requires s.mu to be held. extra writes join the same
// transaction. It reports whether the transaction committed.
func (s *RecordStore) persistLocked(ctx context.Context, extra ...func(ctx context.Context, repo kv.Repository) error) bool {
	meetings, err := models.EncodeMeetings(s.meetings)
	if err != nil {
		s.logger.Error(ctx, "failed to encode meetings", "err", err)
		return false
	}

	var widgetData []byte
	upcoming, hasUpcoming := s.upcomingLocked(s.now())
	if hasUpcoming {
		widgetData, err = models.EncodeWidgetData(models.NewMeetingWidgetData(upcoming))
		if err != nil {
			s.logger.Error(ctx, "failed to encode widget data", "err", err)
			return false
		}
	}

	p := s.profile
	err = s.storage.Update(ctx, func(ctx context.Context, repo kv.Repository) error {
		writes := []kvWrite{
			{kv.KeyUserName, []byte(p.UserName)},
			{kv.KeyPartnerName, []byte(p.PartnerName)},
			{kv.KeyStartDate, kv.EncodeTime(p.RelationshipStartDate)},
			{kv.KeyMeetings, meetings},
		}
		if hasUpcoming {
			writes = append(writes,
				kvWrite{kv.KeyNextMeeting, kv.EncodeTime(upcoming.StartDate)},
				kvWrite{kv.KeyWidgetMeetingData, widgetData},
			)
		}
		for _, w := range writes {
			if err := repo.Set(ctx, w.key, w.value); err != nil {
				return err
			}
		}

		if !hasUpcoming {
			for _, key := range []string{kv.KeyNextMeeting, kv.KeyWidgetMeetingData} {
				if err := repo.Delete(ctx, key); err != nil {
					return err
				}
			}
		}

		for _, fn := range extra {
			if err := fn(ctx, repo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to persist state", "err", err)
		return false
	}

	s.logger.Debug(ctx, "state persisted", "meetings", len(s.meetings), "upcoming", hasUpcoming)
	if s.notifier != nil {
		s.notifier.NotifyDataChanged(ctx)
	}
	return true
}

// Load restores state from shared storage. Absent keys keep their in-memory
// values; a malformed meetings value empties the collection.
func (s *RecordStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok, err := kv.GetString(ctx, s.storage, kv.KeyUserName); err != nil {
		s.logger.Warn(ctx, "failed to read stored value, keeping default", "key", kv.KeyUserName, "err", err)
	} else if ok {
		s.profile.UserName = v
	}

	if v, ok, err := kv.GetString(ctx, s.storage, kv.KeyPartnerName); err != nil {
		s.logger.Warn(ctx, "failed to read stored value, keeping default", "key", kv.KeyPartnerName, "err", err)
	} else if ok {
		s.profile.PartnerName = v
	}

	if v, ok, err := kv.GetTime(ctx, s.storage, kv.KeyStartDate); err != nil {
		s.logger.Warn(ctx, "failed to read stored value, keeping default", "key", kv.KeyStartDate, "err", err)
	} else if ok {
		s.profile.RelationshipStartDate = v
	}

	raw, err := s.storage.Get(ctx, kv.KeyMeetings)
	if err != nil {
		s.logger.Warn(ctx, "failed to read stored value, keeping default", "key", kv.KeyMeetings, "err", err)
		return
	}
	if raw == nil {
		return
	}

	ms, err := models.DecodeMeetings(raw)
	if err != nil {
		if errors.Is(err, common.ErrUnsupportedVersion) {
			s.logger.Error(ctx, "stored meetings use an unknown format", "err", err)
		} else {
			s.logger.Warn(ctx, "stored meetings are malformed, starting empty", "err", err)
		}
		s.meetings = nil
		return
	}
	s.meetings = ms
}

func (s *RecordStore) indexLocked(id string) int {
	for i, m := range s.meetings {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *RecordStore) sortedLocked() []models.Meeting {
	out := make([]models.Meeting, len(s.meetings))
	for i, m := range s.meetings {
		out[i] = m.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out
}

func (s *RecordStore) upcomingLocked(now time.Time) (models.Meeting, bool) {
	var best *models.Meeting
	for i := range s.meetings {
		m := &s.meetings[i]
		if !m.StartDate.After(now) {
			continue
		}
		if best == nil || m.StartDate.Before(best.StartDate) {
			best = m
		}
	}
	if best == nil {
		return models.Meeting{}, false
	}
	return best.Clone(), true
}
