package service

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/yash6314/invigilationMailService/internal/model"
	"github.com/yash6314/invigilationMailService/internal/repository"
)

// ── Mock InvigilationRepository ──

type mockInvigilationRepo struct {
	rows    []model.Invigilation
	listErr error
	markErr error

	markSentCalls [][]string
	lastSentAt    time.Time
}

func newMockInvigilationRepo() *mockInvigilationRepo {
	return &mockInvigilationRepo{}
}

func (m *mockInvigilationRepo) ListPending(_ context.Context, from, to time.Time) ([]model.Invigilation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Invigilation
	for _, inv := range m.rows {
		if inv.Date.Before(from) || inv.Date.After(to) {
			continue
		}
		if inv.MailSent && !inv.ForceResend {
			continue
		}
		result = append(result, inv)
	}
	return result, nil
}

func (m *mockInvigilationRepo) ListRange(_ context.Context, from, to time.Time) ([]model.Invigilation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Invigilation
	for _, inv := range m.rows {
		if inv.Date.Before(from) || inv.Date.After(to) {
			continue
		}
		result = append(result, inv)
	}
	return result, nil
}

func (m *mockInvigilationRepo) ListByPerson(_ context.Context, from, to time.Time, qid string) ([]model.Invigilation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Invigilation
	for _, inv := range m.rows {
		if inv.Date.Before(from) || inv.Date.After(to) {
			continue
		}
		for _, q := range inv.QIDs {
			if q == qid {
				result = append(result, inv)
				break
			}
		}
	}
	return result, nil
}

func (m *mockInvigilationRepo) MarkSent(_ context.Context, ids []string, sentAt time.Time) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.markSentCalls = append(m.markSentCalls, ids)
	m.lastSentAt = sentAt
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	for i := range m.rows {
		if idSet[m.rows[i].InvigilationID] {
			at := sentAt
			m.rows[i].MailSent = true
			m.rows[i].ForceResend = false
			m.rows[i].MailSentAt = &at
		}
	}
	return nil
}

func (m *mockInvigilationRepo) find(id string) *model.Invigilation {
	for i := range m.rows {
		if m.rows[i].InvigilationID == id {
			return &m.rows[i]
		}
	}
	return nil
}

// ── Mock HallRepository ──

type mockHallRepo struct {
	halls map[string]*model.Hall
	calls map[string]int
	err   error
}

func newMockHallRepo() *mockHallRepo {
	return &mockHallRepo{halls: make(map[string]*model.Hall), calls: make(map[string]int)}
}

func (m *mockHallRepo) GetByID(_ context.Context, id string) (*model.Hall, error) {
	m.calls[id]++
	if m.err != nil {
		return nil, m.err
	}
	if h, ok := m.halls[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock VenueRepository ──

type mockVenueRepo struct {
	venues map[string]*model.Venue
	calls  map[string]int
	err    error
}

func newMockVenueRepo() *mockVenueRepo {
	return &mockVenueRepo{venues: make(map[string]*model.Venue), calls: make(map[string]int)}
}

func (m *mockVenueRepo) GetByID(_ context.Context, id string) (*model.Venue, error) {
	m.calls[id]++
	if m.err != nil {
		return nil, m.err
	}
	if v, ok := m.venues[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock PersonRepository ──

type mockPersonRepo struct {
	persons  map[string]*model.Person
	staff    map[string]*model.StaffDetail   // by QID
	students map[string]*model.StudentDetail // by QID

	personCalls map[string]int
	detailErr   error // returned by the detail-by-QID lookups when set
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{
		persons:     make(map[string]*model.Person),
		staff:       make(map[string]*model.StaffDetail),
		students:    make(map[string]*model.StudentDetail),
		personCalls: make(map[string]int),
	}
}

func (m *mockPersonRepo) GetByQID(_ context.Context, qid string) (*model.Person, error) {
	m.personCalls[qid]++
	if p, ok := m.persons[qid]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) GetStaffDetail(_ context.Context, qid string) (*model.StaffDetail, error) {
	if m.detailErr != nil {
		return nil, m.detailErr
	}
	if d, ok := m.staff[qid]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) GetStudentDetail(_ context.Context, qid string) (*model.StudentDetail, error) {
	if m.detailErr != nil {
		return nil, m.detailErr
	}
	if d, ok := m.students[qid]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) GetStaffDetailByEID(_ context.Context, eid string) (*model.StaffDetail, error) {
	for _, d := range m.staff {
		if d.EID == eid {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) GetStudentDetailByHTNO(_ context.Context, htno string) (*model.StudentDetail, error) {
	for _, d := range m.students {
		if d.HTNO == htno {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock MailTransport ──

type sentMail struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

type mockTransport struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]error // keyed by recipient address
}

func newMockTransport() *mockTransport {
	return &mockTransport{failFor: make(map[string]error)}
}

func (m *mockTransport) Send(_ context.Context, from, to, subject, htmlBody, textBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentMail{From: from, To: to, Subject: subject, HTML: htmlBody, Text: textBody})
	return nil
}

func (m *mockTransport) sentTo(addr string) []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []sentMail
	for _, s := range m.sent {
		if s.To == addr {
			result = append(result, s)
		}
	}
	return result
}

// ── shared fixtures ──

func newTestRepository() (*repository.Repository, *mockInvigilationRepo, *mockHallRepo, *mockVenueRepo, *mockPersonRepo) {
	invRepo := newMockInvigilationRepo()
	hallRepo := newMockHallRepo()
	venueRepo := newMockVenueRepo()
	personRepo := newMockPersonRepo()
	repo := &repository.Repository{
		Invigilation: invRepo,
		Hall:         hallRepo,
		Venue:        venueRepo,
		Person:       personRepo,
	}
	return repo, invRepo, hallRepo, venueRepo, personRepo
}

func strPtr(s string) *string { return &s }

func dateOf(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func timeOf(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}
