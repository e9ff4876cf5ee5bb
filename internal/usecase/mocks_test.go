package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"career-coach/internal/database"
	"career-coach/internal/domain/assessment"
	"career-coach/internal/domain/insight"
	"career-coach/internal/domain/user"
	"career-coach/internal/insights"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User

	createErr        error
	getByIDErr       error
	existsByEmail    bool
	existsByEmailErr error

	updateProfileCalls int
	updatedWith        user.ProfileUpdate
	updateProfileErr   error
	updateProfileTx    database.Querier
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uuid.UUID]user.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.getByIDErr != nil {
		return user.User{}, m.getByIDErr
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return m.existsByEmail, m.existsByEmailErr
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, q database.Querier, id uuid.UUID, p user.ProfileUpdate) (user.User, error) {
	m.updateProfileCalls++
	m.updatedWith = p
	m.updateProfileTx = q
	if m.updateProfileErr != nil {
		return user.User{}, m.updateProfileErr
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	industry := p.Industry
	exp := p.Experience
	u.Industry = &industry
	u.Experience = &exp
	u.Bio = p.Bio
	u.Skills = p.Skills
	m.users[id] = u
	return u, nil
}

type mockInsightRepo struct {
	byIndustry map[string]insight.IndustryInsight

	getErr    error
	createErr error

	createCalls  int
	createdWith  insight.IndustryInsight
	createTx     database.Querier
	raceExisting *insight.IndustryInsight

	updateCalls int
	updateErr   error

	industries    []string
	industriesErr error
}

func newMockInsightRepo(recs ...insight.IndustryInsight) *mockInsightRepo {
	m := &mockInsightRepo{byIndustry: make(map[string]insight.IndustryInsight)}
	for _, rec := range recs {
		m.byIndustry[rec.Industry] = rec
	}
	return m
}

func (m *mockInsightRepo) GetByIndustry(_ context.Context, _ database.Querier, industry string) (insight.IndustryInsight, error) {
	if m.getErr != nil {
		return insight.IndustryInsight{}, m.getErr
	}
	rec, ok := m.byIndustry[industry]
	if !ok {
		return insight.IndustryInsight{}, insight.ErrNotFound
	}
	return rec, nil
}

func (m *mockInsightRepo) CreateIfAbsent(_ context.Context, q database.Querier, rec insight.IndustryInsight) (insight.IndustryInsight, bool, error) {
	m.createCalls++
	m.createdWith = rec
	m.createTx = q
	if m.createErr != nil {
		return insight.IndustryInsight{}, false, m.createErr
	}
	if m.raceExisting != nil {
		return *m.raceExisting, false, nil
	}
	if existing, ok := m.byIndustry[rec.Industry]; ok {
		return existing, false, nil
	}
	m.byIndustry[rec.Industry] = rec
	return rec, true, nil
}

func (m *mockInsightRepo) UpdateByIndustry(_ context.Context, industry string, p insight.Payload, lastUpdated, nextUpdate time.Time) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	rec, ok := m.byIndustry[industry]
	if !ok {
		return insight.ErrNotFound
	}
	rec.Payload = p
	rec.LastUpdated = lastUpdated
	rec.NextUpdate = nextUpdate
	m.byIndustry[industry] = rec
	return nil
}

func (m *mockInsightRepo) ListIndustries(_ context.Context) ([]string, error) {
	return m.industries, m.industriesErr
}

type mockAssessmentRepo struct {
	saved     []assessment.Assessment
	insertErr error
	listErr   error
}

func (m *mockAssessmentRepo) Insert(_ context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	if m.insertErr != nil {
		return assessment.Assessment{}, m.insertErr
	}
	a.CreatedAt = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	m.saved = append(m.saved, a)
	return a, nil
}

func (m *mockAssessmentRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]assessment.Assessment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.saved, nil
}

type mockGenerator struct {
	payload insight.Payload
	genErr  error

	quiz    []insights.QuizQuestion
	quizErr error

	tip    string
	tipErr error

	genCalls  int
	quizCalls int
	tipCalls  int
	tipWrong  []assessment.QuestionResult
}

func (m *mockGenerator) Generate(_ context.Context, _ string) (insight.Payload, error) {
	m.genCalls++
	if m.genErr != nil {
		return insight.Payload{}, m.genErr
	}
	return m.payload, nil
}

func (m *mockGenerator) GenerateQuiz(_ context.Context, _ string, _ []string) ([]insights.QuizQuestion, error) {
	m.quizCalls++
	return m.quiz, m.quizErr
}

func (m *mockGenerator) ImprovementTip(_ context.Context, _ string, wrong []assessment.QuestionResult) (string, error) {
	m.tipCalls++
	m.tipWrong = wrong
	if m.tipErr != nil {
		return "", m.tipErr
	}
	return m.tip, nil
}

type mockCache struct {
	store map[string][]byte

	getErr error
	setErr error
	delErr error

	getCalls int
	setCalls int
	deleted  []string
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.getCalls++
	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = raw
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.store, key)
	return nil
}

func testPayload() insight.Payload {
	return insight.Payload{
		SalaryRanges: []insight.SalaryRange{
			{Role: "Junior", Min: 40000, Max: 70000, Median: 55000, Location: "Remote"},
			{Role: "Mid", Min: 60000, Max: 100000, Median: 80000, Location: "Remote"},
			{Role: "Senior", Min: 90000, Max: 150000, Median: 120000, Location: "Remote"},
			{Role: "Staff", Min: 120000, Max: 200000, Median: 160000, Location: "Remote"},
			{Role: "Principal", Min: 150000, Max: 250000, Median: 200000, Location: "Remote"},
		},
		GrowthRate:        8.5,
		DemandLevel:       insight.DemandHigh,
		TopSkills:         []string{"Go", "SQL", "Docker", "Kubernetes", "AWS"},
		MarketOutlook:     insight.OutlookPositive,
		KeyTrends:         []string{"AI", "Cloud", "Remote", "Security", "Edge"},
		RecommendedSkills: []string{"Go", "Terraform"},
	}
}

func onboardedUser(industry string) user.User {
	exp := 4
	return user.User{
		ID:         uuid.New(),
		Email:      "dev@example.com",
		Industry:   &industry,
		Experience: &exp,
		Skills:     []string{"Go", "SQL"},
	}
}

type mockTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *mockTx) Exec(_ context.Context, _ string, _ ...any) (int64, error) { return 0, nil }
func (t *mockTx) Query(_ context.Context, _ string, _ ...any) (database.Rows, error) {
	return nil, nil
}
func (t *mockTx) QueryRow(_ context.Context, _ string, _ ...any) database.Row { return nil }
func (t *mockTx) Commit(_ context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}
func (t *mockTx) Rollback(_ context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type mockDB struct {
	tx       *mockTx
	beginErr error
}

func (d *mockDB) Exec(_ context.Context, _ string, _ ...any) (int64, error) { return 0, nil }
func (d *mockDB) Query(_ context.Context, _ string, _ ...any) (database.Rows, error) {
	return nil, nil
}
func (d *mockDB) QueryRow(_ context.Context, _ string, _ ...any) database.Row { return nil }
func (d *mockDB) Ping(_ context.Context) error                                { return nil }
func (d *mockDB) Close() error                                                { return nil }
func (d *mockDB) SQLDB() *sql.DB                                              { return nil }
func (d *mockDB) Begin(_ context.Context) (database.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	if d.tx == nil {
		d.tx = &mockTx{}
	}
	return d.tx, nil
}
