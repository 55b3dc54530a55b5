package service

import (
	"database/sql"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
)

// stubTxManager runs the transaction body directly with a nil handle so
// repo mocks see the same tx value the service passed in.
type stubTxManager struct {
	beginErr error
}

func (m *stubTxManager) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	return fc(nil)
}

type stubNotifier struct {
	calls    int
	recorded []*entity.Result
	deleted  []*entity.Result
}

func (n *stubNotifier) StandingsChanged() { n.calls++ }

func (n *stubNotifier) ResultRecorded(result *entity.Result) {
	n.recorded = append(n.recorded, result)
}

func (n *stubNotifier) ResultDeleted(result *entity.Result) {
	n.deleted = append(n.deleted, result)
}

type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) Create(team *entity.Team) error {
	args := m.Called(team)
	return args.Error(0)
}

func (m *MockTeamRepo) GetByID(id uint) (*entity.Team, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Team), args.Error(1)
}

func (m *MockTeamRepo) Update(team *entity.Team) error {
	args := m.Called(team)
	return args.Error(0)
}

func (m *MockTeamRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTeamRepo) List(limit, offset int) ([]entity.Team, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Team), args.Get(1).(int64), args.Error(2)
}

func (m *MockTeamRepo) ApplyAggregateDelta(tx *gorm.DB, teamID uint, delta repository.AggregateDelta) error {
	args := m.Called(tx, teamID, delta)
	return args.Error(0)
}

func (m *MockTeamRepo) Leaderboard() ([]entity.Team, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Team), args.Error(1)
}

type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Create(tx *gorm.DB, result *entity.Result) error {
	args := m.Called(tx, result)
	return args.Error(0)
}

func (m *MockResultRepo) GetByID(id uint) (*entity.Result, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Result), args.Error(1)
}

func (m *MockResultRepo) Delete(tx *gorm.DB, id uint) error {
	args := m.Called(tx, id)
	return args.Error(0)
}

func (m *MockResultRepo) ListByEvent(eventID uint) ([]entity.Result, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepo) ListByTeam(teamID uint, limit, offset int) ([]entity.Result, error) {
	args := m.Called(teamID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepo) AggregateByTeam(eventID uint) ([]repository.TeamReversal, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TeamReversal), args.Error(1)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(event *entity.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepo) GetByID(id uint) (*entity.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventRepo) Update(event *entity.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepo) List(filters repository.EventFilters, limit, offset int) ([]entity.Event, int64, error) {
	args := m.Called(filters, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepo) MarkCompleted(tx *gorm.DB, eventID uint) error {
	args := m.Called(tx, eventID)
	return args.Error(0)
}

func (m *MockEventRepo) Delete(tx *gorm.DB, eventID uint) error {
	args := m.Called(tx, eventID)
	return args.Error(0)
}

func (m *MockEventRepo) AddCriteria(eventID uint, criteria []entity.ScoreCriterion) error {
	args := m.Called(eventID, criteria)
	return args.Error(0)
}

func (m *MockEventRepo) ListCriteria(eventID uint) ([]entity.ScoreCriterion, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ScoreCriterion), args.Error(1)
}

type MockScoreRepo struct {
	mock.Mock
}

func (m *MockScoreRepo) Create(score *entity.Score) error {
	args := m.Called(score)
	return args.Error(0)
}

func (m *MockScoreRepo) GetByID(id uint) (*entity.Score, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Score), args.Error(1)
}

func (m *MockScoreRepo) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockScoreRepo) ListByEvent(eventID uint) ([]entity.Score, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Score), args.Error(1)
}

func (m *MockScoreRepo) ListByStatus(status string, limit, offset int) ([]entity.Score, int64, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Score), args.Get(1).(int64), args.Error(2)
}

func (m *MockScoreRepo) SumApprovedByTeam(eventID uint) ([]repository.TeamScoreTotal, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TeamScoreTotal), args.Error(1)
}

func (m *MockScoreRepo) DeleteByEvent(tx *gorm.DB, eventID uint) error {
	args := m.Called(tx, eventID)
	return args.Error(0)
}

type MockJudgeRepo struct {
	mock.Mock
}

func (m *MockJudgeRepo) Create(judge *entity.Judge) error {
	args := m.Called(judge)
	return args.Error(0)
}

func (m *MockJudgeRepo) GetByID(id uint) (*entity.Judge, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Judge), args.Error(1)
}

func (m *MockJudgeRepo) GetByUserID(userID uint) (*entity.Judge, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Judge), args.Error(1)
}

func (m *MockJudgeRepo) List() ([]entity.Judge, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Judge), args.Error(1)
}

func (m *MockJudgeRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockJudgeRepo) ReplaceAssignments(judgeID uint, eventIDs []uint) error {
	args := m.Called(judgeID, eventIDs)
	return args.Error(0)
}

func (m *MockJudgeRepo) ListAssignedEvents(judgeID uint) ([]entity.Event, error) {
	args := m.Called(judgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *MockJudgeRepo) IsAssigned(judgeID, eventID uint) (bool, error) {
	args := m.Called(judgeID, eventID)
	return args.Bool(0), args.Error(1)
}
