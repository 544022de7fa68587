package services

import (
	"context"
	"strings"
	"time"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/health/models"
	rostermodels "github.com/c14220110/healthcheck-backend/internal/roster/models"
	"github.com/c14220110/healthcheck-backend/pkg/utils"
)

// RosterLister menyediakan roster lengkap (dipenuhi oleh roster EmployeeService).
type RosterLister interface {
	ListRoster(ctx context.Context) ([]rostermodels.RosterEntry, error)
}

// DaySubmissionLister menyediakan submission dalam satu hari tampilan.
type DaySubmissionLister interface {
	ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Submission, error)
}

type StatusService struct {
	Roster  RosterLister
	Records DaySubmissionLister
	Now     func() time.Time
}

func NewStatusService(roster RosterLister, records DaySubmissionLister) *StatusService {
	return &StatusService{Roster: roster, Records: records, Now: time.Now}
}

// GetRosterStatus mengembalikan satu baris per karyawan untuk tanggal yang diminta
// (default: hari ini di zona tampilan). Hasil kosong bukan error.
func (s *StatusService) GetRosterStatus(ctx context.Context, q models.StatusQuery) ([]models.StatusRow, string, error) {
	filter, err := models.ParseStatusFilter(strings.TrimSpace(q.Filter))
	if err != nil {
		return nil, "", apperror.Validation("%s", err.Error())
	}

	var day time.Time
	if raw := strings.TrimSpace(q.Date); raw != "" {
		day, err = utils.ParseDisplayDate(raw)
		if err != nil {
			return nil, "", apperror.Validation("date must be in YYYY-MM-DD format")
		}
	} else {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		day = now()
	}
	dayStart, dayEnd := utils.DayBounds(day)

	roster, err := s.Roster.ListRoster(ctx)
	if err != nil {
		return nil, "", err
	}
	subs, err := s.Records.ListForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, "", err
	}

	return JoinStatus(roster, subs, q.Search, filter), dayStart.Format(utils.DateLayout), nil
}
