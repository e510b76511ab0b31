package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const (
	DefaultChartDays = 16
	maxChartDays     = 90
	chartFloor       = 5

	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

type DashboardService interface {
	Stats(ctx context.Context, companyID int64) (*model.CompanyStats, error)
	Chart(ctx context.Context, companyID int64, days int) ([]model.ChartBucket, error)
	Sources(ctx context.Context, companyID int64) ([]model.SourceBucket, error)
	Activity(ctx context.Context, companyID int64, limit int32) ([]model.Activity, error)
	SeekerDashboard(ctx context.Context, p model.Principal) (*model.SeekerStats, error)
}

type dashboardService struct {
	jobs          store.JobStore
	applicants    store.ApplicantStore
	interviews    store.InterviewStore
	conversations store.ConversationStore
	activities    store.ActivityStore
	savedJobs     store.SavedJobStore
	now           func() time.Time
}

func NewDashboardService(
	jobs store.JobStore,
	applicants store.ApplicantStore,
	interviews store.InterviewStore,
	conversations store.ConversationStore,
	activities store.ActivityStore,
	savedJobs store.SavedJobStore,
) DashboardService {
	return &dashboardService{
		jobs:          jobs,
		applicants:    applicants,
		interviews:    interviews,
		conversations: conversations,
		activities:    activities,
		savedJobs:     savedJobs,
		now:           time.Now,
	}
}

func (s *dashboardService) Stats(ctx context.Context, companyID int64) (*model.CompanyStats, error) {
	jobs, err := s.jobs.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, storeErr(err, "counting jobs")
	}
	applicants, err := s.applicants.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, storeErr(err, "counting applicants")
	}
	upcoming, err := s.interviews.CountUpcomingForCompany(ctx, companyID)
	if err != nil {
		return nil, storeErr(err, "counting interviews")
	}
	unread, err := s.conversations.CountUnread(ctx, model.Principal{ID: companyID, Role: model.RoleCompany})
	if err != nil {
		return nil, storeErr(err, "counting unread messages")
	}

	return &model.CompanyStats{
		TotalJobs:          jobs.Total,
		OpenJobs:           jobs.Open,
		TotalApplicants:    applicants.Total,
		NewApplicants:      applicants.New,
		UpcomingInterviews: upcoming,
		Offers:             applicants.Offers,
		UnreadMessages:     unread,
	}, nil
}

func (s *dashboardService) Chart(ctx context.Context, companyID int64, days int) ([]model.ChartBucket, error) {
	if days < 1 || days > maxChartDays {
		return nil, invalid("days", fmt.Sprintf("must be between 1 and %d", maxChartDays))
	}
	now := s.now().UTC()
	since := startOfDay(now).AddDate(0, 0, -(days - 1))

	dates, err := s.applicants.ListAppliedSince(ctx, companyID, since)
	if err != nil {
		return nil, storeErr(err, "listing applicant dates")
	}
	return ChartBuckets(dates, days, now)
}

func (s *dashboardService) Sources(ctx context.Context, companyID int64) ([]model.SourceBucket, error) {
	sources, err := s.applicants.ListSources(ctx, companyID)
	if err != nil {
		return nil, storeErr(err, "listing applicant sources")
	}
	return SourceBreakdown(sources), nil
}

func (s *dashboardService) Activity(ctx context.Context, companyID int64, limit int32) ([]model.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	items, err := s.activities.ListForCompany(ctx, companyID, limit)
	if err != nil {
		return nil, storeErr(err, "listing activity")
	}
	return items, nil
}

func (s *dashboardService) SeekerDashboard(ctx context.Context, p model.Principal) (*model.SeekerStats, error) {
	byStatus, err := s.applicants.CountByUserStatus(ctx, p.ID)
	if err != nil {
		return nil, storeErr(err, "counting applications")
	}
	upcoming, err := s.interviews.CountUpcomingForUser(ctx, p.ID)
	if err != nil {
		return nil, storeErr(err, "counting interviews")
	}
	saved, err := s.savedJobs.CountByUser(ctx, p.ID)
	if err != nil {
		return nil, storeErr(err, "counting saved jobs")
	}
	unread, err := s.conversations.CountUnread(ctx, p)
	if err != nil {
		return nil, storeErr(err, "counting unread messages")
	}

	stats := &model.SeekerStats{
		Applications:       make(map[model.ApplicantStatus]int64, 5),
		UpcomingInterviews: upcoming,
		SavedJobs:          saved,
		UnreadMessages:     unread,
	}
	for _, st := range []model.ApplicantStatus{
		model.ApplicantStatusNew,
		model.ApplicantStatusReviewing,
		model.ApplicantStatusInterview,
		model.ApplicantStatusOffer,
		model.ApplicantStatusRejected,
	} {
		stats.Applications[st] = byStatus[st]
		stats.TotalApplications += byStatus[st]
	}
	return stats, nil
}

// ChartBuckets counts dates per UTC day over the days ending today and scales
// each count against the busiest day. Dates outside the window are ignored.
func ChartBuckets(dates []time.Time, days int, now time.Time) ([]model.ChartBucket, error) {
	if days < 1 || days > maxChartDays {
		return nil, invalid("days", fmt.Sprintf("must be between 1 and %d", maxChartDays))
	}
	today := startOfDay(now.UTC())
	first := today.AddDate(0, 0, -(days - 1))

	buckets := make([]model.ChartBucket, days)
	index := make(map[string]int, days)
	for i := range buckets {
		key := first.AddDate(0, 0, i).Format(time.DateOnly)
		buckets[i].Date = key
		index[key] = i
	}

	for _, d := range dates {
		if i, ok := index[d.UTC().Format(time.DateOnly)]; ok {
			buckets[i].Count++
		}
	}

	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}
	for i := range buckets {
		if peak == 0 {
			buckets[i].Value = chartFloor
			continue
		}
		v := int(math.Round(float64(buckets[i].Count) / float64(peak) * 100))
		buckets[i].Value = max(v, chartFloor)
	}
	return buckets, nil
}

// ClassifySource maps a free-form applicant source to a reporting channel.
func ClassifySource(source string) model.SourceChannel {
	s := strings.ToLower(strings.TrimSpace(source))
	switch {
	case strings.Contains(s, "linkedin"):
		return model.SourceLinkedIn
	case strings.Contains(s, "referr"):
		return model.SourceReferral
	case s == "" || strings.Contains(s, "direct"):
		return model.SourceDirect
	default:
		return model.SourceOther
	}
}

// SourceBreakdown returns one bucket per channel in SourceChannels order.
// Percentages are floored, so they may sum to less than 100.
func SourceBreakdown(sources []string) []model.SourceBucket {
	counts := make(map[model.SourceChannel]int, len(model.SourceChannels))
	for _, src := range sources {
		counts[ClassifySource(src)]++
	}
	total := len(sources)
	if total == 0 {
		total = 1
	}

	out := make([]model.SourceBucket, 0, len(model.SourceChannels))
	for _, ch := range model.SourceChannels {
		out = append(out, model.SourceBucket{
			Source:  ch,
			Count:   counts[ch],
			Percent: counts[ch] * 100 / total,
		})
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
