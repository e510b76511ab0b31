package model

type ChartBucket struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
	Value int    `json:"value"` // 0-100 scale, never below the floor
}

type SourceChannel string

const (
	SourceDirect   SourceChannel = "direct"
	SourceLinkedIn SourceChannel = "linkedin"
	SourceReferral SourceChannel = "referral"
	SourceOther    SourceChannel = "other"
)

// SourceChannels is the fixed output order of a source breakdown.
var SourceChannels = []SourceChannel{SourceDirect, SourceLinkedIn, SourceReferral, SourceOther}

type SourceBucket struct {
	Source  SourceChannel `json:"source"`
	Count   int           `json:"count"`
	Percent int           `json:"percent"`
}

type CompanyStats struct {
	TotalJobs          int64 `json:"total_jobs"`
	OpenJobs           int64 `json:"open_jobs"`
	TotalApplicants    int64 `json:"total_applicants"`
	NewApplicants      int64 `json:"new_applicants"`
	UpcomingInterviews int64 `json:"upcoming_interviews"`
	Offers             int64 `json:"offers"`
	UnreadMessages     int64 `json:"unread_messages"`
}

type SeekerStats struct {
	Applications       map[ApplicantStatus]int64 `json:"applications"`
	TotalApplications  int64                     `json:"total_applications"`
	UpcomingInterviews int64                     `json:"upcoming_interviews"`
	SavedJobs          int64                     `json:"saved_jobs"`
	UnreadMessages     int64                     `json:"unread_messages"`
}
