package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"hirely.app/api/common/logger"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

type ExportKind string

const (
	ExportJobs       ExportKind = "jobs"
	ExportApplicants ExportKind = "applicants"
)

var (
	jobExportHeader       = []string{"Title", "Location", "Type", "Status", "Applicants", "Created"}
	applicantExportHeader = []string{"Name", "Email", "Job", "Status", "Source", "Applied"}
)

type Export struct {
	Filename string
	Body     []byte
	Rows     int // data rows, header excluded
}

type ExportService interface {
	Export(ctx context.Context, companyID int64, kind ExportKind, now time.Time) (*Export, error)
}

type exportService struct {
	companies  store.CompanyStore
	jobs       store.JobStore
	applicants store.ApplicantStore
}

func NewExportService(companies store.CompanyStore, jobs store.JobStore, applicants store.ApplicantStore) ExportService {
	return &exportService{companies: companies, jobs: jobs, applicants: applicants}
}

func (s *exportService) Export(ctx context.Context, companyID int64, kind ExportKind, now time.Time) (*Export, error) {
	if kind != ExportJobs && kind != ExportApplicants {
		return nil, invalid("type", "must be jobs or applicants")
	}

	sc := logger.StartSpan(ctx, "export."+string(kind))
	defer sc.End()

	out, err := s.build(sc.Context(), companyID, kind, now)
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}
	sc.SetAttributes(attribute.Int("hirely.export.rows", out.Rows))
	return out, nil
}

func (s *exportService) build(ctx context.Context, companyID int64, kind ExportKind, now time.Time) (*Export, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, storeErr(err, "getting company")
	}

	var header []string
	var rows [][]string
	switch kind {
	case ExportJobs:
		jobs, err := s.jobs.ListByCompany(ctx, companyID)
		if err != nil {
			return nil, storeErr(err, "listing jobs")
		}
		header, rows = jobExportHeader, JobRows(jobs)
	case ExportApplicants:
		list, err := s.applicants.ListForCompany(ctx, companyID, model.ApplicantFilter{})
		if err != nil {
			return nil, storeErr(err, "listing applicants")
		}
		header, rows = applicantExportHeader, ApplicantRows(list)
	}

	return &Export{
		Filename: fmt.Sprintf("%s-%s-%s.csv", company.Slug, kind, now.UTC().Format(time.DateOnly)),
		Body:     []byte(EncodeCSV(header, rows)),
		Rows:     len(rows),
	}, nil
}

func JobRows(jobs []model.Job) [][]string {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			j.Title,
			deref(j.Location),
			string(j.EmploymentType),
			string(j.Status),
			strconv.Itoa(int(j.Applicants)),
			j.CreatedAt.UTC().Format(time.DateOnly),
		})
	}
	return rows
}

func ApplicantRows(list []model.Applicant) [][]string {
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			a.UserName,
			a.UserEmail,
			a.JobTitle,
			string(a.Status),
			a.Source,
			a.AppliedAt.UTC().Format(time.DateOnly),
		})
	}
	return rows
}

// EncodeCSV writes the header bare, then every value wrapped in double
// quotes with embedded quotes doubled. Lines end with \n.
func EncodeCSV(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
