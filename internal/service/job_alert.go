package service

import (
	"context"
	"strings"

	"hirely.app/api/common/id"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

type JobAlertInput struct {
	Keywords       string
	Location       *string
	EmploymentType *model.EmploymentType
	Frequency      model.AlertFrequency
}

type JobAlertPatch struct {
	Keywords       *string
	Location       *string
	EmploymentType *model.EmploymentType
	Frequency      *model.AlertFrequency
	Active         *bool
}

type JobAlertService interface {
	List(ctx context.Context, userID int64) ([]model.JobAlert, error)
	Create(ctx context.Context, userID int64, in JobAlertInput) (*model.JobAlert, error)
	Update(ctx context.Context, userID, alertID int64, patch JobAlertPatch) (*model.JobAlert, error)
	Delete(ctx context.Context, userID, alertID int64) error
}

type jobAlertService struct {
	alerts store.JobAlertStore
}

func NewJobAlertService(alerts store.JobAlertStore) JobAlertService {
	return &jobAlertService{alerts: alerts}
}

func (s *jobAlertService) List(ctx context.Context, userID int64) ([]model.JobAlert, error) {
	list, err := s.alerts.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "listing job alerts")
	}
	return list, nil
}

func (s *jobAlertService) Create(ctx context.Context, userID int64, in JobAlertInput) (*model.JobAlert, error) {
	if in.Frequency == "" {
		in.Frequency = model.AlertDaily
	}
	alert := &model.JobAlert{
		ID:             id.New(),
		UserID:         userID,
		Keywords:       strings.TrimSpace(in.Keywords),
		Location:       patchText(nil, in.Location),
		EmploymentType: in.EmploymentType,
		Frequency:      in.Frequency,
		Active:         true,
	}
	if err := validateAlert(alert); err != nil {
		return nil, err
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, storeErr(err, "creating job alert")
	}
	return alert, nil
}

func (s *jobAlertService) Update(ctx context.Context, userID, alertID int64, patch JobAlertPatch) (*model.JobAlert, error) {
	alert, err := s.alerts.GetForUser(ctx, alertID, userID)
	if err != nil {
		return nil, storeErr(err, "getting job alert")
	}
	if patch.Keywords != nil {
		alert.Keywords = strings.TrimSpace(*patch.Keywords)
	}
	alert.Location = patchText(alert.Location, patch.Location)
	if patch.EmploymentType != nil {
		if *patch.EmploymentType == "" {
			alert.EmploymentType = nil
		} else {
			alert.EmploymentType = patch.EmploymentType
		}
	}
	if patch.Frequency != nil {
		alert.Frequency = *patch.Frequency
	}
	if patch.Active != nil {
		alert.Active = *patch.Active
	}
	if err := validateAlert(alert); err != nil {
		return nil, err
	}
	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, storeErr(err, "updating job alert")
	}
	return alert, nil
}

func (s *jobAlertService) Delete(ctx context.Context, userID, alertID int64) error {
	return storeErr(s.alerts.Delete(ctx, alertID, userID), "deleting job alert")
}

func validateAlert(a *model.JobAlert) error {
	if a.Keywords == "" {
		return invalid("keywords", "is required")
	}
	if !a.Frequency.Valid() {
		return invalid("frequency", "must be daily or weekly")
	}
	if a.EmploymentType != nil && !a.EmploymentType.Valid() {
		return invalid("employment_type", "unknown employment type")
	}
	return nil
}
