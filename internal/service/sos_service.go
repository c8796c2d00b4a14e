package service

import (
	"context"
	"log"
	"strings"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/notify"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/repository"
)

type SOSService interface {
	RaiseSOS(ctx context.Context, session models.Session, req *models.RaiseSOSRequest) (*models.SOSAlert, error)
}

type sosService struct {
	driverRepo repository.DriverRepository
	sosRepo    repository.SOSRepository
	publisher  notify.SOSPublisher
}

func NewSOSService(
	driverRepo repository.DriverRepository,
	sosRepo repository.SOSRepository,
	publisher notify.SOSPublisher,
) SOSService {
	return &sosService{
		driverRepo: driverRepo,
		sosRepo:    sosRepo,
		publisher:  publisher,
	}
}

func (s *sosService) RaiseSOS(ctx context.Context, session models.Session, req *models.RaiseSOSRequest) (*models.SOSAlert, error) {
	driver, err := resolveDriver(ctx, s.driverRepo, session)
	if err != nil {
		return nil, err
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = models.SOSDefaultLocation
	}

	alert := &models.SOSAlert{
		DriverID: driver.ID,
		Location: location,
	}

	if err := s.sosRepo.Create(ctx, alert); err != nil {
		return nil, err
	}

	// Fire-and-forget: the stored alert is the record of truth.
	if s.publisher != nil {
		if err := s.publisher.PublishSOS(ctx, alert); err != nil {
			log.Printf("failed to publish sos alert %s for driver %s: %v", alert.ID, driver.ID, err)
		}
	}

	return alert, nil
}
