package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
)

// OfferService manages offers and the onboarding checklist that follows an
// accepted offer.
type OfferService struct {
	DB *gorm.DB
}

func NewOfferService(db *gorm.DB) *OfferService {
	return &OfferService{DB: db}
}

func (s *OfferService) Create(req *dtos.OfferCreationRequest) (*models.Offer, error) {
	if err := s.requireCandidate(req.CandidateID); err != nil {
		return nil, err
	}

	offer := models.Offer{
		CandidateID:           req.CandidateID,
		SalaryOffered:         req.SalaryOffered,
		StartDate:             req.StartDate,
		ProbationPeriodMonths: req.ProbationPeriodMonths,
		AdditionalTerms:       req.AdditionalTerms,
		Status:                models.OfferDraft,
	}
	if err := s.DB.Create(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *OfferService) List() ([]models.Offer, error) {
	var offers []models.Offer
	if err := s.DB.Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *OfferService) Get(id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := s.DB.First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("offer not found")
		}
		return nil, err
	}
	return &offer, nil
}

func (s *OfferService) Update(id uint, req *dtos.OfferUpdateRequest) (*models.Offer, error) {
	offer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		offer.Status = *req.Status
	}
	if req.SalaryOffered != nil {
		offer.SalaryOffered = *req.SalaryOffered
	}
	if req.StartDate != nil {
		offer.StartDate = *req.StartDate
	}
	if req.ProbationPeriodMonths != nil {
		offer.ProbationPeriodMonths = *req.ProbationPeriodMonths
	}
	if req.AdditionalTerms != nil {
		offer.AdditionalTerms = *req.AdditionalTerms
	}

	if err := s.DB.Save(offer).Error; err != nil {
		return nil, err
	}
	return offer, nil
}

// CreateOnboarding opens the fixed checklist for a candidate. One record per
// candidate; a second create reports the conflict instead of duplicating.
func (s *OfferService) CreateOnboarding(req *dtos.OnboardingCreationRequest) (*models.Onboarding, error) {
	if err := s.requireCandidate(req.CandidateID); err != nil {
		return nil, err
	}

	var existing int64
	if err := s.DB.Model(&models.Onboarding{}).
		Where("candidate_id = ?", req.CandidateID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apierr.Conflict("onboarding already exists for candidate")
	}

	onboarding := models.Onboarding{
		CandidateID: req.CandidateID,
		Checklist:   models.NewChecklist(),
	}
	if err := s.DB.Create(&onboarding).Error; err != nil {
		return nil, err
	}
	return &onboarding, nil
}

func (s *OfferService) ListOnboarding() ([]models.Onboarding, error) {
	var records []models.Onboarding
	if err := s.DB.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetOnboarding looks up the record by candidate, not by its own id; the
// checklist is one-per-candidate and the API is keyed that way.
func (s *OfferService) GetOnboarding(candidateID uint) (*models.Onboarding, error) {
	var onboarding models.Onboarding
	if err := s.DB.Where("candidate_id = ?", candidateID).First(&onboarding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("onboarding not found")
		}
		return nil, err
	}
	return &onboarding, nil
}

// UpdateOnboarding merges checklist item flips and metric updates into the
// record. Unknown checklist keys are ignored rather than invented.
func (s *OfferService) UpdateOnboarding(candidateID uint, req *dtos.OnboardingUpdateRequest) (*models.Onboarding, error) {
	onboarding, err := s.GetOnboarding(candidateID)
	if err != nil {
		return nil, err
	}

	if len(req.Checklist) > 0 {
		if onboarding.Checklist == nil {
			onboarding.Checklist = models.NewChecklist()
		}
		for key, done := range req.Checklist {
			if _, known := onboarding.Checklist[key]; known {
				onboarding.Checklist[key] = done
			}
		}
	}
	if req.CallsMade != nil {
		onboarding.CallsMade = *req.CallsMade
	}
	if req.MeetingsScheduled != nil {
		onboarding.MeetingsScheduled = *req.MeetingsScheduled
	}
	if req.DealsInPipeline != nil {
		onboarding.DealsInPipeline = *req.DealsInPipeline
	}
	if req.Revenue != nil {
		onboarding.Revenue = *req.Revenue
	}

	if err := s.DB.Save(onboarding).Error; err != nil {
		return nil, err
	}
	return onboarding, nil
}

func (s *OfferService) requireCandidate(id uint) error {
	var count int64
	if err := s.DB.Model(&models.Candidate{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apierr.NotFound("candidate not found")
	}
	return nil
}
