package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/services"
)

type OfferHandler struct {
	Offers *services.OfferService
}

func NewOfferHandler(offers *services.OfferService) *OfferHandler {
	return &OfferHandler{Offers: offers}
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req dtos.OfferCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	offer, err := h.Offers.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func (h *OfferHandler) ListOffers(c *gin.Context) {
	offers, err := h.Offers.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	offer, err := h.Offers.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dtos.OfferUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	offer, err := h.Offers.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) CreateOnboarding(c *gin.Context) {
	var req dtos.OnboardingCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	onboarding, err := h.Offers.CreateOnboarding(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, onboarding)
}

func (h *OfferHandler) ListOnboarding(c *gin.Context) {
	records, err := h.Offers.ListOnboarding()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *OfferHandler) GetOnboarding(c *gin.Context) {
	candidateID, ok := pathID(c, "candidate_id")
	if !ok {
		return
	}

	onboarding, err := h.Offers.GetOnboarding(candidateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, onboarding)
}

func (h *OfferHandler) UpdateOnboarding(c *gin.Context) {
	candidateID, ok := pathID(c, "candidate_id")
	if !ok {
		return
	}

	var req dtos.OnboardingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	onboarding, err := h.Offers.UpdateOnboarding(candidateID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, onboarding)
}
