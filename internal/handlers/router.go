package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps bundles everything the router needs.
type Deps struct {
	Jobs       *JobHandler
	Candidates *CandidateHandler
	Screen     *ScreenHandler
	Offers     *OfferHandler
	Stats      *StatsHandler
}

// NewRouter wires the full /api/v1 surface.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", Health)
		api.GET("/stats", deps.Stats.Funnel)

		api.POST("/jobs/generate", deps.Jobs.GenerateJob)
		api.POST("/jobs", deps.Jobs.CreateJob)
		api.GET("/jobs", deps.Jobs.ListJobs)
		api.GET("/jobs/:id", deps.Jobs.GetJob)

		api.POST("/candidates", deps.Candidates.CreateCandidate)
		api.GET("/candidates", deps.Candidates.ListCandidates)
		api.GET("/candidates/:id", deps.Candidates.GetCandidate)
		api.PATCH("/candidates/:id/stage", deps.Candidates.UpdateStage)

		screen := api.Group("/screen")
		{
			screen.POST("/screening", deps.Screen.CheckScreening)
			screen.GET("/cognitive/questions", deps.Screen.CognitiveQuestions)
			screen.POST("/cognitive", deps.Screen.GradeCognitive)
			screen.GET("/personality/questions", deps.Screen.PersonalityQuestions)
			screen.POST("/personality", deps.Screen.AggregatePersonality)
			screen.GET("/sales/scenarios", deps.Screen.SalesScenarios)
			screen.POST("/sales/evaluate", deps.Screen.EvaluateSales)
			screen.POST("/resume", deps.Screen.ScoreResume)
			screen.POST("/motivation", deps.Screen.ClassifyMotivation)
			screen.POST("/chat", deps.Screen.Chat)
			screen.POST("/interview-guide", deps.Screen.InterviewGuide)
		}

		api.POST("/offers", deps.Offers.CreateOffer)
		api.GET("/offers", deps.Offers.ListOffers)
		api.GET("/offers/:id", deps.Offers.GetOffer)
		api.PATCH("/offers/:id", deps.Offers.UpdateOffer)

		api.POST("/onboarding", deps.Offers.CreateOnboarding)
		api.GET("/onboarding", deps.Offers.ListOnboarding)
		api.GET("/onboarding/:candidate_id", deps.Offers.GetOnboarding)
		api.PATCH("/onboarding/:candidate_id", deps.Offers.UpdateOnboarding)
	}

	return r
}
