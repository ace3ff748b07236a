package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	portfolioUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/portfolio"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

// PortfolioHandler serves the public, unauthenticated site data. The
// owner is fixed at startup since the site presents a single person.
type PortfolioHandler struct {
	useCase *portfolioUC.PortfolioUseCase
	ownerID uuid.UUID
	logger  logger.Logger
}

func NewPortfolioHandler(uc *portfolioUC.PortfolioUseCase, ownerID uuid.UUID, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		useCase: uc,
		ownerID: ownerID,
		logger:  log,
	}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	view, err := h.useCase.GetView(c.Request.Context(), h.ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *PortfolioHandler) GetPortfolioProjects(c *gin.Context) {
	category := c.Query("category")

	cards, err := h.useCase.ListProjects(c.Request.Context(), h.ownerID, category)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cards)
}
