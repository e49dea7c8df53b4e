package chartsController

import (
	"log/slog"
	"net/http"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http/controllers/common"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/usecase"
	"github.com/gin-gonic/gin"
)

// Controller расчёты без привязки к профилю
type Controller struct {
	AstroService usecase.IAstroService
	Log          *slog.Logger
}

func New(astroService usecase.IAstroService, log *slog.Logger) *Controller {
	return &Controller{
		AstroService: astroService,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/charts/calculate", c.calculate)
		v1.GET("/sky/current", c.currentSky)
	}
}

func (c *Controller) calculate(ctx *gin.Context) {
	var req common.BirthDataRequest
	if err := common.BindJSON(ctx, &req); err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	chart, err := c.AstroService.CalculateChart(ctx.Request.Context(), input)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, chart)
}

func (c *Controller) currentSky(ctx *gin.Context) {
	chart, err := c.AstroService.GetCurrentPositions(ctx.Request.Context())
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, chart)
}
