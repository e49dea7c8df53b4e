package usersController

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http/controllers/common"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/usecase"
	"github.com/gin-gonic/gin"
)

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
	users := router.Group("/api/v1/users")
	{
		users.POST("", c.create)
		users.GET("/:id", c.get)
		users.PUT("/:id/birth-data", c.saveBirthData)

		users.GET("/:id/chart", c.getChart)
		users.POST("/:id/chart/recalculate", c.recalculate)
		users.GET("/:id/chart/export", c.exportChart)
		users.GET("/:id/chart/history", c.chartHistory)

		users.GET("/:id/horoscope", c.horoscope)
		users.GET("/:id/wealth-map", c.wealthMap)
		users.POST("/:id/compare", c.compare)

		users.GET("/:id/preferences", c.getPreferences)
		users.PATCH("/:id/preferences", c.updatePreferences)
	}
}

type CreateUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateUserRequest
	if err := common.BindJSON(ctx, &req); err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	user, err := c.AstroService.CreateUser(ctx.Request.Context(), req.Email, req.DisplayName)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

func (c *Controller) get(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	user, err := c.AstroService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *Controller) saveBirthData(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

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

	chart, err := c.AstroService.SaveBirthData(ctx.Request.Context(), id, input, domain.ChartSourceAPI)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, chart)
}

func (c *Controller) getChart(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	chart, err := c.AstroService.GetChart(ctx.Request.Context(), id)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, chart)
}

func (c *Controller) recalculate(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	chart, err := c.AstroService.RecalculateChart(ctx.Request.Context(), id, domain.ChartSourceAPI)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, chart)
}

func (c *Controller) exportChart(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	url, err := c.AstroService.GetChartExportURL(ctx.Request.Context(), id)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

// chartHistory ?limit=N, по умолчанию 20
func (c *Controller) chartHistory(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			common.WriteError(ctx, c.Log, fmt.Errorf("limit %q: %w", raw, domain.ErrInvalidInput))
			return
		}
	}

	page, err := c.AstroService.GetChartHistory(ctx.Request.Context(), id, limit)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// horoscope ?date=YYYY-MM-DD, по умолчанию сегодня
func (c *Controller) horoscope(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	var day time.Time
	if raw := ctx.Query("date"); raw != "" {
		day, err = domain.ParseBirthDate(raw)
		if err != nil {
			common.WriteError(ctx, c.Log, err)
			return
		}
	}

	h, err := c.AstroService.GetHoroscope(ctx.Request.Context(), id, day)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, h)
}

func (c *Controller) wealthMap(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	wm, err := c.AstroService.GetWealthMap(ctx.Request.Context(), id)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, wm)
}

func (c *Controller) compare(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	var req common.BirthDataRequest
	if err := common.BindJSON(ctx, &req); err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	other, err := req.ToInput()
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	result, err := c.AstroService.CompareCharts(ctx.Request.Context(), id, other)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *Controller) getPreferences(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	prefs, err := c.AstroService.GetPreferences(ctx.Request.Context(), id)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, prefs)
}

func (c *Controller) updatePreferences(ctx *gin.Context) {
	id, err := common.UserID(ctx)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	var patch domain.PreferencesPatch
	if err := common.BindJSON(ctx, &patch); err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}

	prefs, err := c.AstroService.UpdatePreferences(ctx.Request.Context(), id, patch)
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, prefs)
}
