package locationsController

import (
	"log/slog"
	"net/http"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http/controllers/common"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/services/locations"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	Log *slog.Logger
}

func New(log *slog.Logger) *Controller {
	return &Controller{Log: log}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/locations", c.search)
		v1.GET("/locations/:id", c.get)
	}
}

// search подсказки для поля "место рождения", без q отдаёт весь справочник
func (c *Controller) search(ctx *gin.Context) {
	term, ok := ctx.GetQuery("q")
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"locations": locations.All()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"locations": locations.Search(term)})
}

func (c *Controller) get(ctx *gin.Context) {
	loc, err := locations.ByID(ctx.Param("id"))
	if err != nil {
		common.WriteError(ctx, c.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, loc)
}
