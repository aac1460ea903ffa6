package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ilhamhanifan/maze-solver/infrastruture/repo"
	"github.com/ilhamhanifan/maze-solver/maze"
	"github.com/ilhamhanifan/maze-solver/service"
	"github.com/ilhamhanifan/maze-solver/service/i"
)

const defaultListLimit = 20

// MazeController serves maze generation and lookup.
type MazeController struct {
	mazeService i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeGenerator) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{mazeService: ms}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.list)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/ascii", mc.ascii)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazeService.Generate(ctx.Request.Context(), i.GenerateRequest{
		Cols: request.Cols,
		Rows: request.Rows,
		Seed: request.Seed,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(m))
}

// byID returns a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	m, err := mc.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(m))
}

// ascii returns a stored maze drawn as text with its path marked.
func (mc *MazeController) ascii(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	art, err := mc.mazeService.Render(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, art)
}

// list returns the most recent mazes.
func (mc *MazeController) list(ctx *gin.Context) {
	limit := int64(defaultListLimit)
	if raw := ctx.Query("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	mazes, err := mc.mazeService.Recent(ctx.Request.Context(), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]*MazeResponse, 0, len(mazes))
	for _, m := range mazes {
		response = append(response, newMazeResponse(m))
	}
	ctx.JSON(http.StatusOK, response)
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDimensionTooLarge):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, repo.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
