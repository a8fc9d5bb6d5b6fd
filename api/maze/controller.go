package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/maze/generator"
	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze generation and solving operations.
type MazeController struct {
	mazeManager i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(mm i.MazeManager) (*MazeController, error) {
	if mm == nil {
		return nil, errors.New("maze controller requires a maze manager")
	}
	return &MazeController{mazeManager: mm}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.POST("/trace", mc.generationTrace)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/compare", mc.compare)
		mazes.POST("/:ID/solve", mc.solve)
		mazes.GET("/:ID/solve/trace", mc.solveTrace)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.DELETE("/:ID", mc.remove)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeManager.Create(ctx, request.Width, request.Height, request.Algorithm, request.Seed)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// byID retrieves a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := mc.pathID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeManager.ByID(id)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// solve runs one pathfinding algorithm on a stored maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := mc.pathID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := mc.mazeManager.Solve(ctx, id, request.Algorithm)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// compare runs every pathfinding algorithm on a stored maze.
func (mc *MazeController) compare(ctx *gin.Context) {
	id, ok := mc.pathID(ctx)
	if !ok {
		return
	}

	results, err := mc.mazeManager.Compare(ctx, id)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// generationTrace returns the full step trace of a traced generation.
func (mc *MazeController) generationTrace(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	steps, seed, err := mc.mazeManager.GenerationTrace(request.Width, request.Height, request.Algorithm, request.Seed)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &GenerationTraceResponse{Seed: seed, Steps: steps})
}

// solveTrace returns the full step trace of a traced search.
func (mc *MazeController) solveTrace(ctx *gin.Context) {
	id, ok := mc.pathID(ctx)
	if !ok {
		return
	}

	algorithm := ctx.DefaultQuery("algorithm", pathfind.BFS)
	steps, err := mc.mazeManager.SolveTrace(id, algorithm)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &SolveTraceResponse{Algorithm: algorithm, Steps: steps})
}

// remove deletes a stored maze.
func (mc *MazeController) remove(ctx *gin.Context) {
	id, ok := mc.pathID(ctx)
	if !ok {
		return
	}

	if err := mc.mazeManager.Delete(ctx, id); err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (mc *MazeController) pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// fail maps service and engine errors onto HTTP statuses.
func (mc *MazeController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, generator.ErrUnknownAlgorithm),
		errors.Is(err, pathfind.ErrUnknownAlgorithm):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}
