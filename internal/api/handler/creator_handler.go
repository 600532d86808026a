package handler

import (
	"strconv"

	"risingcreators/internal/api/dto"
	"risingcreators/internal/pkg/response"
	"risingcreators/internal/service"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	creatorSvc service.CreatorService
}

func NewCreatorHandler(creatorSvc service.CreatorService) *CreatorHandler {
	return &CreatorHandler{
		creatorSvc: creatorSvc,
	}
}

func (s *CreatorHandler) ListCreators(c *gin.Context) {
	var query dto.CreatorListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.creatorSvc.ListCreators(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *CreatorHandler) GetCreator(c *gin.Context) {
	creatorID, err := strconv.ParseUint(c.Param("creator_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	creator, err := s.creatorSvc.GetCreator(c.Request.Context(), creatorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, creator)
}

func (s *CreatorHandler) GetSnapshots(c *gin.Context) {
	creatorID, err := strconv.ParseUint(c.Param("creator_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	snapshots, err := s.creatorSvc.GetSnapshots(c.Request.Context(), creatorID, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, snapshots)
}

func (s *CreatorHandler) GetTrending(c *gin.Context) {
	creators, err := s.creatorSvc.GetTrending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, creators)
}
