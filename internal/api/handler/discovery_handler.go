package handler

import (
	"strconv"

	"risingcreators/internal/api/dto"
	"risingcreators/internal/pkg/response"
	"risingcreators/internal/service"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	discoverySvc service.DiscoveryService
}

func NewDiscoveryHandler(discoverySvc service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoverySvc: discoverySvc,
	}
}

func (s *DiscoveryHandler) CreateRule(c *gin.Context) {
	var req dto.RuleDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	rule, err := s.discoverySvc.CreateRule(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rule)
}

func (s *DiscoveryHandler) UpdateRule(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("rule_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	var req dto.RuleDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	rule, err := s.discoverySvc.UpdateRule(c.Request.Context(), ruleID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rule)
}

func (s *DiscoveryHandler) DeleteRule(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("rule_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err = s.discoverySvc.DeleteRule(c.Request.Context(), ruleID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *DiscoveryHandler) GetRule(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("rule_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	rule, err := s.discoverySvc.GetRule(c.Request.Context(), ruleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rule)
}

func (s *DiscoveryHandler) ListRules(c *gin.Context) {
	rules, err := s.discoverySvc.ListRules(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rules)
}

// RunRule 手动触发一条规则，返回本次 {found, imported} 汇总
func (s *DiscoveryHandler) RunRule(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("rule_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	summary, err := s.discoverySvc.RunRule(c.Request.Context(), ruleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
