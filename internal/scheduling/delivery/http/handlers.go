package http

import (
	"github.com/gin-gonic/gin"

	"temporal-intent-engine/pkg/response"
)

// Parse godoc
// @Summary     Parse scheduling text
// @Description Resolves French or English scheduling text into candidate dates, times, constraints and consistency checks.
// @Tags        Temporal
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text and optional context"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/temporal/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Conflicts godoc
// @Summary     Detect calendar conflicts
// @Description Checks candidate time slots against the configured calendar and returns the slots that overlap busy time.
// @Tags        Temporal
// @Accept      json
// @Produce     json
// @Param       body body conflictsReq true "Dates and slots to check"
// @Success     200  {object} conflictsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/temporal/conflicts [POST]
func (h *handler) Conflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConflictsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DetectConflicts(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DetectConflicts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newConflictsResp(output))
}

// Analyze godoc
// @Summary     Parse text and check its slots
// @Description Parses the text, plans candidate slots from the result and checks them against the calendar.
// @Tags        Temporal
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Text, optional context and granularity"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/temporal/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}
