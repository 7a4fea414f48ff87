package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	estimatedomain "github.com/smallbiznis/billfold/internal/estimate/domain"
	"github.com/smallbiznis/billfold/pkg/db/pagination"
)

type createEstimateRequest struct {
	ClientID    string            `json:"client_id"`
	ClientName  string            `json:"client_name"`
	ClientEmail string            `json:"client_email"`
	IssueDate   string            `json:"issue_date"`
	ExpiryDate  string            `json:"expiry_date"`
	LineItems   []lineItemRequest `json:"line_items"`
	TaxRate     float64           `json:"tax_rate"`
	Discount    float64           `json:"discount"`
	Notes       string            `json:"notes"`
	Terms       string            `json:"terms"`
	Currency    string            `json:"currency"`
}

type updateEstimateRequest struct {
	ClientName  *string           `json:"client_name"`
	ClientEmail *string           `json:"client_email"`
	ExpiryDate  *string           `json:"expiry_date"`
	LineItems   []lineItemRequest `json:"line_items"`
	TaxRate     *float64          `json:"tax_rate"`
	Discount    *float64          `json:"discount"`
	Notes       *string           `json:"notes"`
	Terms       *string           `json:"terms"`
}

type listEstimatesQuery struct {
	pagination.Pagination
	Status string `form:"status"`
	Search string `form:"search"`
}

func (s *Server) CreateEstimate(c *gin.Context) {
	var req createEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	est, err := s.estimateSvc.Create(c.Request.Context(), estimatedomain.CreateEstimateRequest{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		IssueDate:   req.IssueDate,
		ExpiryDate:  req.ExpiryDate,
		LineItems:   toLineItemInputs(req.LineItems),
		TaxRate:     req.TaxRate,
		Discount:    req.Discount,
		Notes:       req.Notes,
		Terms:       req.Terms,
		Currency:    req.Currency,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, est)
}

func (s *Server) ListEstimates(c *gin.Context) {
	var q listEstimatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.estimateSvc.List(c.Request.Context(), estimatedomain.Filter{
		Status: estimatedomain.Status(q.Status),
		Search: q.Search,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	start, end, info := q.Window(len(resp.Estimates))
	c.JSON(http.StatusOK, gin.H{
		"estimates": resp.Estimates[start:end],
		"page_info": info,
	})
}

func (s *Server) GetEstimate(c *gin.Context) {
	est, err := s.estimateSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

func (s *Server) UpdateEstimate(c *gin.Context) {
	var req updateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	est, err := s.estimateSvc.Update(c.Request.Context(), c.Param("id"), estimatedomain.UpdateEstimateRequest{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ExpiryDate:  req.ExpiryDate,
		LineItems:   toLineItemInputs(req.LineItems),
		TaxRate:     req.TaxRate,
		Discount:    req.Discount,
		Notes:       req.Notes,
		Terms:       req.Terms,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

func (s *Server) DeleteEstimate(c *gin.Context) {
	if err := s.estimateSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) SendEstimate(c *gin.Context) {
	est, err := s.estimateSvc.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

func (s *Server) AcceptEstimate(c *gin.Context) {
	est, err := s.estimateSvc.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

func (s *Server) RejectEstimate(c *gin.Context) {
	est, err := s.estimateSvc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

func (s *Server) ExpireEstimate(c *gin.Context) {
	est, err := s.estimateSvc.MarkExpired(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}
