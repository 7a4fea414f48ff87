package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	"github.com/smallbiznis/billfold/internal/invoice/render"
	"github.com/smallbiznis/billfold/pkg/db/pagination"
)

type lineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type createInvoiceRequest struct {
	ClientID    string            `json:"client_id"`
	ClientName  string            `json:"client_name"`
	ClientEmail string            `json:"client_email"`
	IssueDate   string            `json:"issue_date"`
	NetTermDays *int              `json:"net_term_days"`
	LineItems   []lineItemRequest `json:"line_items"`
	TaxRate     float64           `json:"tax_rate"`
	Discount    float64           `json:"discount"`
	Notes       string            `json:"notes"`
	Terms       string            `json:"terms"`
	Currency    string            `json:"currency"`
}

type updateInvoiceRequest struct {
	ClientName  *string           `json:"client_name"`
	ClientEmail *string           `json:"client_email"`
	LineItems   []lineItemRequest `json:"line_items"`
	TaxRate     *float64          `json:"tax_rate"`
	Discount    *float64          `json:"discount"`
	Notes       *string           `json:"notes"`
	Terms       *string           `json:"terms"`
}

type sendInvoiceRequest struct {
	Channel string `json:"channel"`
}

type listInvoicesQuery struct {
	pagination.Pagination
	Status   string `form:"status"`
	ClientID string `form:"client_id"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// toLineItemInputs keeps nil as nil so a body without line_items does not
// replace the stored items with an empty set.
func toLineItemInputs(items []lineItemRequest) []invoicedomain.LineItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]invoicedomain.LineItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, invoicedomain.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return inputs
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var netTerm *invoicedomain.NetTerm
	if req.NetTermDays != nil {
		netTerm = &invoicedomain.NetTerm{NumberOfDays: *req.NetTermDays}
	}

	view, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateInvoiceRequest{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		IssueDate:   req.IssueDate,
		NetTerm:     netTerm,
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
	c.JSON(http.StatusCreated, view)
}

func (s *Server) ListInvoices(c *gin.Context) {
	var q listInvoicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	filter := invoicedomain.Filter{
		Status:   invoicedomain.Status(q.Status),
		ClientID: q.ClientID,
	}
	if q.DateFrom != "" {
		from, err := time.Parse("2006-01-02", q.DateFrom)
		if err != nil {
			AbortWithError(c, newValidationError("date_from", "invalid_date", "date_from must be YYYY-MM-DD"))
			return
		}
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := time.Parse("2006-01-02", q.DateTo)
		if err != nil {
			AbortWithError(c, newValidationError("date_to", "invalid_date", "date_to must be YYYY-MM-DD"))
			return
		}
		filter.DateTo = &to
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	start, end, info := q.Window(len(resp.Invoices))
	c.JSON(http.StatusOK, gin.H{
		"invoices":  resp.Invoices[start:end],
		"page_info": info,
	})
}

func (s *Server) GetInvoice(c *gin.Context) {
	view, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	view, err := s.invoiceSvc.Update(c.Request.Context(), c.Param("id"), invoicedomain.UpdateInvoiceRequest{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
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
	c.JSON(http.StatusOK, view)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) SendInvoice(c *gin.Context) {
	var req sendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Channel == "" {
		req.Channel = string(invoicedomain.SendChannelEmail)
	}

	view, err := s.invoiceSvc.Send(c.Request.Context(), c.Param("id"), invoicedomain.SendChannel(req.Channel))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) MarkInvoiceViewed(c *gin.Context) {
	view, err := s.invoiceSvc.MarkViewed(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) ListInvoicePayments(c *gin.Context) {
	resp, err := s.paymentSvc.ListByInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// InvoiceDocument renders the invoice as a shareable HTML document branded
// with the business profile.
func (s *Server) InvoiceDocument(c *gin.Context) {
	view, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	profile, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	items := make([]render.LineItemView, 0, len(view.LineItems))
	for _, item := range view.LineItems {
		items = append(items, render.LineItemView{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	html, err := s.renderer.RenderHTML(render.RenderInput{
		Brand: render.BrandView{
			BusinessName: profile.BusinessName,
			OwnerName:    profile.OwnerName,
			Email:        profile.Email,
			Phone:        profile.Phone,
			Address:      profile.Address,
			LogoURL:      profile.LogoURL,
			AccentColor:  profile.AccentColor,
			FontFamily:   profile.FontFamily,
		},
		Invoice: render.InvoiceView{
			Number:     view.Number,
			Status:     string(view.Status),
			IssueDate:  view.IssueDate,
			DueDate:    view.DueDate,
			Subtotal:   view.Subtotal,
			TaxAmount:  view.TaxAmount,
			Discount:   view.Discount,
			Total:      view.Total,
			AmountPaid: view.AmountPaid,
			AmountDue:  view.AmountDue,
			Currency:   view.Currency,
			Notes:      view.Notes,
			Terms:      view.Terms,
		},
		Customer: render.CustomerView{Name: view.ClientName, Email: view.ClientEmail},
		Items:    items,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
