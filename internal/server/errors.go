package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/smallbiznis/billfold/internal/client/domain"
	estimatedomain "github.com/smallbiznis/billfold/internal/estimate/domain"
	expensedomain "github.com/smallbiznis/billfold/internal/expense/domain"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	notificationdomain "github.com/smallbiznis/billfold/internal/notification/domain"
	paymentdomain "github.com/smallbiznis/billfold/internal/payment/domain"
	settingsdomain "github.com/smallbiznis/billfold/internal/settings/domain"
)

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e apiError) Error() string { return e.Code }

func invalidRequestError() apiError {
	return apiError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "request body could not be parsed",
	}
}

func newValidationError(field, code, message string) apiError {
	return apiError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Field:   field,
		Message: message,
	}
}

var notFoundErrors = []error{
	invoicedomain.ErrInvoiceNotFound,
	estimatedomain.ErrEstimateNotFound,
	clientdomain.ErrClientNotFound,
	expensedomain.ErrExpenseNotFound,
	notificationdomain.ErrNotificationNotFound,
}

var badRequestErrors = []error{
	invoicedomain.ErrInvalidInvoiceID,
	invoicedomain.ErrInvalidClient,
	invoicedomain.ErrInvalidIssueDate,
	invoicedomain.ErrInvalidLineItem,
	invoicedomain.ErrInvalidChannel,
	estimatedomain.ErrInvalidEstimateID,
	estimatedomain.ErrInvalidClient,
	estimatedomain.ErrInvalidIssueDate,
	estimatedomain.ErrInvalidExpiryDate,
	estimatedomain.ErrInvalidLineItem,
	paymentdomain.ErrInvalidInvoiceID,
	paymentdomain.ErrInvalidAmount,
	paymentdomain.ErrInvalidMethod,
	paymentdomain.ErrInvalidDate,
	clientdomain.ErrInvalidClientID,
	clientdomain.ErrInvalidName,
	clientdomain.ErrInvalidEmail,
	clientdomain.ErrInvalidPhone,
	expensedomain.ErrInvalidExpenseID,
	expensedomain.ErrInvalidCategory,
	expensedomain.ErrInvalidAmount,
	expensedomain.ErrInvalidDate,
	settingsdomain.ErrInvalidEmail,
	settingsdomain.ErrInvalidCurrency,
	settingsdomain.ErrInvalidTaxRate,
	notificationdomain.ErrInvalidType,
}

// AbortWithError writes the error envelope for err with the right status.
// Unknown errors become opaque 500s.
func AbortWithError(c *gin.Context, err error) {
	var apiErr apiError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	for _, known := range notFoundErrors {
		if errors.Is(err, known) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": apiError{
				Code:    known.Error(),
				Message: "resource not found",
			}})
			return
		}
	}
	for _, known := range badRequestErrors {
		if errors.Is(err, known) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": apiError{
				Code:    known.Error(),
				Message: "invalid input",
			}})
			return
		}
	}
	if errors.Is(err, estimatedomain.ErrInvalidTransition) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": apiError{
			Code:    estimatedomain.ErrInvalidTransition.Error(),
			Message: "status transition not allowed",
		}})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apiError{
		Code:    "internal_error",
		Message: "something went wrong",
	}})
}
