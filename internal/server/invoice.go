package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/edcviet/invoicegen/internal/invoice/domain"
)

type setNumberRequest struct {
	Number string `json:"number"`
}

type setCurrencyRequest struct {
	Currency string `json:"currency"`
}

type setDiscountRequest struct {
	Discount string `json:"discount"`
}

// @Summary      Create Invoice Draft
// @Description  Open a new drafting session with seeded defaults
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body invoicedomain.CreateDraftRequest false "Create Draft Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices [post]
func (s *Server) CreateInvoice(c *gin.Context) {
	var req invoicedomain.CreateDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
	}

	draft, err := s.invoiceSvc.CreateDraft(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoicedomain.NewDraftView(draft)})
}

// @Summary      Get Invoice Draft
// @Description  Fetch a draft with display-formatted dates and amounts
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id} [get]
func (s *Server) GetInvoice(c *gin.Context) {
	draft, err := s.invoiceSvc.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoicedomain.NewDraftView(draft)})
}

// @Summary      Update Business Field
// @Description  Replace one issuer field on the draft
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        request body  invoicedomain.FieldEditRequest true "Field Edit Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/business [patch]
func (s *Server) UpdateBusiness(c *gin.Context) {
	req, ok := bindFieldEdit(c)
	if !ok {
		return
	}
	draft, err := s.invoiceSvc.UpdateBusiness(c.Request.Context(), c.Param("id"), invoicedomain.BusinessField(req.Field), req.Value)
	respondDraft(c, draft, err)
}

// @Summary      Update Client Field
// @Description  Replace one billed-to field on the draft
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        request body  invoicedomain.FieldEditRequest true "Field Edit Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/client [patch]
func (s *Server) UpdateClient(c *gin.Context) {
	req, ok := bindFieldEdit(c)
	if !ok {
		return
	}
	draft, err := s.invoiceSvc.UpdateClient(c.Request.Context(), c.Param("id"), invoicedomain.ClientField(req.Field), req.Value)
	respondDraft(c, draft, err)
}

// @Summary      Update Payment Field
// @Description  Replace one payment field; switching method keeps the other method's fields
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        request body  invoicedomain.FieldEditRequest true "Field Edit Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/payment [patch]
func (s *Server) UpdatePayment(c *gin.Context) {
	req, ok := bindFieldEdit(c)
	if !ok {
		return
	}
	draft, err := s.invoiceSvc.UpdatePayment(c.Request.Context(), c.Param("id"), invoicedomain.PaymentField(req.Field), req.Value)
	respondDraft(c, draft, err)
}

// @Summary      Update Delivery Field
// @Description  Replace one delivery field on the draft
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        request body  invoicedomain.FieldEditRequest true "Field Edit Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/delivery [patch]
func (s *Server) UpdateDelivery(c *gin.Context) {
	req, ok := bindFieldEdit(c)
	if !ok {
		return
	}
	draft, err := s.invoiceSvc.UpdateDelivery(c.Request.Context(), c.Param("id"), invoicedomain.DeliveryField(req.Field), req.Value)
	respondDraft(c, draft, err)
}

// @Summary      Set Invoice Number
// @Description  Replace the invoice number; a typed number is never overwritten
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        request body  setNumberRequest true "Set Number Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/number [put]
func (s *Server) SetNumber(c *gin.Context) {
	var req setNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	draft, err := s.invoiceSvc.SetNumber(c.Request.Context(), c.Param("id"), req.Number)
	respondDraft(c, draft, err)
}

// @Summary      Set Currency
// @Description  Re-tag the draft's currency; stored amounts are never rescaled
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        request body  setCurrencyRequest true "Set Currency Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/currency [put]
func (s *Server) SetCurrency(c *gin.Context) {
	var req setCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	draft, err := s.invoiceSvc.SetCurrency(c.Request.Context(), c.Param("id"), req.Currency)
	respondDraft(c, draft, err)
}

// @Summary      Set Dates
// @Description  Replace issue and due dates; stored in canonical YYYY-MM-DD form
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        request body  invoicedomain.SetDatesRequest true "Set Dates Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/dates [put]
func (s *Server) SetDates(c *gin.Context) {
	var req invoicedomain.SetDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	draft, err := s.invoiceSvc.SetDates(c.Request.Context(), c.Param("id"), req)
	respondDraft(c, draft, err)
}

// @Summary      Set Discount
// @Description  Replace the free-form discount; the total is recomputed and floored at zero
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        request body  setDiscountRequest true "Set Discount Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/discount [put]
func (s *Server) SetDiscount(c *gin.Context) {
	var req setDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	draft, err := s.invoiceSvc.SetDiscount(c.Request.Context(), c.Param("id"), req.Discount)
	respondDraft(c, draft, err)
}

// @Summary      Add Line Item
// @Description  Append one empty line item to the draft
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/items [post]
func (s *Server) AddItem(c *gin.Context) {
	draft, err := s.invoiceSvc.AddItem(c.Request.Context(), c.Param("id"))
	respondDraft(c, draft, err)
}

// @Summary      Update Line Item
// @Description  Replace one field of the line item at the given index
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Draft ID"
// @Param        index   path  int     true  "Item Index"
// @Param        request body  invoicedomain.FieldEditRequest true "Field Edit Request"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/items/{index} [patch]
func (s *Server) UpdateItem(c *gin.Context) {
	index, ok := bindItemIndex(c)
	if !ok {
		return
	}
	req, ok := bindFieldEdit(c)
	if !ok {
		return
	}
	draft, err := s.invoiceSvc.UpdateItem(c.Request.Context(), c.Param("id"), index, invoicedomain.ItemField(req.Field), req.Value)
	respondDraft(c, draft, err)
}

// @Summary      Remove Line Item
// @Description  Remove the line item at the given index; the last item is kept
// @Tags         invoices
// @Produce      json
// @Param        id     path  string  true  "Draft ID"
// @Param        index  path  int     true  "Item Index"
// @Success      200  {object}  invoicedomain.DraftView
// @Router       /api/invoices/{id}/items/{index} [delete]
func (s *Server) RemoveItem(c *gin.Context) {
	index, ok := bindItemIndex(c)
	if !ok {
		return
	}
	draft, err := s.invoiceSvc.RemoveItem(c.Request.Context(), c.Param("id"), index)
	respondDraft(c, draft, err)
}

// @Summary      Preview Invoice
// @Description  Render the draft as the HTML invoice document; assigns a number on first render
// @Tags         invoices
// @Produce      html
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {string}  string
// @Router       /api/invoices/{id}/preview [get]
func (s *Server) PreviewInvoice(c *gin.Context) {
	html, err := s.invoiceSvc.RenderHTML(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// @Summary      Download Invoice
// @Description  Export the draft as a PDF attachment named after the invoice number
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {string}  binary
// @Router       /api/invoices/{id}/download [get]
func (s *Server) DownloadInvoice(c *gin.Context) {
	result, err := s.invoiceSvc.ExportPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Bytes)
}

func bindFieldEdit(c *gin.Context) (invoicedomain.FieldEditRequest, bool) {
	var req invoicedomain.FieldEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return req, false
	}
	if strings.TrimSpace(req.Field) == "" {
		AbortWithError(c, newValidationError("field", "required", "field is required"))
		return req, false
	}
	return req, true
}

func bindItemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		AbortWithError(c, newValidationError("index", "invalid_index", "index must be an integer"))
		return 0, false
	}
	return index, true
}

func respondDraft(c *gin.Context, draft invoicedomain.Draft, err error) {
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoicedomain.NewDraftView(draft)})
}
