package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/bulkfile"
	"github.com/rocky2015aaa/bookshop/internal/model"
	"github.com/rocky2015aaa/bookshop/internal/service"
	"github.com/rocky2015aaa/bookshop/internal/validation"
)

type InventoryHandler struct {
	adjustments *service.AdjustmentService
	importer    *service.ImportService
	balances    *service.BalanceService
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{
		adjustments: service.NewAdjustmentService(db),
		importer:    service.NewImportService(db),
		balances:    service.NewBalanceService(db),
	}
}

// AdjustRequest carries the magnitude of a stock movement. The remove
// endpoint negates it before the service runs, so the gate checks the
// magnitude as supplied by the caller.
type AdjustRequest struct {
	Barcode  string `json:"barcode" binding:"required,min=1"`
	Quantity int    `json:"quantity"`
}

func (r AdjustRequest) Validate() error {
	if r.Quantity <= 0 {
		return apperr.New(apperr.InvalidRequest, "quantity must be greater than 0")
	}
	return nil
}

func (h *InventoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	leftover := r.Group("/leftover")
	{
		leftover.POST("/add", h.AddInventory)
		leftover.POST("/remove", h.RemoveInventory)
		leftover.POST("/bulk", h.BulkImport)
	}
	r.GET("/history", h.GetHistory)
}

// AddInventory godoc
// @Summary      Receive stock
// @Description  Append one positive inventory entry for the book with the given barcode, dated today
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        payload  body      AdjustRequest              true  "Barcode and quantity"
// @Success      201      {object}  Envelope
// @Failure      404      {object}  validation.ErrorResponse   "Unknown barcode"
// @Failure      422      {object}  validation.ErrorResponse   "Invalid quantity"
// @Failure      500      {object}  validation.ErrorResponse   "Storage failure"
// @Router       /leftover/add [post]
func (h *InventoryHandler) AddInventory(c *gin.Context) {
	var req AdjustRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	adjustment, err := h.adjustments.Adjust(c.Request.Context(), req.Barcode, req.Quantity)
	if err != nil {
		writeError(c, "add_inventory", err)
		return
	}

	respond(c, http.StatusCreated, adjustment, "Inventory created successfully")
}

// RemoveInventory godoc
// @Summary      Remove stock
// @Description  Append one negative inventory entry; rejected when the current total would go negative
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        payload  body      AdjustRequest              true  "Barcode and quantity to remove"
// @Success      201      {object}  Envelope
// @Failure      404      {object}  validation.ErrorResponse   "Unknown barcode"
// @Failure      409      {object}  validation.ErrorResponse   "Insufficient stock"
// @Failure      422      {object}  validation.ErrorResponse   "Invalid quantity"
// @Failure      500      {object}  validation.ErrorResponse   "Storage failure"
// @Router       /leftover/remove [post]
func (h *InventoryHandler) RemoveInventory(c *gin.Context) {
	var req AdjustRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	adjustment, err := h.adjustments.Adjust(c.Request.Context(), req.Barcode, -req.Quantity)
	if err != nil {
		writeError(c, "remove_inventory", err)
		return
	}

	respond(c, http.StatusCreated, adjustment, "Inventory created successfully")
}

// BulkImport godoc
// @Summary      Bulk import stock movements
// @Description  Apply inventory entries from an uploaded .txt or .xlsx file, all-or-nothing
// @Tags         inventory
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Inventory file (.txt tagged format or two-column .xlsx)"
// @Success      201   {object}  Envelope
// @Failure      404   {object}  validation.ErrorResponse   "Barcode with no quantity"
// @Failure      409   {object}  validation.ErrorResponse   "Unknown barcode"
// @Failure      422   {object}  validation.ErrorResponse   "Non-numeric quantity or bad file"
// @Failure      500   {object}  validation.ErrorResponse   "Storage failure"
// @Router       /leftover/bulk [post]
func (h *InventoryHandler) BulkImport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, "bulk_import", apperr.Wrap(apperr.InvalidRequest, err,
			"missing multipart file field %q", "file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, "bulk_import", apperr.Wrap(apperr.InvalidRequest, err,
			"failed to open uploaded file"))
		return
	}
	defer file.Close()

	rows, err := bulkfile.Parse(fileHeader.Filename, file)
	if err != nil {
		writeError(c, "bulk_import", err)
		return
	}

	applied, err := h.importer.Import(c.Request.Context(), rows)
	if err != nil {
		writeError(c, "bulk_import", err)
		return
	}

	respond(c, http.StatusCreated, applied, "Inventory created successfully")
}

// HistoryRequest is the validated query of GET /history.
type HistoryRequest struct {
	Start string
	End   string
	Book  *uint
}

func (r HistoryRequest) Validate() error {
	start, err := model.ParseDate(r.Start)
	if err != nil {
		return apperr.New(apperr.InvalidRequest,
			"invalid date %q: must be in YYYY-MM-DD format", r.Start)
	}
	end, err := model.ParseDate(r.End)
	if err != nil {
		return apperr.New(apperr.InvalidRequest,
			"invalid date %q: must be in YYYY-MM-DD format", r.End)
	}
	if end.Before(start) {
		return apperr.New(apperr.InvalidRequest, "end must not be earlier than start")
	}
	return nil
}

// GetHistory godoc
// @Summary      Stock balance history
// @Description  Report start balance, end balance and the ordered movement history per book over a date range; dates default to today
// @Tags         inventory
// @Produce      json
// @Param        start  query     string  false  "Start date YYYY-MM-DD"
// @Param        end    query     string  false  "End date YYYY-MM-DD"
// @Param        book   query     int     false  "Book ID filter"
// @Success      200    {object}  Envelope
// @Failure      404    {object}  validation.ErrorResponse   "Unknown book"
// @Failure      422    {object}  validation.ErrorResponse   "Bad date range"
// @Failure      500    {object}  validation.ErrorResponse   "Storage failure"
// @Router       /history [get]
func (h *InventoryHandler) GetHistory(c *gin.Context) {
	req := HistoryRequest{
		Start: c.DefaultQuery("start", model.Today()),
		End:   c.DefaultQuery("end", model.Today()),
	}

	if s := c.Query("book"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			writeError(c, "get_history", apperr.New(apperr.InvalidRequest,
				"book id must be an integer"))
			return
		}
		bookID := uint(id)
		req.Book = &bookID
	}

	if err := req.Validate(); err != nil {
		writeError(c, "get_history", err)
		return
	}

	balances, err := h.balances.History(c.Request.Context(), req.Book, req.Start, req.End)
	if err != nil {
		writeError(c, "get_history", err)
		return
	}

	respond(c, http.StatusOK, balances, "Book inventory history loaded successfully")
}
