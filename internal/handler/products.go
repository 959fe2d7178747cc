package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// changedByPlaceholder stands in for a real caller identity until an auth
// layer exists upstream; the service only ever sees the injected value.
const changedByPlaceholder = "admin"

type ProductsHandler struct {
	svc       service.ProductService
	uploadDir string
}

func NewProductsHandler(svc service.ProductService, uploadDir string) *ProductsHandler {
	return &ProductsHandler{svc: svc, uploadDir: uploadDir}
}

func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("DB error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Search(c *gin.Context) {
	resp, err := h.svc.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("DB error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), uint(id), req, changedByPlaceholder)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, service.ErrInvalidStock), errors.Is(err, service.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("update failed"))
	}
}

// History godoc
// @Summary      Stock-change history for a product
// @Description  Returns the immutable stock-change log, newest first. An id with no logs (or no product) returns an empty array.
// @Tags         products
// @Param        id  path  int  true  "Product id"
// @Success      200 {array}  dto.InventoryLogResponse
// @Failure      500 {object} apierror.APIError
// @Router       /api/products/{id}/history [get]
func (h *ProductsHandler) History(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	resp, err := h.svc.History(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("DB error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Import receives a multipart CSV under field "file", stores it under the
// upload dir for the duration of the request, and bulk-loads its rows.
func (h *ProductsHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("File required"))
		return
	}

	dst := filepath.Join(h.uploadDir, uuid.NewString())
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("upload failed"))
		return
	}
	defer func() {
		if err := os.Remove(dst); err != nil {
			log.Warn().Err(err).Str("path", dst).Msg("failed to remove upload")
		}
	}()

	f, err := os.Open(dst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("upload failed"))
		return
	}
	rows, err := readImportCSV(f)
	f.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid CSV file"))
		return
	}

	summary, err := h.svc.Import(c.Request.Context(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("import failed"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ProductsHandler) Export(c *gin.Context) {
	rows, err := h.svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("DB error"))
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Status(http.StatusOK)
	if err := writeExportCSV(c.Writer, rows); err != nil {
		// Headers are already out; nothing left to do but record it.
		log.Warn().Err(err).Msg("csv export write failed")
	}
}
