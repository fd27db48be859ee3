package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminProductHandler holds dependencies for admin catalog handlers.
type AdminProductHandler struct {
	uc     usecase.AdminProductUsecase
	logger *slog.Logger
}

// NewAdminProductHandler is the constructor for AdminProductHandler, injected by Fx.
func NewAdminProductHandler(uc usecase.AdminProductUsecase, logger *slog.Logger) *AdminProductHandler {
	return &AdminProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles product creation. The form arrives as multipart: text fields
// plus the image file.
func (h *AdminProductHandler) Add(c echo.Context) error {
	image, err := readImageFile(c)
	if err != nil {
		return err
	}

	input := usecase.AddProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Image:       image,
	}

	if err := h.uc.AddProduct(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Product added")
}

// Update handles product edits. An absent image file keeps the stored image.
func (h *AdminProductHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product id")
	}

	image, err := readImageFile(c)
	if err != nil {
		return err
	}

	input := usecase.UpdateProductInput{
		ID:          id,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Image:       image,
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated")
}

// Delete handles product deletion. The confirmed flag must be set; a bare
// delete intent never reaches the remote service.
func (h *AdminProductHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product id")
	}

	confirmed, _ := strconv.ParseBool(c.QueryParam("confirmed"))

	if err := h.uc.DeleteProduct(c.Request().Context(), id, confirmed); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// readImageFile reads the optional multipart image field. A missing file is
// nil, not an error; the workflows decide whether an image is required.
func readImageFile(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Missing file or non-multipart request: no image supplied.
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return image, nil
}
