package handler

import (
	"strconv"

	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/usecase"

	"github.com/labstack/echo/v4"
)

// pageParams reads the limit/offset query parameters; bounds are enforced
// downstream.
func pageParams(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	return limit, offset
}

// formImage extracts the "image" part of a multipart upload. The returned
// closer must be deferred by the caller.
func formImage(c echo.Context) (usecase.ImageUpload, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return usecase.ImageUpload{}, nil, domainerrors.ErrValidationFailed.WithDetails("multipart field \"image\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return usecase.ImageUpload{}, nil, domainerrors.ErrValidationFailed.WithDetails("could not read uploaded file")
	}

	upload := usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	}

	return upload, func() { file.Close() }, nil
}
