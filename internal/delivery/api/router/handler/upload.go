package handler

import (
	"io"
	"net/http"

	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/service"
	"userreg/internal/errors"

	"github.com/labstack/echo/v4"
)

const profilePictureField = "profilePicture"

// readPicture returns the processed picture from the required multipart part.
func readPicture(c echo.Context, pictures service.PictureProcessor) ([]byte, error) {
	fileHeader, err := c.FormFile(profilePictureField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(profilePictureField + " is required")
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails("profilePicture could not be read")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded picture")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded picture")
	}

	processed, err := pictures.Process(fileHeader.Filename, data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return processed, nil
}
