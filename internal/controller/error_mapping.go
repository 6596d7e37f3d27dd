package controller

import (
	"errors"

	"housing-empire-ai/internal/constant"
	"housing-empire-ai/internal/dto"
	"housing-empire-ai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// classify maps a service error to the HTTP status, banner level and message
// shown to the user.
func classify(err error) (int, dto.BannerLevel, string) {
	switch {
	case errors.Is(err, service.ErrMissingCredential):
		return fiber.StatusBadRequest, dto.BannerWarning, constant.MessageMissingCredential
	case errors.Is(err, service.ErrGenerationInFlight):
		return fiber.StatusConflict, dto.BannerWarning, constant.MessageGenerationBusy
	case errors.Is(err, service.ErrParse):
		return fiber.StatusUnprocessableEntity, dto.BannerError, err.Error()
	case errors.Is(err, service.ErrGeneration):
		return fiber.StatusBadGateway, dto.BannerError, "Error: " + err.Error()
	case errors.Is(err, service.ErrUnknownKind):
		return fiber.StatusNotFound, dto.BannerError, err.Error()
	default:
		return fiber.StatusInternalServerError, dto.BannerError, err.Error()
	}
}
