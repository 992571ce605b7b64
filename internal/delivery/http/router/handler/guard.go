package handler

import (
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requireStoreAccess checks that the caller may act on the given store:
// admins always may, everyone else only on the store their token carries.
func requireStoreAccess(c echo.Context, storeID uuid.UUID) error {
	role, _ := c.Get(middleware.ContextRole).(entity.Role)
	if role == entity.RoleAdmin {
		return nil
	}

	claimStoreID, ok := c.Get(middleware.ContextStoreID).(uuid.UUID)
	if !ok || claimStoreID != storeID {
		return domainerrors.ErrForbidden
	}

	return nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}
